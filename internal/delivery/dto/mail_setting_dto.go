package dto

// Request DTOs

type UpdateMailSettingRequest struct {
	MailServer   string `json:"mail_server" validate:"required,max=120"`
	MailPort     int    `json:"mail_port" validate:"required,gte=1,lte=65535"`
	MailUseTLS   *bool  `json:"mail_use_tls"`
	MailUsername string `json:"mail_username" validate:"required,max=120"`
	MailPassword string `json:"mail_password" validate:"omitempty,max=255"`
	DefaultName  string `json:"mail_default_name" validate:"omitempty,max=120"`
	DefaultEmail string `json:"mail_default_email" validate:"required,email"`
}

// Response DTOs

type MailSettingResponse struct {
	MailServer   string `json:"mail_server"`
	MailPort     int    `json:"mail_port"`
	MailUseTLS   bool   `json:"mail_use_tls"`
	MailUsername string `json:"mail_username"`
	DefaultName  string `json:"mail_default_name,omitempty"`
	DefaultEmail string `json:"mail_default_email,omitempty"`
	Configured   bool   `json:"configured"`
}
