package entity

import "time"

// MailSetting is the single-row SMTP configuration managed by the admin
// panel and consulted by the notification dispatcher at send time.
type MailSetting struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MailServer   string    `gorm:"type:varchar(120);not null" json:"mail_server"`
	MailPort     int       `gorm:"not null" json:"mail_port"`
	MailUseTLS   bool      `gorm:"not null;default:true" json:"mail_use_tls"`
	MailUsername string    `gorm:"type:varchar(120);not null" json:"mail_username"`
	MailPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	DefaultName  string    `gorm:"type:varchar(120)" json:"mail_default_name,omitempty"`
	DefaultEmail string    `gorm:"type:varchar(120)" json:"mail_default_email,omitempty"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MailSetting) TableName() string {
	return "mail_settings"
}

// DefaultMailSetting is used when no settings row exists yet.
func DefaultMailSetting() *MailSetting {
	return &MailSetting{
		MailServer:  "smtp.gmail.com",
		MailPort:    587,
		MailUseTLS:  true,
		DefaultName: "hms-system",
	}
}

// IsComplete reports whether the settings can actually deliver mail.
func (m *MailSetting) IsComplete() bool {
	return m.MailServer != "" && m.MailPort != 0 && m.MailUsername != "" &&
		m.MailPassword != "" && m.DefaultEmail != ""
}
