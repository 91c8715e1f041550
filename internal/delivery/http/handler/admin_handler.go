package handler

import (
	"encoding/json"
	"net/http"

	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/usecase"
	"healthcareplus/pkg/response"
	"healthcareplus/pkg/validator"
)

// AdminHandler serves the admin-only operational endpoints: the audit
// trail and the notification mail settings.
type AdminHandler struct {
	auditLogUsecase    usecase.AuditLogUsecase
	mailSettingUsecase usecase.MailSettingUsecase
	validator          *validator.CustomValidator
}

func NewAdminHandler(
	auditLogUsecase usecase.AuditLogUsecase,
	mailSettingUsecase usecase.MailSettingUsecase,
	validator *validator.CustomValidator,
) *AdminHandler {
	return &AdminHandler{
		auditLogUsecase:    auditLogUsecase,
		mailSettingUsecase: mailSettingUsecase,
		validator:          validator,
	}
}

func (h *AdminHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

func (h *AdminHandler) GetMailSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.mailSettingUsecase.Get(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get mail settings")
		return
	}

	response.Success(w, http.StatusOK, "Mail settings retrieved successfully", settings)
}

func (h *AdminHandler) UpdateMailSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMailSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.mailSettingUsecase.Update(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update mail settings")
		return
	}

	response.Success(w, http.StatusOK, "Mail settings updated successfully", settings)
}
