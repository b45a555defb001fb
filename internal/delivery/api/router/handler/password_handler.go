package handler

import (
	"log/slog"
	"net/http"
	"time"

	"passwarden/internal/delivery/api/response"
	deliverycontext "passwarden/internal/delivery/context"
	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PasswordHandlerParams holds dependencies for PasswordHandler, injected by Fx.
type PasswordHandlerParams struct {
	fx.In

	PasswordUC usecase.PasswordUsecase
	Logger     *slog.Logger
}

// PasswordHandler serves password changes, role grants and the audit log.
type PasswordHandler struct {
	passwordUC usecase.PasswordUsecase
	logger     *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler
func NewPasswordHandler(params PasswordHandlerParams) *PasswordHandler {
	return &PasswordHandler{
		passwordUC: params.PasswordUC,
		logger:     params.Logger,
	}
}

// ChangePasswordRequest is the body of a self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// AdminResetPasswordRequest is the body of a manager-initiated reset.
type AdminResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
	Reason      string `json:"reason" validate:"omitempty,max=512"`
}

// TargetUserResponse names the user whose password was reset.
type TargetUserResponse struct {
	TargetUserID string `json:"target_user_id"`
}

// RoleGrantResponse reports the role a user holds after a grant.
type RoleGrantResponse struct {
	UserID  string `json:"user_id"`
	NewRole string `json:"new_role"`
}

// PasswordChangeLogResponse is one audit entry as exposed over HTTP.
type PasswordChangeLogResponse struct {
	ID        uint64    `json:"id"`
	ActorID   string    `json:"actor_id"`
	TargetID  string    `json:"target_id"`
	Reason    *string   `json:"reason"`
	IP        *string   `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

// LogsResponse wraps the audit entries, newest first.
type LogsResponse struct {
	Logs []PasswordChangeLogResponse `json:"logs"`
}

// ChangeOwnPassword handles a password change by the logged-in user.
func (h *PasswordHandler) ChangeOwnPassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.passwordUC.ChangeOwnPassword(c.Request().Context(), deliverycontext.GetActor(c), &usecase.ChangeOwnPasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "password_changed"})
}

// AdminResetPassword handles a reset of another user's password by a password manager.
func (h *PasswordHandler) AdminResetPassword(c echo.Context) error {
	targetID := parseUserID(c)

	var req AdminResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.passwordUC.AdminResetPassword(c.Request().Context(), deliverycontext.GetActor(c), &usecase.AdminResetPasswordInput{
		TargetUserID: targetID,
		NewPassword:  req.NewPassword,
		Reason:       req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TargetUserResponse{TargetUserID: targetID.String()})
}

// GrantManager handles promoting a user to the password manager role.
func (h *PasswordHandler) GrantManager(c echo.Context) error {
	user, err := h.passwordUC.GrantManager(c.Request().Context(), deliverycontext.GetActor(c), parseUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RoleGrantResponse{
		UserID:  user.ID.String(),
		NewRole: user.Role.String(),
	})
}

// ListLogs handles reading the password change audit log.
func (h *PasswordHandler) ListLogs(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("limit must be an integer"))
	}

	logs, err := h.passwordUC.ListLogs(c.Request().Context(), deliverycontext.GetActor(c), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LogsResponse{Logs: toLogResponses(logs)})
}

// parseUserID returns uuid.Nil for malformed ids. No user has that id, so the usecase
// answers 404 once the actor is authorized.
func parseUserID(c echo.Context) uuid.UUID {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return uuid.Nil
	}

	return id
}

func toLogResponses(logs []*entity.PasswordChangeLog) []PasswordChangeLogResponse {
	out := make([]PasswordChangeLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, PasswordChangeLogResponse{
			ID:        l.ID,
			ActorID:   l.ActorID.String(),
			TargetID:  l.TargetID.String(),
			Reason:    l.Reason,
			IP:        l.IP,
			Timestamp: l.Timestamp.UTC(),
		})
	}

	return out
}
