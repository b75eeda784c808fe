package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/pkg/web"
	"github.com/hmondejar/notekit/internal/user"
)

const maskChar = "*"

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6"`
}

func (r *RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.Register(r.Context(), RegisterParams(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			web.RespondConflict(w, err, message.UserExists, nil)
		case errors.Is(err, ErrEmailDelivery):
			web.Fail(w, http.StatusInternalServerError, err, message.EmailFailed, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondToken(w, token)
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r *LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.Login(r.Context(), LoginParams(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			web.RespondUnauthorized(w, err, message.InvalidCreds, nil)
		case errors.Is(err, ErrUserNotVerified):
			web.RespondForbidden(w, err, message.NotVerified, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondToken(w, token)
}

// Me returns the authenticated user. There is no verified gate here: an
// unverified account can still read itself.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	u, err := h.svc.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, "User not found", nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, u)
}

type UpdateDetailsRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r *UpdateDetailsRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", maskChar))
}

func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateDetailsRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.UpdateEmail(r.Context(), userID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			web.RespondNotFound(w, err, "User not found", nil)
		case errors.Is(err, user.ErrDuplicateEmail):
			web.RespondConflict(w, err, message.UserExists, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondOK(w, u)
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword,omitempty" validate:"required"`
	NewPassword     string `json:"newPassword,omitempty" validate:"required,min=6"`
}

func (r *UpdatePasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("currentPassword", maskChar),
		slog.String("newPassword", maskChar),
	)
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdatePasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.UpdatePassword(r.Context(), userID, UpdatePasswordParams(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			web.RespondUnauthorized(w, err, "Password is incorrect", nil)
		case errors.Is(err, user.ErrNotFound):
			web.RespondNotFound(w, err, "User not found", nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondToken(w, token)
}

type ForgotPasswordRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r *ForgotPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", maskChar))
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ForgotPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			web.RespondNotFound(w, err, message.UserNotFound, nil)
		case errors.Is(err, ErrEmailDelivery):
			web.Fail(w, http.StatusInternalServerError, err, message.EmailFailed, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondOK(w, message.EmailSent)
}

type ResetPasswordRequest struct {
	Password string `json:"password,omitempty" validate:"required,min=6"`
}

func (r *ResetPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("password", maskChar))
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	plainToken := r.PathValue("resettoken")
	if plainToken == "" {
		web.RespondBadRequest(w, errors.New("missing reset token"), message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[ResetPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.ResetPassword(r.Context(), plainToken, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			web.RespondBadRequest(w, err, message.InvalidToken, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondToken(w, token)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("id")
	if token == "" {
		web.RespondUnprocessableEntity(w, errors.New("missing verification token"), message.MissingToken, nil)
		return
	}

	if err := h.svc.VerifyEmail(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		case errors.Is(err, user.ErrNotFound):
			web.RespondNotFound(w, err, "User does not exist", nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	web.RespondSuccess(w)
}
