package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/retail-store/internal/model"
)

type registerRequest struct {
	UserName string         `json:"userName" validate:"required"`
	UserType model.UserType `json:"userType" validate:"required,usertype"`
	Password string         `json:"password" validate:"required,max=72"`
}

type authenticateRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authenticateResponse struct {
	Token string `json:"token"`
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, err, "decode register request")
		return
	}

	if err := h.service.RegisterUser(r.Context(), req.UserName, req.Password, req.UserType); err != nil {
		h.writeError(w, err, "register user error", zap.String("user", req.UserName))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Authenticate проверяет учётные данные и возвращает токен доступа.
// Токен также выставляется в cookie.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, err, "decode authenticate request")
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.UserName, req.Password)
	if err != nil {
		h.writeError(w, err, "authenticate user error", zap.String("user", req.UserName))
		return
	}

	h.authMiddleware.SetAuthCookie(w, token)
	h.writeJSON(w, http.StatusOK, authenticateResponse{Token: token})
}
