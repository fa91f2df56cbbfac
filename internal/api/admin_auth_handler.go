package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	apierrors "metzenhof/internal/errors"
	"metzenhof/internal/service"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.Write(w, apierrors.ErrBadRequest("Invalid request body"))
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		apierrors.Write(w, apierrors.ErrUnauthorized("Invalid credentials"))
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("admin login failed")
		apierrors.Write(w, apierrors.ErrInternal("Login failed"))
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
