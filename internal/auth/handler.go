package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"vetgate/internal/web"
)

type LoginHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Correo     string `json:"correo"`
		Contrasena string `json:"contraseña"`
		Role       string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Correo == "" || in.Contrasena == "" {
		web.Detail(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	role, err := ParseRole(in.Role)
	if err != nil {
		web.Detail(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.Service.Login(r.Context(), in.Correo, in.Contrasena, role)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.Detail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("login", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

type VerifyClientHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *VerifyClientHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	correo := q.Get("correo")
	contrasena := q.Get("contraseña")
	if correo == "" || contrasena == "" {
		web.Detail(w, http.StatusBadRequest, "correo y contraseña son obligatorios")
		return
	}
	err := h.Service.VerifyClient(r.Context(), correo, contrasena)
	switch {
	case err == nil:
		web.JSON(w, http.StatusOK, map[string]string{"message": "Contraseña correcta"})
	case errors.Is(err, ErrAccountNotFound):
		web.Detail(w, http.StatusNotFound, "Cliente no encontrado")
	case errors.Is(err, ErrInvalidCredentials):
		web.Detail(w, http.StatusBadRequest, "Contraseña incorrecta")
	default:
		h.Logger.Error("verify client", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
	}
}

type ProtectedHandler struct{}

func (h *ProtectedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	subject, ok := SubjectFromContext(r.Context())
	if !ok {
		web.Detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	web.JSON(w, http.StatusOK, map[string]string{
		"message": "Acceso permitido",
		"email":   subject,
	})
}
