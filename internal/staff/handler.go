package staff

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"vetgate/internal/auth"
	"vetgate/internal/storage"
	"vetgate/internal/web"
)

type StaffStore interface {
	Create(ctx context.Context, nombre, puesto, correo, passwordHash string) (*Funcionario, error)
}

type CreateHandler struct {
	Store  StaffStore
	Logger *slog.Logger
}

func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Nombre     string `json:"nombre"`
		Puesto     string `json:"puesto"`
		Correo     string `json:"correo"`
		Contrasena string `json:"contraseña"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil ||
		in.Nombre == "" || in.Puesto == "" || in.Correo == "" || in.Contrasena == "" {
		web.Detail(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	hash, err := auth.HashPassword(in.Contrasena)
	if err != nil {
		h.Logger.Error("hash password", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	f, err := h.Store.Create(r.Context(), in.Nombre, in.Puesto, in.Correo, hash)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			web.Detail(w, http.StatusConflict, err.Error())
			return
		}
		h.Logger.Error("create funcionario", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"message": "Funcionario creado",
		"data":    f,
	})
}
