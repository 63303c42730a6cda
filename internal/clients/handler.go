package clients

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

type ClientStore interface {
	Create(ctx context.Context, nombreUsuario, correo, passwordHash string) (*Client, error)
}

type CreateHandler struct {
	Store  ClientStore
	Logger *slog.Logger
}

func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		NombreUsuario string `json:"nombre_usuario"`
		Correo        string `json:"correo"`
		Contrasena    string `json:"contraseña"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil ||
		in.NombreUsuario == "" || in.Correo == "" || in.Contrasena == "" {
		web.Detail(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return
	}
	hash, err := auth.HashPassword(in.Contrasena)
	if err != nil {
		h.Logger.Error("hash password", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	c, err := h.Store.Create(r.Context(), in.NombreUsuario, in.Correo, hash)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			web.Detail(w, http.StatusConflict, err.Error())
			return
		}
		h.Logger.Error("create cliente", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"message": "Cliente creado",
		"data":    c,
	})
}
