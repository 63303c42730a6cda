package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"vetgate/internal/web"
)

type PetStore interface {
	Insert(ctx context.Context, p *Pet) error
	List(ctx context.Context) ([]Pet, error)
	Update(ctx context.Context, id int64, p *Pet) error
	Delete(ctx context.Context, id int64) error
}

// Handler serves /mascotas/ (POST, GET) and /mascotas/{id} (PUT, DELETE).
type Handler struct {
	Store  PetStore
	Logger *slog.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodPost:
			h.create(w, r)
		case http.MethodGet:
			h.list(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		web.Detail(w, http.StatusBadRequest, "id inválido")
		return
	}
	switch r.Method {
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*Pet, bool) {
	var p Pet
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.NombreMascota == "" {
		web.Detail(w, http.StatusBadRequest, "cuerpo de solicitud inválido")
		return nil, false
	}
	return &p, true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.Store.Insert(r.Context(), p); err != nil {
		h.Logger.Error("create mascota", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"message": "Mascota creada", "data": p})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.Store.List(r.Context())
	if err != nil {
		h.Logger.Error("list mascotas", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"data": result})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id int64) {
	p, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.Store.Update(r.Context(), id, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.Detail(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("update mascota", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"message": "Mascota actualizada", "data": p})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.Detail(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("delete mascota", "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]string{"message": "Mascota eliminada"})
}
