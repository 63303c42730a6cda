package tables

import (
	"context"
	"net/http"
	"strings"

	"log/slog"

	"vetgate/internal/web"
)

// knownTables maps the tabla query parameter (case-insensitive, accepting
// the legacy capitalized names) to the actual table.
var knownTables = map[string]string{
	"clientes":     "clientes",
	"funcionario":  "funcionarios",
	"funcionarios": "funcionarios",
	"mascotas":     "mascotas",
	"citas":        "citas",
	"diagnosticos": "diagnosticos",
}

type TableReader interface {
	SelectAll(ctx context.Context, table string) ([]map[string]any, error)
}

// CheckHandler serves GET /check-table/?tabla=X, a connectivity probe that
// dumps the named table.
type CheckHandler struct {
	Gateway TableReader
	Logger  *slog.Logger
}

func (h *CheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	table, ok := knownTables[strings.ToLower(r.URL.Query().Get("tabla"))]
	if !ok {
		web.Detail(w, http.StatusBadRequest, "tabla desconocida")
		return
	}
	rows, err := h.Gateway.SelectAll(r.Context(), table)
	if err != nil {
		h.Logger.Error("check table", "table", table, "err", err)
		web.Detail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"message": "Connected to the database",
		"data":    rows,
	})
}
