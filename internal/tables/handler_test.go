package tables

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"
)

type fakeReader struct {
	rows map[string][]map[string]any
	err  error
}

func (f *fakeReader) SelectAll(ctx context.Context, table string) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[table], nil
}

func newHandler(r *fakeReader) *CheckHandler {
	return &CheckHandler{Gateway: r, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestCheckTable(t *testing.T) {
	h := newHandler(&fakeReader{rows: map[string][]map[string]any{
		"mascotas": {{"id": float64(1), "nombre_mascota": "Firulais"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/check-table/?tabla=Mascotas", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body)
	}
	var out struct {
		Message string           `json:"message"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Connected to the database" || len(out.Data) != 1 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestCheckTableUnknown(t *testing.T) {
	h := newHandler(&fakeReader{})
	req := httptest.NewRequest(http.MethodGet, "/check-table/?tabla=usuarios;drop", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", rec.Code)
	}
}

func TestCheckTableStorageError(t *testing.T) {
	h := newHandler(&fakeReader{err: errors.New("connection refused")})
	req := httptest.NewRequest(http.MethodGet, "/check-table/?tabla=citas", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d want 500", rec.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["detail"] != "connection refused" {
		t.Fatalf("detail not forwarded: %+v", out)
	}
}
