package pets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"
)

type fakeStore struct {
	pets   map[int64]Pet
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{pets: map[int64]Pet{}, nextID: 1}
}

func (f *fakeStore) Insert(ctx context.Context, p *Pet) error {
	p.ID = f.nextID
	f.nextID++
	f.pets[p.ID] = *p
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]Pet, error) {
	result := []Pet{}
	for _, p := range f.pets {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, p *Pet) error {
	if _, ok := f.pets[id]; !ok {
		return ErrNotFound
	}
	p.ID = id
	f.pets[id] = *p
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.pets[id]; !ok {
		return ErrNotFound
	}
	delete(f.pets, id)
	return nil
}

func newTestHandler() (*Handler, *fakeStore) {
	store := newFakeStore()
	return &Handler{
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, store
}

func TestPetCreateAndList(t *testing.T) {
	h, store := newTestHandler()

	body := `{"nombre_mascota":"Firulais","especie":"perro","raza":"mestizo","fecha_nacimiento":"2020-01-01","id_dueño":7}`
	req := httptest.NewRequest(http.MethodPost, "/mascotas/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status: got %d (body %s)", rec.Code, rec.Body)
	}
	var out struct {
		Message string `json:"message"`
		Data    Pet    `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Mascota creada" || out.Data.ID == 0 || out.Data.IDDueno != 7 {
		t.Fatalf("unexpected body: %+v", out)
	}
	if len(store.pets) != 1 {
		t.Fatalf("expected 1 stored pet, got %d", len(store.pets))
	}

	req = httptest.NewRequest(http.MethodGet, "/mascotas/", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d", rec.Code)
	}
	var listOut struct {
		Data []Pet `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&listOut); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listOut.Data) != 1 || listOut.Data[0].NombreMascota != "Firulais" {
		t.Fatalf("unexpected list: %+v", listOut)
	}
}

func TestPetUpdateAndDelete(t *testing.T) {
	h, store := newTestHandler()
	_ = store.Insert(context.Background(), &Pet{NombreMascota: "Firulais"})

	body := `{"nombre_mascota":"Firulais II","especie":"perro"}`
	req := httptest.NewRequest(http.MethodPut, "/mascotas/1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got %d (body %s)", rec.Code, rec.Body)
	}
	if store.pets[1].NombreMascota != "Firulais II" {
		t.Fatalf("update not applied: %+v", store.pets[1])
	}

	req = httptest.NewRequest(http.MethodPut, "/mascotas/999", strings.NewReader(body))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: got %d want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/mascotas/1", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status: got %d", rec.Code)
	}
	if len(store.pets) != 0 {
		t.Fatalf("pet not deleted")
	}
}

func TestPetBadRequests(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "/mascotas/abc", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: got %d want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/mascotas/", strings.NewReader(`{"especie":"perro"}`))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing nombre_mascota: got %d want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/mascotas/", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("patch: got %d want 405", rec.Code)
	}
}
