package httpserver

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"vetgate/internal/appointments"
	"vetgate/internal/auth"
	"vetgate/internal/clients"
	"vetgate/internal/diagnoses"
	"vetgate/internal/pets"
	"vetgate/internal/staff"
	"vetgate/internal/storage"
	"vetgate/internal/tables"
)

func NewRouter(
	logger *slog.Logger,
	authSvc *auth.Service,
	clientStore *clients.Store,
	staffStore *staff.Store,
	petStore *pets.Store,
	apptStore *appointments.Store,
	diagStore *diagnoses.Store,
	gw *storage.Gateway,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Registration
	mux.Handle("/clientes/", &clients.CreateHandler{Store: clientStore, Logger: logger})
	mux.Handle("/funcionarios/", &staff.CreateHandler{Store: staffStore, Logger: logger})

	// Auth
	mux.Handle("/login/", &auth.LoginHandler{Service: authSvc, Logger: logger})
	mux.Handle("/verify-client/", &auth.VerifyClientHandler{Service: authSvc, Logger: logger})

	secured := auth.Middleware(authSvc)
	mux.Handle("/protected/", secured(&auth.ProtectedHandler{}))

	// Clinic entities
	mux.Handle("/mascotas/", &pets.Handler{Store: petStore, Logger: logger})
	mux.Handle("/citas/", &appointments.Handler{Store: apptStore, Logger: logger})
	mux.Handle("/diagnosticos/", &diagnoses.Handler{Store: diagStore, Logger: logger})

	// Diagnostics
	mux.Handle("/check-table/", &tables.CheckHandler{Gateway: gw, Logger: logger})

	return withCORS(mux)
}
