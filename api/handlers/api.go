package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/medical-record-api/api"
	"github.com/linesmerrill/medical-record-api/config"
	"github.com/linesmerrill/medical-record-api/databases"
	"github.com/linesmerrill/medical-record-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	// api docs hosted at "/" for anything no route matched
	r.NotFoundHandler = docsHandler(a.Config.DocsDir)

	p := Patient{DB: databases.NewPatientDatabase(a.dbHelper), VDB: databases.NewVisitDatabase(a.dbHelper)}
	v := Visit{DB: databases.NewVisitDatabase(a.dbHelper), MDB: databases.NewMedicationDatabase(a.dbHelper)}
	m := Medication{DB: databases.NewMedicationDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	apiCreate := r
	if a.Config.APIPrefix != "" {
		apiCreate = r.PathPrefix("/" + a.Config.APIPrefix).Subrouter()
	}

	apiCreate.HandleFunc("/patient", p.PatientsHandler).Methods("GET")
	apiCreate.HandleFunc("/patient", p.CreatePatientHandler).Methods("POST")
	apiCreate.HandleFunc("/patient/{patient_id}", p.PatientByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/patient/{patient_id}", p.UpdatePatientHandler).Methods("PUT")
	apiCreate.HandleFunc("/patient/{patient_id}", p.DeletePatientHandler).Methods("DELETE")

	apiCreate.HandleFunc("/visit", v.VisitsHandler).Methods("GET")
	apiCreate.HandleFunc("/visit", v.CreateVisitHandler).Methods("POST")
	apiCreate.HandleFunc("/visit/{visit_id}", v.VisitByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/visit/{visit_id}", v.UpdateVisitHandler).Methods("PUT")
	apiCreate.HandleFunc("/visit/{visit_id}", v.DeleteVisitHandler).Methods("DELETE")

	apiCreate.HandleFunc("/medication", m.MedicationsHandler).Methods("GET")
	apiCreate.HandleFunc("/medication", m.CreateMedicationHandler).Methods("POST")
	apiCreate.HandleFunc("/medication/{medication_id}", m.MedicationByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/medication/{medication_id}", m.UpdateMedicationHandler).Methods("PUT")
	apiCreate.HandleFunc("/medication/{medication_id}", m.DeleteMedicationHandler).Methods("DELETE")
	return r
}

// Handler wraps the router with the middleware every request goes through
func (a *App) Handler() http.Handler {
	return api.Chain(a.Router,
		api.RequestLogger,
		api.RateLimit(a.Config.RateLimit),
		api.CORS(a.Config.AllowedOrigins),
	)
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With("error", err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With("error", err).Error("failed to connect to database")
		return err
	}
	a.client = client
	zap.S().Infow("medical-record-api has connected to the database", "database", a.Config.DatabaseName)

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, models.HealthCheckResponse{Alive: true})
}

// docsHandler serves dir to GET and HEAD requests. Any other method on an
// unknown path is not found.
func docsHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			config.ErrorStatus("route not found", http.StatusNotFound, w, nil)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	config.ErrorStatus("method not allowed", http.StatusMethodNotAllowed, w, nil)
}
