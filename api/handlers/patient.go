package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/linesmerrill/medical-record-api/config"
	"github.com/linesmerrill/medical-record-api/databases"
	"github.com/linesmerrill/medical-record-api/models"
)

// Patient exported for testing purposes
type Patient struct {
	DB  databases.PatientDatabase
	VDB databases.VisitDatabase
}

// PatientsHandler returns all patients
func (p Patient) PatientsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := p.DB.Find(r.Context(), bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get patients", http.StatusInternalServerError, w, err)
		return
	}
	// an empty collection is still a list
	if len(dbResp) == 0 {
		dbResp = []models.Patient{}
	}
	writeResponse(w, dbResp)
}

// CreatePatientHandler creates a patient
func (p Patient) CreatePatientHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PatientRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode patient", http.StatusUnprocessableEntity, w, err)
		return
	}
	req.Normalize()

	patient := req.NewPatient(models.Now())
	if err := models.Validate(patient); err != nil {
		config.ErrorStatus("failed to validate patient", http.StatusUnprocessableEntity, w, err)
		return
	}

	if err := p.DB.InsertOne(r.Context(), &patient); err != nil {
		config.ErrorStatus("failed to create patient", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Debugw("created patient", "patient_id", patient.ID.Hex())
	writeResponse(w, patient)
}

// PatientByIDHandler returns a patient by ID with its visits populated
func (p Patient) PatientByIDHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, "patient_id")
	if !ok {
		return
	}

	dbResp, err := p.DB.FindOne(r.Context(), bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to get patient by ID", lookupStatus(err), w, err)
		return
	}

	var visits []models.Visit
	if len(dbResp.Visits) > 0 {
		visits, err = p.VDB.Find(r.Context(), byIDs(dbResp.Visits))
		if err != nil {
			config.ErrorStatus("failed to get patient visits", http.StatusInternalServerError, w, err)
			return
		}
		visits = orderByIDs(dbResp.Visits, visits, func(v models.Visit) primitive.ObjectID { return v.ID })
	}
	writeResponse(w, dbResp.Populate(visits))
}

// UpdatePatientHandler replaces the fields sent in the body of a patient
func (p Patient) UpdatePatientHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, "patient_id")
	if !ok {
		return
	}

	var req models.PatientRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode patient", http.StatusUnprocessableEntity, w, err)
		return
	}
	req.Normalize()
	if err := models.Validate(req); err != nil {
		config.ErrorStatus("failed to validate patient", http.StatusUnprocessableEntity, w, err)
		return
	}

	dbResp, err := p.DB.FindOneAndUpdate(r.Context(), bson.M{"_id": pID}, bson.M{"$set": req.Changes(models.Now())}, returnUpdated)
	if err != nil {
		config.ErrorStatus("failed to update patient", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}

// DeletePatientHandler deletes a patient and returns the deleted document
func (p Patient) DeletePatientHandler(w http.ResponseWriter, r *http.Request) {
	pID, ok := objectIDVar(w, r, "patient_id")
	if !ok {
		return
	}

	dbResp, err := p.DB.FindOneAndDelete(r.Context(), bson.M{"_id": pID})
	if err != nil {
		config.ErrorStatus("failed to delete patient", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}
