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

// Visit exported for testing purposes
type Visit struct {
	DB  databases.VisitDatabase
	MDB databases.MedicationDatabase
}

// VisitsHandler returns all visits
func (v Visit) VisitsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := v.DB.Find(r.Context(), bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get visits", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Visit{}
	}
	writeResponse(w, dbResp)
}

// CreateVisitHandler creates a visit. The patient is not updated, its visits
// list only changes through the patient endpoint.
func (v Visit) CreateVisitHandler(w http.ResponseWriter, r *http.Request) {
	var req models.VisitRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode visit", http.StatusUnprocessableEntity, w, err)
		return
	}

	visit := req.NewVisit(models.Now())
	if err := models.Validate(visit); err != nil {
		config.ErrorStatus("failed to validate visit", http.StatusUnprocessableEntity, w, err)
		return
	}

	if err := v.DB.InsertOne(r.Context(), &visit); err != nil {
		config.ErrorStatus("failed to create visit", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Debugw("created visit", "visit_id", visit.ID.Hex(), "patient_id", visit.Patient.Hex())
	writeResponse(w, visit)
}

// VisitByIDHandler returns a visit by ID with its prescribed medication populated
func (v Visit) VisitByIDHandler(w http.ResponseWriter, r *http.Request) {
	vID, ok := objectIDVar(w, r, "visit_id")
	if !ok {
		return
	}

	dbResp, err := v.DB.FindOne(r.Context(), bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to get visit by ID", lookupStatus(err), w, err)
		return
	}

	var medications []models.Medication
	if len(dbResp.PrescribedMedication) > 0 {
		medications, err = v.MDB.Find(r.Context(), byIDs(dbResp.PrescribedMedication))
		if err != nil {
			config.ErrorStatus("failed to get prescribed medication", http.StatusInternalServerError, w, err)
			return
		}
		medications = orderByIDs(dbResp.PrescribedMedication, medications, func(m models.Medication) primitive.ObjectID { return m.ID })
	}
	writeResponse(w, dbResp.Populate(medications))
}

// UpdateVisitHandler replaces the fields sent in the body of a visit
func (v Visit) UpdateVisitHandler(w http.ResponseWriter, r *http.Request) {
	vID, ok := objectIDVar(w, r, "visit_id")
	if !ok {
		return
	}

	var req models.VisitRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode visit", http.StatusUnprocessableEntity, w, err)
		return
	}
	if err := models.Validate(req); err != nil {
		config.ErrorStatus("failed to validate visit", http.StatusUnprocessableEntity, w, err)
		return
	}

	dbResp, err := v.DB.FindOneAndUpdate(r.Context(), bson.M{"_id": vID}, bson.M{"$set": req.Changes(models.Now())}, returnUpdated)
	if err != nil {
		config.ErrorStatus("failed to update visit", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}

// DeleteVisitHandler deletes a visit and returns the deleted document
func (v Visit) DeleteVisitHandler(w http.ResponseWriter, r *http.Request) {
	vID, ok := objectIDVar(w, r, "visit_id")
	if !ok {
		return
	}

	dbResp, err := v.DB.FindOneAndDelete(r.Context(), bson.M{"_id": vID})
	if err != nil {
		config.ErrorStatus("failed to delete visit", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}
