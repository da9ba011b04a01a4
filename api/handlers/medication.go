package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/medical-record-api/config"
	"github.com/linesmerrill/medical-record-api/databases"
	"github.com/linesmerrill/medical-record-api/models"
)

// Medication represents the medication handler
type Medication struct {
	DB databases.MedicationDatabase
}

// MedicationsHandler handles GET requests for medications
func (h Medication) MedicationsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := h.DB.Find(r.Context(), bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get medications", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Medication{}
	}
	writeResponse(w, dbResp)
}

// CreateMedicationHandler handles POST requests to create a new medication
func (h Medication) CreateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	var req models.MedicationRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode medication", http.StatusUnprocessableEntity, w, err)
		return
	}
	req.Normalize()

	medication := req.NewMedication(models.Now())
	if err := models.Validate(medication); err != nil {
		config.ErrorStatus("failed to validate medication", http.StatusUnprocessableEntity, w, err)
		return
	}

	if err := h.DB.InsertOne(r.Context(), &medication); err != nil {
		config.ErrorStatus("failed to create medication", http.StatusInternalServerError, w, err)
		return
	}
	writeResponse(w, medication)
}

// MedicationByIDHandler handles GET requests for a single medication
func (h Medication) MedicationByIDHandler(w http.ResponseWriter, r *http.Request) {
	mID, ok := objectIDVar(w, r, "medication_id")
	if !ok {
		return
	}

	dbResp, err := h.DB.FindOne(r.Context(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to get medication by ID", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}

// UpdateMedicationHandler handles PUT requests to update an existing medication
func (h Medication) UpdateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	mID, ok := objectIDVar(w, r, "medication_id")
	if !ok {
		return
	}

	var req models.MedicationRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("failed to decode medication", http.StatusUnprocessableEntity, w, err)
		return
	}
	req.Normalize()
	if err := models.Validate(req); err != nil {
		config.ErrorStatus("failed to validate medication", http.StatusUnprocessableEntity, w, err)
		return
	}

	dbResp, err := h.DB.FindOneAndUpdate(r.Context(), bson.M{"_id": mID}, bson.M{"$set": req.Changes(models.Now())}, returnUpdated)
	if err != nil {
		config.ErrorStatus("failed to update medication", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}

// DeleteMedicationHandler handles DELETE requests to delete a medication
func (h Medication) DeleteMedicationHandler(w http.ResponseWriter, r *http.Request) {
	mID, ok := objectIDVar(w, r, "medication_id")
	if !ok {
		return
	}

	dbResp, err := h.DB.FindOneAndDelete(r.Context(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to delete medication", lookupStatus(err), w, err)
		return
	}
	writeResponse(w, dbResp)
}
