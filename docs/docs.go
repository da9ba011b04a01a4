// Package docs medical-record-api.
//
// Documentation of medical-record-api, a record keeping API for patients,
// their visits and the medication prescribed during a visit.
//
//     Schemes: http, https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/medical-record-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/patient patient patients
// Lists every patient. Visits are returned as ids.
// responses:
//   200: patientsResponse
//   500: errorResponse

// swagger:response patientsResponse
type patientsResponseWrapper struct {
	// in:body
	Body []models.Patient
}

// swagger:route POST /api/patient patient createPatient
// Creates a patient. firstName, lastName and address are required.
// responses:
//   200: patientResponse
//   422: errorResponse
//   500: errorResponse

// swagger:route PUT /api/patient/{patient_id} patient updatePatient
// Replaces the fields sent in the body and returns the updated patient.
// responses:
//   200: patientResponse
//   404: errorResponse
//   422: errorResponse
//   500: errorResponse

// swagger:route DELETE /api/patient/{patient_id} patient deletePatient
// Deletes a patient and returns the deleted document.
// responses:
//   200: patientResponse
//   404: errorResponse
//   500: errorResponse

// swagger:response patientResponse
type patientResponseWrapper struct {
	// in:body
	Body models.Patient
}

// swagger:parameters createPatient updatePatient
type patientRequestWrapper struct {
	// in:body
	Body models.PatientRequest
}

// swagger:route GET /api/patient/{patient_id} patient patientByID
// Gets a single patient with its visits.
// responses:
//   200: populatedPatientResponse
//   404: errorResponse
//   500: errorResponse

// swagger:response populatedPatientResponse
type populatedPatientResponseWrapper struct {
	// in:body
	Body models.PopulatedPatient
}

// swagger:parameters patientByID updatePatient deletePatient
type patientIDParam struct {
	// in:path
	// required: true
	PatientID string `json:"patient_id"`
}

// swagger:route GET /api/visit visit visits
// Lists every visit. Prescribed medication is returned as ids.
// responses:
//   200: visitsResponse
//   500: errorResponse

// swagger:response visitsResponse
type visitsResponseWrapper struct {
	// in:body
	Body []models.Visit
}

// swagger:route POST /api/visit visit createVisit
// Creates a visit. reasonOfVisit, consult and patient are required. The
// patient's visits are not updated.
// responses:
//   200: visitResponse
//   422: errorResponse
//   500: errorResponse

// swagger:route PUT /api/visit/{visit_id} visit updateVisit
// Replaces the fields sent in the body and returns the updated visit.
// responses:
//   200: visitResponse
//   404: errorResponse
//   422: errorResponse
//   500: errorResponse

// swagger:route DELETE /api/visit/{visit_id} visit deleteVisit
// Deletes a visit and returns the deleted document.
// responses:
//   200: visitResponse
//   404: errorResponse
//   500: errorResponse

// swagger:response visitResponse
type visitResponseWrapper struct {
	// in:body
	Body models.Visit
}

// swagger:parameters createVisit updateVisit
type visitRequestWrapper struct {
	// in:body
	Body models.VisitRequest
}

// swagger:route GET /api/visit/{visit_id} visit visitByID
// Gets a single visit with its prescribed medication.
// responses:
//   200: populatedVisitResponse
//   404: errorResponse
//   500: errorResponse

// swagger:response populatedVisitResponse
type populatedVisitResponseWrapper struct {
	// in:body
	Body models.PopulatedVisit
}

// swagger:parameters visitByID updateVisit deleteVisit
type visitIDParam struct {
	// in:path
	// required: true
	VisitID string `json:"visit_id"`
}

// swagger:route GET /api/medication medication medications
// Lists every medication.
// responses:
//   200: medicationsResponse
//   500: errorResponse

// swagger:response medicationsResponse
type medicationsResponseWrapper struct {
	// in:body
	Body []models.Medication
}

// swagger:route POST /api/medication medication createMedication
// Creates a medication. name, dose and packageSize are required.
// responses:
//   200: medicationResponse
//   422: errorResponse
//   500: errorResponse

// swagger:route GET /api/medication/{medication_id} medication medicationByID
// Gets a single medication.
// responses:
//   200: medicationResponse
//   404: errorResponse
//   500: errorResponse

// swagger:route PUT /api/medication/{medication_id} medication updateMedication
// Replaces the fields sent in the body and returns the updated medication.
// responses:
//   200: medicationResponse
//   404: errorResponse
//   422: errorResponse
//   500: errorResponse

// swagger:route DELETE /api/medication/{medication_id} medication deleteMedication
// Deletes a medication and returns the deleted document.
// responses:
//   200: medicationResponse
//   404: errorResponse
//   500: errorResponse

// swagger:response medicationResponse
type medicationResponseWrapper struct {
	// in:body
	Body models.Medication
}

// swagger:parameters createMedication updateMedication
type medicationRequestWrapper struct {
	// in:body
	Body models.MedicationRequest
}

// swagger:parameters medicationByID updateMedication deleteMedication
type medicationIDParam struct {
	// in:path
	// required: true
	MedicationID string `json:"medication_id"`
}

// Returned whenever a request fails, Message names what failed and Error the cause.
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
