package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visit holds the structure for the visit collection in mongo
type Visit struct {
	ID                   primitive.ObjectID   `json:"_id" bson:"_id"`
	ReasonOfVisit        string               `json:"reasonOfVisit" bson:"reasonOfVisit" validate:"required"`
	Consult              string               `json:"consult" bson:"consult" validate:"required"`
	DateOfVisit          time.Time            `json:"dateOfVisit" bson:"dateOfVisit"`
	Patient              primitive.ObjectID   `json:"patient" bson:"patient" validate:"objectid"`
	PrescribedMedication []primitive.ObjectID `json:"prescribedMedication" bson:"prescribedMedication"`
	CreatedAt            time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt" bson:"updatedAt"`
	Version              int32                `json:"__v" bson:"__v"`
}

// PopulatedVisit is a visit with its prescribed medication resolved to full documents
type PopulatedVisit struct {
	ID                   primitive.ObjectID `json:"_id"`
	ReasonOfVisit        string             `json:"reasonOfVisit"`
	Consult              string             `json:"consult"`
	DateOfVisit          time.Time          `json:"dateOfVisit"`
	Patient              primitive.ObjectID `json:"patient"`
	PrescribedMedication []Medication       `json:"prescribedMedication"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
	Version              int32              `json:"__v"`
}

// Populate replaces the medication ids of v with the given medications
func (v Visit) Populate(medications []Medication) PopulatedVisit {
	if medications == nil {
		medications = []Medication{}
	}
	return PopulatedVisit{
		ID:                   v.ID,
		ReasonOfVisit:        v.ReasonOfVisit,
		Consult:              v.Consult,
		DateOfVisit:          v.DateOfVisit,
		Patient:              v.Patient,
		PrescribedMedication: medications,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
		Version:              v.Version,
	}
}

// VisitRequest is the body accepted when creating or updating a visit.
// A nil field was not sent by the client.
type VisitRequest struct {
	ReasonOfVisit        *string               `json:"reasonOfVisit" validate:"omitempty,min=1"`
	Consult              *string               `json:"consult" validate:"omitempty,min=1"`
	DateOfVisit          *Date                 `json:"dateOfVisit"`
	Patient              *primitive.ObjectID   `json:"patient" validate:"omitempty,objectid"`
	PrescribedMedication *[]primitive.ObjectID `json:"prescribedMedication"`
}

// NewVisit builds the document to insert. dateOfVisit defaults to now.
func (r VisitRequest) NewVisit(now time.Time) Visit {
	date := now
	if r.DateOfVisit != nil {
		date = r.DateOfVisit.UTC()
	}
	var patient primitive.ObjectID
	if r.Patient != nil {
		patient = *r.Patient
	}
	return Visit{
		ReasonOfVisit:        valueOr(r.ReasonOfVisit),
		Consult:              valueOr(r.Consult),
		DateOfVisit:          date,
		Patient:              patient,
		PrescribedMedication: idsOrEmpty(r.PrescribedMedication),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Changes returns the fields to $set for an update
func (r VisitRequest) Changes(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if r.ReasonOfVisit != nil {
		set["reasonOfVisit"] = *r.ReasonOfVisit
	}
	if r.Consult != nil {
		set["consult"] = *r.Consult
	}
	if r.DateOfVisit != nil {
		set["dateOfVisit"] = r.DateOfVisit.UTC()
	}
	if r.Patient != nil {
		set["patient"] = *r.Patient
	}
	if r.PrescribedMedication != nil {
		set["prescribedMedication"] = idsOrEmpty(r.PrescribedMedication)
	}
	return set
}
