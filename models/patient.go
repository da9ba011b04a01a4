package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient holds the structure for the patient collection in mongo
type Patient struct {
	ID          primitive.ObjectID   `json:"_id" bson:"_id"`
	FirstName   string               `json:"firstName" bson:"firstName" validate:"required"`
	LastName    string               `json:"lastName" bson:"lastName" validate:"required"`
	Address     string               `json:"address" bson:"address" validate:"required"`
	DateOfBirth time.Time            `json:"dateOfBirth" bson:"dateOfBirth"`
	Visits      []primitive.ObjectID `json:"visits" bson:"visits"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
	Version     int32                `json:"__v" bson:"__v"`
}

// PopulatedPatient is a patient with its visits resolved to full documents
type PopulatedPatient struct {
	ID          primitive.ObjectID `json:"_id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Address     string             `json:"address"`
	DateOfBirth time.Time          `json:"dateOfBirth"`
	Visits      []Visit            `json:"visits"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Version     int32              `json:"__v"`
}

// Populate replaces the visit ids of p with the given visits
func (p Patient) Populate(visits []Visit) PopulatedPatient {
	if visits == nil {
		visits = []Visit{}
	}
	return PopulatedPatient{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Address:     p.Address,
		DateOfBirth: p.DateOfBirth,
		Visits:      visits,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// PatientRequest is the body accepted when creating or updating a patient.
// A nil field was not sent by the client.
type PatientRequest struct {
	FirstName   *string               `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string               `json:"lastName" validate:"omitempty,min=1"`
	Address     *string               `json:"address" validate:"omitempty,min=1"`
	DateOfBirth *Date                 `json:"dateOfBirth"`
	Visits      *[]primitive.ObjectID `json:"visits"`
}

// Normalize trims the fields the patient schema trims
func (r *PatientRequest) Normalize() {
	trim(r.FirstName)
	trim(r.LastName)
	trim(r.Address)
}

// NewPatient builds the document to insert. dateOfBirth defaults to now.
func (r PatientRequest) NewPatient(now time.Time) Patient {
	dob := now
	if r.DateOfBirth != nil {
		dob = r.DateOfBirth.UTC()
	}
	return Patient{
		FirstName:   valueOr(r.FirstName),
		LastName:    valueOr(r.LastName),
		Address:     valueOr(r.Address),
		DateOfBirth: dob,
		Visits:      idsOrEmpty(r.Visits),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Changes returns the fields to $set for an update
func (r PatientRequest) Changes(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if r.FirstName != nil {
		set["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		set["lastName"] = *r.LastName
	}
	if r.Address != nil {
		set["address"] = *r.Address
	}
	if r.DateOfBirth != nil {
		set["dateOfBirth"] = r.DateOfBirth.UTC()
	}
	if r.Visits != nil {
		set["visits"] = idsOrEmpty(r.Visits)
	}
	return set
}
