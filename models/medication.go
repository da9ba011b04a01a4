package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medication holds the structure for the medication collection in mongo
type Medication struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Dose        string             `json:"dose" bson:"dose" validate:"required"`
	PackageSize string             `json:"packageSize" bson:"packageSize" validate:"required"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	Version     int32              `json:"__v" bson:"__v"`
}

// MedicationRequest is the body accepted when creating or updating a medication.
// A nil field was not sent by the client.
type MedicationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Dose        *string `json:"dose" validate:"omitempty,min=1"`
	PackageSize *string `json:"packageSize" validate:"omitempty,min=1"`
}

// Normalize trims the fields the medication schema trims
func (r *MedicationRequest) Normalize() {
	trim(r.Name)
	trim(r.PackageSize)
}

// NewMedication builds the document to insert
func (r MedicationRequest) NewMedication(now time.Time) Medication {
	return Medication{
		Name:        valueOr(r.Name),
		Dose:        valueOr(r.Dose),
		PackageSize: valueOr(r.PackageSize),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Changes returns the fields to $set for an update
func (r MedicationRequest) Changes(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Dose != nil {
		set["dose"] = *r.Dose
	}
	if r.PackageSize != nil {
		set["packageSize"] = *r.PackageSize
	}
	return set
}
