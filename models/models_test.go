package models_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/medical-record-api/models"
)

func strPtr(s string) *string { return &s }

func TestPatientRequest_NewPatientDefaults(t *testing.T) {
	now := models.Now()
	req := models.PatientRequest{
		FirstName: strPtr("  John "),
		LastName:  strPtr("Doe"),
		Address:   strPtr(" Homestead 120"),
	}
	req.Normalize()

	p := req.NewPatient(now)

	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, "Homestead 120", p.Address)
	assert.Equal(t, now, p.DateOfBirth)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
	assert.NotNil(t, p.Visits)
	assert.Empty(t, p.Visits)
	assert.True(t, p.ID.IsZero())
	assert.NoError(t, models.Validate(p))
}

func TestPatientRequest_NewPatientMissingRequired(t *testing.T) {
	req := models.PatientRequest{FirstName: strPtr("John"), Address: strPtr("   ")}
	req.Normalize()

	err := models.Validate(req.NewPatient(models.Now()))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LastName")
	assert.Contains(t, err.Error(), "Address")
}

func TestPatientRequest_ChangesOnlySuppliedFields(t *testing.T) {
	now := models.Now()
	visit := primitive.NewObjectID()
	req := models.PatientRequest{LastName: strPtr("McGreggor"), Visits: &[]primitive.ObjectID{visit}}

	assert.Equal(t, bson.M{
		"updatedAt": now,
		"lastName":  "McGreggor",
		"visits":    []primitive.ObjectID{visit},
	}, req.Changes(now))
}

func TestPatientRequest_BlankUpdateFieldInvalid(t *testing.T) {
	req := models.PatientRequest{FirstName: strPtr(" ")}
	req.Normalize()

	assert.Error(t, models.Validate(req))
	assert.NoError(t, models.Validate(models.PatientRequest{}))
}

func TestPatient_PopulateNilVisits(t *testing.T) {
	p := models.Patient{ID: primitive.NewObjectID(), FirstName: "John"}

	populated := p.Populate(nil)

	assert.Equal(t, p.ID, populated.ID)
	assert.NotNil(t, populated.Visits)
	assert.Empty(t, populated.Visits)
}

func TestVisitRequest_NewVisitRequiresPatient(t *testing.T) {
	req := models.VisitRequest{ReasonOfVisit: strPtr("Headaches"), Consult: strPtr("Sleep more")}

	err := models.Validate(req.NewVisit(models.Now()))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Patient")
}

func TestVisitRequest_NewVisitKeepsDate(t *testing.T) {
	date := time.Date(2017, 10, 8, 10, 39, 22, 0, time.UTC)
	patient := primitive.NewObjectID()
	req := models.VisitRequest{
		ReasonOfVisit: strPtr("Headaches"),
		Consult:       strPtr("Sleep more"),
		Patient:       &patient,
		DateOfVisit:   &models.Date{Time: date},
	}

	v := req.NewVisit(models.Now())

	assert.NoError(t, models.Validate(v))
	assert.Equal(t, date, v.DateOfVisit)
	assert.Equal(t, patient, v.Patient)
	assert.NotNil(t, v.PrescribedMedication)
}

func TestVisitRequest_NilPatientUpdateInvalid(t *testing.T) {
	nilID := primitive.NilObjectID
	assert.Error(t, models.Validate(models.VisitRequest{Patient: &nilID}))

	id := primitive.NewObjectID()
	assert.NoError(t, models.Validate(models.VisitRequest{Patient: &id}))
}

func TestMedicationRequest_Changes(t *testing.T) {
	now := models.Now()
	req := models.MedicationRequest{Dose: strPtr("150mg"), PackageSize: strPtr(" 9 tablets ")}
	req.Normalize()

	assert.Equal(t, bson.M{
		"updatedAt":   now,
		"dose":        "150mg",
		"packageSize": "9 tablets",
	}, req.Changes(now))
}

func TestMedicationRequest_NewMedicationMissingName(t *testing.T) {
	req := models.MedicationRequest{Dose: strPtr("120mg"), PackageSize: strPtr("10 tablets")}

	err := models.Validate(req.NewMedication(models.Now()))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected time.Time
		wantErr  bool
	}{
		{name: "calendar date", body: `"2017-10-08"`, expected: time.Date(2017, 10, 8, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", body: `"2017-10-08T10:39:22Z"`, expected: time.Date(2017, 10, 8, 10, 39, 22, 0, time.UTC)},
		{name: "rfc3339 with offset", body: `"2017-10-08T12:39:22.5+02:00"`, expected: time.Date(2017, 10, 8, 10, 39, 22, 500000000, time.UTC)},
		{name: "not a date", body: `"08/10/2017"`, wantErr: true},
		{name: "not a string", body: `20171008`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d models.Date
			err := json.Unmarshal([]byte(tt.body), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestPatientRequest_CalendarDateOfBirth(t *testing.T) {
	var req models.PatientRequest
	err := json.Unmarshal([]byte(`{"firstName": "Jane", "lastName": "Doe", "address": "1 Main St", "dateOfBirth": "1990-05-17"}`), &req)
	assert.NoError(t, err)

	p := req.NewPatient(models.Now())

	assert.NoError(t, models.Validate(p))
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), p.DateOfBirth)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), req.Changes(models.Now())["dateOfBirth"])
}

func TestVisitRequest_CalendarDateOfVisit(t *testing.T) {
	var req models.VisitRequest
	err := json.Unmarshal([]byte(`{"reasonOfVisit": "flu", "consult": "rest", "patient": "`+primitive.NewObjectID().Hex()+`", "dateOfVisit": "2017-10-08"}`), &req)
	assert.NoError(t, err)

	v := req.NewVisit(models.Now())

	assert.NoError(t, models.Validate(v))
	assert.Equal(t, time.Date(2017, 10, 8, 0, 0, 0, 0, time.UTC), v.DateOfVisit)
}
