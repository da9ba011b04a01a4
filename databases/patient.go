package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/medical-record-api/models"
)

const patientName = "patients"

// PatientDatabase contains the methods to use with the patient database
type PatientDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Patient, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Patient, error)
	InsertOne(context.Context, *models.Patient, ...*options.InsertOneOptions) error
	FindOneAndUpdate(context.Context, interface{}, interface{}, ...*options.FindOneAndUpdateOptions) (*models.Patient, error)
	FindOneAndDelete(context.Context, interface{}, ...*options.FindOneAndDeleteOptions) (*models.Patient, error)
}

type patientDatabase struct {
	db DatabaseHelper
}

// NewPatientDatabase initializes a new instance of patient database with the provided db connection
func NewPatientDatabase(db DatabaseHelper) PatientDatabase {
	return &patientDatabase{
		db: db,
	}
}

func (p *patientDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Patient, error) {
	patient := &models.Patient{}
	err := p.db.Collection(patientName).FindOne(ctx, filter, opts...).Decode(patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (p *patientDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Patient, error) {
	patients := []models.Patient{}
	cur, err := p.db.Collection(patientName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// InsertOne stores patient, assigning a new ObjectID when it has none
func (p *patientDatabase) InsertOne(ctx context.Context, patient *models.Patient, opts ...*options.InsertOneOptions) error {
	if patient.ID.IsZero() {
		patient.ID = primitive.NewObjectID()
	}
	_, err := p.db.Collection(patientName).InsertOne(ctx, patient, opts...)
	return err
}

func (p *patientDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Patient, error) {
	patient := &models.Patient{}
	err := p.db.Collection(patientName).FindOneAndUpdate(ctx, filter, update, opts...).Decode(patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (p *patientDatabase) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) (*models.Patient, error) {
	patient := &models.Patient{}
	err := p.db.Collection(patientName).FindOneAndDelete(ctx, filter, opts...).Decode(patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}
