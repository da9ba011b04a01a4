package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/medical-record-api/models"
)

const medicationName = "medications"

// MedicationDatabase contains the methods to use with the medication database
type MedicationDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Medication, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Medication, error)
	InsertOne(context.Context, *models.Medication, ...*options.InsertOneOptions) error
	FindOneAndUpdate(context.Context, interface{}, interface{}, ...*options.FindOneAndUpdateOptions) (*models.Medication, error)
	FindOneAndDelete(context.Context, interface{}, ...*options.FindOneAndDeleteOptions) (*models.Medication, error)
}

type medicationDatabase struct {
	db DatabaseHelper
}

// NewMedicationDatabase initializes a new instance of medication database with the provided db connection
func NewMedicationDatabase(db DatabaseHelper) MedicationDatabase {
	return &medicationDatabase{
		db: db,
	}
}

func (m *medicationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Medication, error) {
	medication := &models.Medication{}
	err := m.db.Collection(medicationName).FindOne(ctx, filter, opts...).Decode(medication)
	if err != nil {
		return nil, err
	}
	return medication, nil
}

func (m *medicationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Medication, error) {
	medications := []models.Medication{}
	cur, err := m.db.Collection(medicationName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&medications)
	if err != nil {
		return nil, err
	}
	return medications, nil
}

// InsertOne stores medication, assigning a new ObjectID when it has none
func (m *medicationDatabase) InsertOne(ctx context.Context, medication *models.Medication, opts ...*options.InsertOneOptions) error {
	if medication.ID.IsZero() {
		medication.ID = primitive.NewObjectID()
	}
	_, err := m.db.Collection(medicationName).InsertOne(ctx, medication, opts...)
	return err
}

func (m *medicationDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Medication, error) {
	medication := &models.Medication{}
	err := m.db.Collection(medicationName).FindOneAndUpdate(ctx, filter, update, opts...).Decode(medication)
	if err != nil {
		return nil, err
	}
	return medication, nil
}

func (m *medicationDatabase) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) (*models.Medication, error) {
	medication := &models.Medication{}
	err := m.db.Collection(medicationName).FindOneAndDelete(ctx, filter, opts...).Decode(medication)
	if err != nil {
		return nil, err
	}
	return medication, nil
}
