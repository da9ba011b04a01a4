package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/medical-record-api/databases"
	"github.com/linesmerrill/medical-record-api/databases/mocks"
	"github.com/linesmerrill/medical-record-api/models"
)

func TestPatientDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	id := primitive.NewObjectID()

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(mongo.ErrNoDocuments)

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Patient)
		arg.ID = id
		arg.FirstName = "John"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "patients").Return(collectionHelper)

	patientDba := databases.NewPatientDatabase(dbHelper)

	patient, err := patientDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Nil(t, patient)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)

	patient, err = patientDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, &models.Patient{ID: id, FirstName: "John"}, patient)
	assert.NoError(t, err)
}

func TestPatientDatabase_Find(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Patient)
		*arg = append(*arg, models.Patient{FirstName: "John"}, models.Patient{FirstName: "Sara"})
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.D{}).
		Return(cursorHelper, nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}).
		Return(nil, errors.New("mocked-error"))

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "patients").Return(collectionHelper)

	patientDba := databases.NewPatientDatabase(dbHelper)

	patients, err := patientDba.Find(context.Background(), bson.D{})
	assert.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.Equal(t, "Sara", patients[1].FirstName)

	patients, err = patientDba.Find(context.Background(), bson.M{"error": true})
	assert.Nil(t, patients)
	assert.EqualError(t, err, "mocked-error")
}

func TestPatientDatabase_InsertOneAssignsID(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	insertResult := &mocks.InsertOneResultHelper{}

	collectionHelper.
		On("InsertOne", context.Background(), mock.AnythingOfType("*models.Patient")).
		Return(insertResult, nil)
	dbHelper.On("Collection", "patients").Return(collectionHelper)

	patient := &models.Patient{FirstName: "John"}
	err := databases.NewPatientDatabase(dbHelper).InsertOne(context.Background(), patient)

	assert.NoError(t, err)
	assert.False(t, patient.ID.IsZero())
	collectionHelper.AssertExpectations(t)
}

func TestPatientDatabase_InsertOneError(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.
		On("InsertOne", context.Background(), mock.Anything).
		Return(nil, errors.New("mocked-error"))
	dbHelper.On("Collection", "patients").Return(collectionHelper)

	id := primitive.NewObjectID()
	patient := &models.Patient{ID: id}
	err := databases.NewPatientDatabase(dbHelper).InsertOne(context.Background(), patient)

	assert.EqualError(t, err, "mocked-error")
	assert.Equal(t, id, patient.ID)
}

func TestPatientDatabase_FindOneAndDelete(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	id := primitive.NewObjectID()
	srHelper.On("Decode", mock.Anything).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(0).(*models.Patient).ID = id
	})
	srHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments).Once()

	collectionHelper.On("FindOneAndDelete", context.Background(), bson.M{"_id": id}).Return(srHelper)
	dbHelper.On("Collection", "patients").Return(collectionHelper)

	patientDba := databases.NewPatientDatabase(dbHelper)

	patient, err := patientDba.FindOneAndDelete(context.Background(), bson.M{"_id": id})
	assert.NoError(t, err)
	assert.Equal(t, id, patient.ID)

	patient, err = patientDba.FindOneAndDelete(context.Background(), bson.M{"_id": id})
	assert.Nil(t, patient)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
