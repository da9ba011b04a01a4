package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/medical-record-api/databases"
	"github.com/linesmerrill/medical-record-api/databases/mocks"
	"github.com/linesmerrill/medical-record-api/models"
)

func TestVisitDatabase_FindOneAndUpdate(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	id := primitive.NewObjectID()
	med := primitive.NewObjectID()
	update := bson.M{"$set": bson.M{"prescribedMedication": []primitive.ObjectID{med}}}
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Visit)
		arg.ID = id
		arg.PrescribedMedication = []primitive.ObjectID{med}
	})
	collectionHelper.On("FindOneAndUpdate", context.Background(), bson.M{"_id": id}, update, after).Return(srHelper)
	dbHelper.On("Collection", "visits").Return(collectionHelper)

	visit, err := databases.NewVisitDatabase(dbHelper).FindOneAndUpdate(context.Background(), bson.M{"_id": id}, update, after)

	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{med}, visit.PrescribedMedication)
}

func TestVisitDatabase_FindOneAndUpdateNoDocuments(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	collectionHelper.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything).Return(srHelper)
	dbHelper.On("Collection", "visits").Return(collectionHelper)

	visit, err := databases.NewVisitDatabase(dbHelper).FindOneAndUpdate(context.Background(), bson.M{}, bson.M{})

	assert.Nil(t, visit)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestVisitDatabase_FindByIDs(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	filter := bson.M{"_id": bson.M{"$in": ids}}

	cursorHelper.On("Decode", mock.Anything).Return(nil)
	collectionHelper.On("Find", context.Background(), filter).Return(cursorHelper, nil)
	dbHelper.On("Collection", "visits").Return(collectionHelper)

	visits, err := databases.NewVisitDatabase(dbHelper).Find(context.Background(), filter)

	assert.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)
}
