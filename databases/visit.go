package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/medical-record-api/models"
)

const visitName = "visits"

// VisitDatabase contains the methods to use with the visit database
type VisitDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Visit, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Visit, error)
	InsertOne(context.Context, *models.Visit, ...*options.InsertOneOptions) error
	FindOneAndUpdate(context.Context, interface{}, interface{}, ...*options.FindOneAndUpdateOptions) (*models.Visit, error)
	FindOneAndDelete(context.Context, interface{}, ...*options.FindOneAndDeleteOptions) (*models.Visit, error)
}

type visitDatabase struct {
	db DatabaseHelper
}

// NewVisitDatabase initializes a new instance of visit database with the provided db connection
func NewVisitDatabase(db DatabaseHelper) VisitDatabase {
	return &visitDatabase{
		db: db,
	}
}

func (v *visitDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Visit, error) {
	visit := &models.Visit{}
	err := v.db.Collection(visitName).FindOne(ctx, filter, opts...).Decode(visit)
	if err != nil {
		return nil, err
	}
	return visit, nil
}

func (v *visitDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Visit, error) {
	visits := []models.Visit{}
	cur, err := v.db.Collection(visitName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&visits)
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// InsertOne stores visit, assigning a new ObjectID when it has none
func (v *visitDatabase) InsertOne(ctx context.Context, visit *models.Visit, opts ...*options.InsertOneOptions) error {
	if visit.ID.IsZero() {
		visit.ID = primitive.NewObjectID()
	}
	_, err := v.db.Collection(visitName).InsertOne(ctx, visit, opts...)
	return err
}

func (v *visitDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Visit, error) {
	visit := &models.Visit{}
	err := v.db.Collection(visitName).FindOneAndUpdate(ctx, filter, update, opts...).Decode(visit)
	if err != nil {
		return nil, err
	}
	return visit, nil
}

func (v *visitDatabase) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) (*models.Visit, error) {
	visit := &models.Visit{}
	err := v.db.Collection(visitName).FindOneAndDelete(ctx, filter, opts...).Decode(visit)
	if err != nil {
		return nil, err
	}
	return visit, nil
}
