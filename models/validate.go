package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("objectid", validateObjectID)
}

// Validate runs the `validate` struct tags of s
func Validate(s interface{}) error {
	return validate.Struct(s)
}

func validateObjectID(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(primitive.ObjectID)
	return ok && !id.IsZero()
}

// Now returns the current time at the precision mongo stores dates with
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func valueOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func idsOrEmpty(ids *[]primitive.ObjectID) []primitive.ObjectID {
	if ids == nil || *ids == nil {
		return []primitive.ObjectID{}
	}
	return *ids
}
