package model

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a stored resource. Apart from "_id" its content is whatever
// the client submitted.
type Document = bson.M

// IDField is the key the database assigns the identity under.
const IDField = "_id"

type FieldType string

const (
	String FieldType = "string"
	Array  FieldType = "array"
	Date   FieldType = "date"
)

type Field struct {
	Name string
	Type FieldType
}

// Kind describes one resource collection. Path doubles as the route segment
// and the collection name.
type Kind struct {
	Name   string
	Path   string
	Fields []Field
}

func (k Kind) Collection() string {
	return k.Path
}

// Kinds returns every resource kind in routing order.
func Kinds() []Kind {
	return []Kind{Student, Project, Certificate, Work}
}

var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Field string
	Type  FieldType
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be a %s", e.Field, e.Type)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidateShape checks that every field of shape present in doc has the
// declared type. Absent fields pass and fields outside the shape are ignored.
func ValidateShape(doc Document, shape []Field) error {
	for _, field := range shape {
		value, ok := doc[field.Name]
		if !ok {
			continue
		}
		if !matches(value, field.Type) {
			return &ValidationError{Field: field.Name, Type: field.Type}
		}
	}
	return nil
}

func matches(value interface{}, fieldType FieldType) bool {
	switch fieldType {
	case String:
		_, ok := value.(string)
		return ok
	case Array:
		switch value.(type) {
		case primitive.A, []interface{}:
			return true
		}
	case Date:
		switch value.(type) {
		case primitive.DateTime, time.Time, string:
			return true
		}
	}
	return false
}
