package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestKinds(t *testing.T) {
	paths := map[string]bool{}
	for _, kind := range Kinds() {
		require.NotEmpty(t, kind.Name)
		require.NotEmpty(t, kind.Fields)
		require.Equal(t, kind.Path, kind.Collection())
		require.False(t, paths[kind.Path], "duplicate path %s", kind.Path)
		paths[kind.Path] = true
	}
	require.Equal(t, map[string]bool{"students": true, "projects": true, "certificates": true, "works": true}, paths)
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, ValidateShape(Document{}, UpdateShape))
	require.NoError(t, ValidateShape(Document{"name": "Ada", "email": "ada@example.com"}, UpdateShape))
	require.NoError(t, ValidateShape(Document{"age": 36}, UpdateShape))

	err := ValidateShape(Document{"name": int32(1)}, UpdateShape)
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, "name must be a string")

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateShape(Document{"email": nil}, UpdateShape), &validationErr)
	require.Equal(t, "email", validationErr.Field)
}

func TestValidateShapeTypes(t *testing.T) {
	require.NoError(t, ValidateShape(Document{"technologies": primitive.A{"go"}}, Project.Fields))
	require.Error(t, ValidateShape(Document{"technologies": "go"}, Project.Fields))
	require.NoError(t, ValidateShape(Document{"issueDate": primitive.NewDateTimeFromTime(time.Now())}, Certificate.Fields))
	require.Error(t, ValidateShape(Document{"startDate": 2020}, Work.Fields))
}
