package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConnectedError(t *testing.T) {
	err := NotConnectedError()
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

func TestCreateSchemaError(t *testing.T) {
	originalErr := errors.New("permission denied")

	err := CreateSchemaError(originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaCreateError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestMigrateSchemaError(t *testing.T) {
	originalErr := errors.New("column type change")

	err := MigrateSchemaError(originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaMigrateError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
