package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCollectsEveryFailure(t *testing.T) {
	v := NewValidator().
		Field("dir", "", Required).
		Field("company", "not-a-uuid", Optional(ValidUUID)).
		Field("doctype", "ORDER", Required)

	assert.False(t, v.Valid())
	require.Len(t, v.Errors(), 2)
	assert.Equal(t, "dir", v.Errors()[0].Field)
	assert.Equal(t, "is required", v.Errors()[0].Message)
	assert.Equal(t, "company", v.Errors()[1].Field)
}

func TestValidatorErrIsConfigurationError(t *testing.T) {
	err := NewValidator().Field("dir", "  ", Required).Err()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "dir is required")
}

func TestValidatorPassesCleanInput(t *testing.T) {
	v := NewValidator().
		Field("dir", "/data/in", Required).
		Field("company", "", Optional(ValidUUID)).
		Field("company", "7d444840-9dc0-11d1-b245-5ffdce74fad2", Optional(ValidUUID))

	assert.True(t, v.Valid())
	assert.NoError(t, v.Err())
	assert.Empty(t, v.Errors())
}

func TestRuleConstructors(t *testing.T) {
	assert.Empty(t, MaxLength(5)("abc"))
	assert.NotEmpty(t, MaxLength(2)("abc"))
	assert.Empty(t, OneOf("csv", "xlsx")("xlsx"))
	assert.NotEmpty(t, OneOf("csv", "xlsx")("pdf"))
	assert.NotEmpty(t, ValidUUID("nope"))
	assert.Empty(t, ValidUUID("7d444840-9dc0-11d1-b245-5ffdce74fad2"))
}
