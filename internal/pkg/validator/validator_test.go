package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Rooms int    `json:"rooms" validate:"gte=1"`
	Note  string `json:"-" validate:"omitempty,min=3"`
}

func TestValidate_Valid(t *testing.T) {
	assert.Nil(t, Validate(&sample{Email: "anna@example.com", Rooms: 2}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	errs := Validate(&sample{Email: "not-an-email", Rooms: 0})
	require.Len(t, errs, 2)

	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email", errs[0].Rule)
	assert.Equal(t, "rooms", errs[1].Field)
	assert.Equal(t, "gte", errs[1].Rule)
	assert.Equal(t, "1", errs[1].Param)
}

func TestValidate_UnexposedFieldFallsBackToGoName(t *testing.T) {
	errs := Validate(&sample{Email: "anna@example.com", Rooms: 1, Note: "ab"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Note", errs[0].Field)
}
