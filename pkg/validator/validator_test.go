package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Name      string `json:"full_name" validate:"required,min=2"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	RoomID    int    `json:"room_id" validate:"gte=1"`
}

type sampleQuery struct {
	PageSize int `schema:"pageSize" validate:"gte=1,lte=100"`
}

func TestFormatValidationErrors_UsesWireNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleBody{Name: "", BirthDate: "03/02/1984", RoomID: 0})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"full_name":  "full_name is required",
		"birth_date": "birth_date must be a date in the format YYYY-MM-DD",
		"room_id":    "room_id must be greater than or equal to 1",
	}, v.FormatValidationErrors(err))
}

func TestFormatValidationErrors_QueryFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleQuery{PageSize: 500})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"pageSize": "pageSize must be less than or equal to 100",
	}, v.FormatValidationErrors(err))
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&sampleBody{Name: "Ann", BirthDate: "1984-03-02", RoomID: 2}))
	assert.NoError(t, v.Validate(&sampleQuery{PageSize: 100}))
}

func TestFormatValidationErrors_IgnoresOtherErrors(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.FormatValidationErrors(errors.New("boom")))
}
