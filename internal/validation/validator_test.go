package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metzenhof/internal/entities"
)

func validRequest() entities.BookingRequest {
	return entities.BookingRequest{
		Date:      "2026-10-22",
		Time:      "18:30",
		Guests:    4,
		Table:     "R1",
		FirstName: "Anna",
		LastName:  "Huber",
		Email:     "anna@example.at",
		Phone:     "+43 660 1234567",
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.at"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@c.at"))
	assert.False(t, IsValidEmail("@c.at"))
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(validRequest()))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	req := validRequest()
	req.FirstName = ""
	req.Email = "not-an-email"
	req.Guests = 0
	req.Time = "7pm"

	err := Struct(req)
	require.Error(t, err)

	fields := Fields(err)
	assert.Equal(t, "required", fields["firstName"])
	assert.Equal(t, "basicemail", fields["email"])
	assert.Equal(t, "required", fields["guests"])
	assert.Equal(t, "datetime", fields["time"])
	assert.NotContains(t, fields, "lastName")
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(assert.AnError))
}
