package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterCustomValidators(v))
	return v
}

func TestCreateStudentRequest_PhoneValidation(t *testing.T) {
	v := newBindingValidator(t)

	valid := []string{
		"+919812345678",
		"9812345678",
		"123456789012345",
	}
	invalid := []string{
		"not-a-phone!!",
		"12345",
		"+12345678901234567",
		"98-1234-5678",
		"98123 45678",
	}

	base := CreateStudentRequest{
		StudentID: "HM2024001",
		Name:      "Priya Sharma",
		Email:     "priya.sharma@example.edu",
	}

	for _, phone := range valid {
		t.Run("valid "+phone, func(t *testing.T) {
			req := base
			req.PhoneNumber = &phone
			assert.NoError(t, v.Struct(req))
		})
	}

	for _, phone := range invalid {
		t.Run("invalid "+phone, func(t *testing.T) {
			req := base
			req.PhoneNumber = &phone
			assert.Error(t, v.Struct(req))
		})
	}
}

func TestCreateStudentRequest_PhoneOptional(t *testing.T) {
	v := newBindingValidator(t)

	req := CreateStudentRequest{
		StudentID: "HM2024002",
		Name:      "Arjun Mehta",
		Email:     "arjun.mehta@example.edu",
	}
	assert.NoError(t, v.Struct(req))
}
