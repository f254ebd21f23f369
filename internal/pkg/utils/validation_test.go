package utils

import (
	"medical-portal/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEgyptianMobilePhone(t *testing.T) {
	for _, phone := range []string{"01012345678", "+201012345678", "01112345678", "01212345678", "01512345678"} {
		assert.True(t, IsEgyptianMobilePhone(phone), phone)
	}
	for _, phone := range []string{"0201234567", "123456", "01312345678", "+2001012345678", ""} {
		assert.False(t, IsEgyptianMobilePhone(phone), phone)
	}
}

func TestIsContactEmail(t *testing.T) {
	assert.True(t, IsContactEmail("patient@clinic.eg"))
	assert.False(t, IsContactEmail("patient@clinic"))
	assert.False(t, IsContactEmail("pat ient@clinic.eg"))
	assert.False(t, IsContactEmail("patient.clinic.eg"))
}

func TestValidateStruct(t *testing.T) {
	t.Run("Register Rejects Admin Role", func(t *testing.T) {
		err := ValidateStruct(&requests.RegisterUser{Name: "A", Email: "a@b.co", Password: "secret1", Role: "admin"})
		assert.Error(t, err)
	})

	t.Run("Register Accepts Doctor", func(t *testing.T) {
		err := ValidateStruct(&requests.RegisterUser{Name: "A", Email: "a@b.co", Password: "secret1", Role: "doctor"})
		assert.NoError(t, err)
	})
}
