package terminal

import (
	"testing"

	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatientForm() *requests.Register {
	return &requests.Register{
		Name:            "Jane Roe",
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            "patient",
	}
}

func TestValidateLoginForm_NormalizesInput(t *testing.T) {
	form := &requests.Login{Email: "  jane@example.com ", Password: "pw", Role: " Doctor "}

	require.NoError(t, ValidateLoginForm(form))
	assert.Equal(t, "jane@example.com", form.Email)
	assert.Equal(t, "doctor", form.Role)
}

func TestValidateLoginForm_FieldConstraints(t *testing.T) {
	err := ValidateLoginForm(&requests.Login{Email: "not-an-email", Password: "pw", Role: "doctor"})
	require.Error(t, err)

	err = ValidateLoginForm(&requests.Login{Email: "jane@example.com", Password: "pw", Role: "admin"})
	require.Error(t, err)
}

func TestValidateRegisterForm_Valid(t *testing.T) {
	require.NoError(t, ValidateRegisterForm(validPatientForm()))
}

func TestValidateRegisterForm_PasswordMismatch(t *testing.T) {
	form := validPatientForm()
	form.ConfirmPassword = "different"

	err := ValidateRegisterForm(form)
	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientPasswordsDoNotMatch, exceptions.ClientMessageOf(err))
}

func TestValidateRegisterForm_DoctorNeedsVerifiedNMC(t *testing.T) {
	form := validPatientForm()
	form.Role = "doctor"
	form.NMCNumber = "NMC-1234"

	err := ValidateRegisterForm(form)
	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientNMCNotVerified, exceptions.ClientMessageOf(err))

	form.NMCVerified = true
	require.NoError(t, ValidateRegisterForm(form))
}

func TestValidateRegisterForm_FieldConstraints(t *testing.T) {
	form := validPatientForm()
	form.Email = "not-an-email"
	require.Error(t, ValidateRegisterForm(form))

	form = validPatientForm()
	form.Password = "short"
	form.ConfirmPassword = "short"
	require.Error(t, ValidateRegisterForm(form))

	form = validPatientForm()
	form.Role = "admin"
	require.Error(t, ValidateRegisterForm(form))
}
