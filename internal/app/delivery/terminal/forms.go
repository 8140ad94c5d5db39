package terminal

import (
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/exceptions"
	"docnet-client/internal/pkg/utils"
)

// ValidateLoginForm normalizes the login form and checks its field
// constraints before the session manager is allowed to touch the network.
func ValidateLoginForm(form *requests.Login) error {
	utils.SanitizeLoginRequest(form)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// ValidateRegisterFields runs the register checks that need no network:
// sanitization, field constraints and password confirmation.
func ValidateRegisterFields(form *requests.Register) error {
	utils.SanitizeRegisterRequest(form)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if form.Password != form.ConfirmPassword {
		return exceptions.ErrPasswordsDoNotMatch()
	}
	return nil
}

// ValidateRegisterForm is the full register gate: the local field checks plus
// the doctor NMC verification requirement.
func ValidateRegisterForm(form *requests.Register) error {
	if err := ValidateRegisterFields(form); err != nil {
		return err
	}
	if form.Role == constvars.LoginRoleDoctor && !form.NMCVerified {
		return exceptions.ErrNMCNotVerified()
	}
	return nil
}
