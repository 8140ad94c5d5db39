package utils

import (
	"docnet-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("donation_type", validateDonationType)
	validate.RegisterValidation("urgency", validateUrgency)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Login and register forms carry the role the way the backend login endpoint
// expects it, in lowercase.
func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.LoginRoleDoctor || value == constvars.LoginRolePatient
}

func validateDonationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.DonationTypeBlood || value == constvars.DonationTypeOrgan
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.UrgencyLow || value == constvars.UrgencyMedium || value == constvars.UrgencyHigh
}
