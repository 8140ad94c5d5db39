package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email address",
	"min":       "must be at least %s characters",
	"max":       "must be at most %s characters",
	"oneof":     "must be one of: %s",
	"user_role": "must be either doctor or patient",
	"e164":      "must be a valid phone number",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
