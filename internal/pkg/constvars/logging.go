package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingPathKey       = "path"
	LoggingStatusKey     = "status"
	LoggingDurationKey   = "duration"
	LoggingViewKey       = "view"
	LoggingRoleKey       = "role"
	LoggingUserIDKey     = "user_id"
	LoggingPostIDKey     = "post_id"
	LoggingDonationIDKey = "donation_id"
	LoggingConsultIDKey  = "consultation_id"
	LoggingFileNameKey   = "file_name"
)

const ResponseUnknown = "unknown"
