package constvars

// Client messages are shown to the person at the terminal; dev messages go to
// the log only.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNetworkFailure                = "Could not reach the server, please check your connection"

	ErrClientInvalidCredentials  = "Invalid credentials. Please check your email, password, and role."
	ErrClientLoginFailed         = "Login failed. Please try again."
	ErrClientRegistrationFailed  = "Registration failed. Please try again."
	ErrClientEmailAlreadyInUse   = "Registration failed. Email might already be in use."
	ErrClientPasswordsDoNotMatch = "Passwords do not match."
	ErrClientNMCNotVerified      = "Please verify your NMC registration number first."
	ErrClientInvalidNMCNumber    = "Invalid NMC registration number. Please check and try again."
	ErrClientNMCVerifyFailed     = "Failed to verify NMC number. Please try again."
	ErrClientNotLoggedIn         = "You are not logged in."

	ErrClientAlreadyLiked          = "You have already liked this post."
	ErrClientDonationAlreadyPosted = "Request already posted for this patient."
	ErrClientDonationDeleteFailed  = "Failed to delete request"
	ErrClientDonationUpdateFailed  = "Failed to update the request"
	ErrClientConsultAlreadyPending = "You already have a pending request with this doctor."
	ErrClientFileAndMessageNeeded  = "Please upload a file and enter a message."
	ErrClientFactsUnavailable      = "Could not load health facts. Re-open the dashboard to retry."
)

const (
	ErrDevValidationFailed        = "VALIDATION_FAILED"
	ErrDevCannotMarshalJSON       = "CANNOT_MARSHAL_JSON"
	ErrDevCannotDecodeResponse    = "CANNOT_DECODE_RESPONSE"
	ErrDevBuildRequest            = "CANNOT_BUILD_HTTP_REQUEST"
	ErrDevSendRequest             = "CANNOT_SEND_HTTP_REQUEST"
	ErrDevUnexpectedStatus        = "UNEXPECTED_HTTP_STATUS"
	ErrDevRateLimiterWait         = "RATE_LIMITER_WAIT_FAILED"
	ErrDevBuildMultipartForm      = "CANNOT_BUILD_MULTIPART_FORM"
	ErrDevInvalidCredentials      = "INVALID_CREDENTIALS"
	ErrDevEmailAlreadyExists      = "EMAIL_ALREADY_EXISTS"
	ErrDevPasswordsDoNotMatch     = "PASSWORDS_DO_NOT_MATCH"
	ErrDevNMCNotVerified          = "NMC_NOT_VERIFIED"
	ErrDevSessionInvalidOrExpired = "SESSION_INVALID_OR_EXPIRED"
	ErrDevAlreadyLiked            = "POST_ALREADY_LIKED"
	ErrDevDonationAlreadyPosted   = "DONATION_ALREADY_POSTED"
	ErrDevConsultAlreadyPending   = "CONSULTATION_ALREADY_PENDING"
	ErrDevDeadlineExceeded        = "SERVER_DEADLINE_EXCEEDED"
)
