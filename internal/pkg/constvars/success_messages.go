package constvars

const (
	MsgValidatingSession    = "Validating session..."
	MsgLoginSuccess         = "Logged in successfully."
	MsgRegisterSuccess      = "Account created successfully."
	MsgLogoutSuccess        = "Logged out."
	MsgNMCVerified          = "NMC registration number verified."
	MsgCasePostCreated      = "Case posted."
	MsgCommentAdded         = "Comment added."
	MsgDonationCreated      = "Donation request posted."
	MsgDonationUpdated      = "Donation request updated."
	MsgDonationDeleted      = "Donation request deleted."
	MsgConsultationSent     = "Request Sent"
	MsgConsultationApproved = "Request approved."
	MsgConsultationRejected = "Request rejected."
)
