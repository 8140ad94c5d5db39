package constvars

const (
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"

	// Login and register forms send the role in lowercase; the backend
	// answers with the uppercase variants above.
	LoginRoleDoctor  = "doctor"
	LoginRolePatient = "patient"
)

// Backend endpoints. The base URL comes from configuration and is resolved
// once at process start.
const (
	EndpointMe        = "/me"
	EndpointLogin     = "/login"
	EndpointRegister  = "/register"
	EndpointLogout    = "/auth/logout"
	EndpointVerifyNMC = "/verify-nmc"

	EndpointAIDiagnosis = "/aiDiag"
	EndpointHealthFacts = "/facts"

	EndpointCasePosts        = "/case-posts"
	EndpointCasePostComments = "/case-posts/%s/comments"
	EndpointCasePostLike     = "/case-posts/%s/like"
	EndpointCasePostFile     = "/case-posts/file/%s"

	EndpointDonations       = "/donation"
	EndpointDonationByID    = "/donation/%s"
	EndpointDonationUpdate  = "/donation/update"
	EndpointDonationsByUser = "/user/%s"

	EndpointConsultationDoctors    = "/consultations/doctors"
	EndpointConsultationRequest    = "/consultations/request"
	EndpointConsultationStatus     = "/consultations/status/%s"
	EndpointConsultationsForDoctor = "/consultations/doctor/%s"
	EndpointConsultationApprove    = "/consultations/approve"
	EndpointConsultationReject     = "/reject"
	EndpointConsultationDownload   = "/consultations/download/%s"
)

const (
	QueryParamUserID        = "userId"
	QueryParamRequestID     = "requestId"
	QueryParamDoctorMessage = "doctorMessage"
)

// Multipart part names used by the upload endpoints.
const (
	MultipartPartPost      = "post"
	MultipartPartFile      = "file"
	MultipartPartMessage   = "message"
	MultipartPartDoctorID  = "doctorId"
	MultipartPartPatientID = "patientId"
)

const (
	ConsultationStatusPending  = "pending"
	ConsultationStatusApproved = "approved"
	ConsultationStatusRejected = "rejected"
)

const (
	DonationTypeBlood = "blood"
	DonationTypeOrgan = "organ"

	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)
