package requests

// CreateConsultation goes out as plain multipart fields next to the uploaded
// document.
type CreateConsultation struct {
	DoctorID  string `validate:"required"`
	PatientID string `validate:"required"`
	Message   string `validate:"required"`
}

type ResolveConsultation struct {
	RequestID     string `validate:"required"`
	DoctorMessage string
}
