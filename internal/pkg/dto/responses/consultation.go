package responses

type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
}

// ConsultationStatus is one entry of the per-patient status feed: the state of
// this patient's request towards one doctor, plus the doctor's reply if any.
type ConsultationStatus struct {
	DoctorID      string `json:"doctorId"`
	Status        string `json:"status"`
	DoctorMessage string `json:"doctorMessage,omitempty"`
}

type ConsultationPatient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ConsultationRequest struct {
	ID            string              `json:"id"`
	Patient       ConsultationPatient `json:"patient"`
	Message       string              `json:"message"`
	FileName      string              `json:"fileName"`
	FileType      string              `json:"fileType"`
	Status        string              `json:"status"`
	DoctorMessage string              `json:"doctorMessage,omitempty"`
	CreatedAt     string              `json:"createdAt,omitempty"`
}
