package requests

// CreateCasePost is serialized into the "post" multipart part; an optional
// attachment rides along in the "file" part.
type CreateCasePost struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	PatientAge     int    `json:"patientAge" validate:"min=0,max=120"`
	PatientGender  string `json:"patientGender" validate:"required,oneof=male female other"`
	Symptoms       string `json:"symptoms" validate:"required"`
	DoctorID       string `json:"doctorId" validate:"required"`
	DoctorName     string `json:"doctorName" validate:"required"`
	Specialization string `json:"specialization"`
	Likes          int    `json:"likes"`
	Comments       []any  `json:"comments"`
}

type CreateComment struct {
	DoctorID   string `json:"doctorId" validate:"required"`
	DoctorName string `json:"doctorName" validate:"required"`
	Content    string `json:"content" validate:"required"`
}
