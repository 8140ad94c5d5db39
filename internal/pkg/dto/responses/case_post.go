package responses

type CasePost struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PatientAge     int       `json:"patientAge"`
	PatientGender  string    `json:"patientGender"`
	Symptoms       string    `json:"symptoms"`
	DoctorID       string    `json:"doctorId"`
	DoctorName     string    `json:"doctorName"`
	Specialization string    `json:"specialization"`
	CreatedAt      string    `json:"createdAt"`
	Likes          int       `json:"likes"`
	Comments       []Comment `json:"comments"`
	FileURL        string    `json:"fileUrl,omitempty"`
	FileName       string    `json:"fileName,omitempty"`
}

type Comment struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	CreatedAt  string `json:"createdAt"`
}
