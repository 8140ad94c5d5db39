package responses

type Donation struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	BloodType    string `json:"bloodType,omitempty"`
	OrganType    string `json:"organType,omitempty"`
	Urgency      string `json:"urgency"`
	PatientName  string `json:"patientName"`
	HospitalName string `json:"hospitalName"`
	Location     string `json:"location"`
	ContactPhone string `json:"contactPhone"`
	Description  string `json:"description"`
	RequiredBy   string `json:"requiredBy"`
	CreatedAt    string `json:"createdAt"`
	CreatedBy    string `json:"createdBy"`
}
