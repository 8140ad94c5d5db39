package requests

type CreateDonation struct {
	Type         string `json:"type" validate:"required,donation_type"`
	BloodType    string `json:"bloodType,omitempty"`
	OrganType    string `json:"organType,omitempty"`
	Urgency      string `json:"urgency" validate:"required,urgency"`
	PatientName  string `json:"patientName" validate:"required"`
	HospitalName string `json:"hospitalName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	ContactPhone string `json:"contactPhone" validate:"required"`
	Description  string `json:"description"`
	RequiredBy   string `json:"requiredBy" validate:"required"`
	CreatedAt    string `json:"createdAt,omitempty"`
	CreatedBy    string `json:"createdBy" validate:"required,email"`
}

// UpdateDonation round-trips the server's representation with edited fields;
// the id decides which request is replaced.
type UpdateDonation struct {
	ID           string `json:"id" validate:"required"`
	Type         string `json:"type" validate:"required,donation_type"`
	BloodType    string `json:"bloodType,omitempty"`
	OrganType    string `json:"organType,omitempty"`
	Urgency      string `json:"urgency" validate:"required,urgency"`
	PatientName  string `json:"patientName" validate:"required"`
	HospitalName string `json:"hospitalName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	ContactPhone string `json:"contactPhone" validate:"required"`
	Description  string `json:"description"`
	RequiredBy   string `json:"requiredBy" validate:"required"`
	CreatedAt    string `json:"createdAt,omitempty"`
	CreatedBy    string `json:"createdBy,omitempty"`
}
