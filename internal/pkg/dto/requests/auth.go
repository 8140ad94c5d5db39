package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,user_role"`
}

// Register carries everything the register form collects. ConfirmPassword and
// NMCVerified never go over the wire; the caller checks them before the
// session manager is invoked at all.
type Register struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-"`
	Role            string `json:"role" validate:"required,user_role"`
	NMCNumber       string `json:"nmcNumber,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
	Location        string `json:"location,omitempty"`
	IsVerified      bool   `json:"isVerified"`
	NMCVerified     bool   `json:"-"`
}

type VerifyNMC struct {
	NMCNumber string `json:"nmcNumber" validate:"required"`
}
