package responses

import "docnet-client/internal/app/models"

// Auth is the flat {token, ...user} body the login and register endpoints
// answer with. The token is split off and the rest becomes the profile.
type Auth struct {
	Token          string      `json:"token"`
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           models.Role `json:"role"`
	IsVerified     bool        `json:"isVerified"`
	NMCNumber      string      `json:"nmcNumber"`
	Specialization string      `json:"specialization"`
	Location       string      `json:"location"`
	Avatar         string      `json:"avatar"`
}

func (a *Auth) User() *models.User {
	return &models.User{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		IsVerified:     a.IsVerified,
		NMCNumber:      a.NMCNumber,
		Specialization: a.Specialization,
		Location:       a.Location,
		Avatar:         a.Avatar,
	}
}

type VerifyNMC struct {
	IsValid bool `json:"isValid"`
}
