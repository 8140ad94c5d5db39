package models

import "docnet-client/internal/pkg/constvars"

type Role string

const (
	RoleDoctor  Role = constvars.RoleDoctor
	RolePatient Role = constvars.RolePatient
)

// User is the profile the backend returns; the client never mutates it except
// by replacing it wholesale with a fresh server representation.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	IsVerified     bool   `json:"isVerified,omitempty"`
	NMCNumber      string `json:"nmcNumber,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

func (u *User) IsDoctor() bool {
	return u != nil && u.Role == RoleDoctor
}
