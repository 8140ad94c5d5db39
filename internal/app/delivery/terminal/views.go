package terminal

import "docnet-client/internal/app/models"

// View selects the active screen. The set is closed; navigation input is
// mapped onto it before routing.
type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewDoctorDashboard
	ViewPatientDashboard
	ViewCases
	ViewUpload
	ViewDonations
	ViewRequests
	ViewAIDiagnosis
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewDoctorDashboard:
		return "doctor-dashboard"
	case ViewPatientDashboard:
		return "patient-dashboard"
	case ViewCases:
		return "cases"
	case ViewUpload:
		return "upload"
	case ViewDonations:
		return "donations"
	case ViewRequests:
		return "requests"
	case ViewAIDiagnosis:
		return "ai-diagnosis"
	default:
		return "unknown"
	}
}

// DashboardFor returns the default landing view for a role.
func DashboardFor(role models.Role) View {
	if role == models.RoleDoctor {
		return ViewDoctorDashboard
	}
	return ViewPatientDashboard
}

// Resolve is the whole routing policy: a pure function of auth state, role
// and the requested view. Unauthenticated users only ever reach login or
// register. An authenticated user asking for a view gated to the other role
// lands on their own dashboard instead of an error.
func Resolve(authenticated bool, role models.Role, requested View) View {
	if !authenticated {
		if requested == ViewRegister {
			return ViewRegister
		}
		return ViewLogin
	}

	switch requested {
	case ViewLogin, ViewRegister:
		return DashboardFor(role)
	case ViewDoctorDashboard, ViewRequests:
		if role != models.RoleDoctor {
			return DashboardFor(role)
		}
	case ViewPatientDashboard, ViewUpload:
		if role != models.RolePatient {
			return DashboardFor(role)
		}
	}
	return requested
}
