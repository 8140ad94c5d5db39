package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"docnet-client/internal/app/models"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSession struct {
	state          models.SessionState
	user           *models.User
	loginErr       error
	lastLogin      *requests.Login
	registerCalled bool
	verifyCalls    int
	logoutCalled   bool
}

func (s *stubSession) Restore(ctx context.Context) {}

func (s *stubSession) Login(ctx context.Context, request *requests.Login) error {
	s.lastLogin = request
	if s.loginErr != nil {
		return s.loginErr
	}
	s.state = models.SessionAuthenticated
	return nil
}

func (s *stubSession) Register(ctx context.Context, request *requests.Register) error {
	s.registerCalled = true
	s.state = models.SessionAuthenticated
	return nil
}

func (s *stubSession) VerifyDoctor(ctx context.Context, nmcNumber string) (bool, error) {
	s.verifyCalls++
	return true, nil
}

func (s *stubSession) Logout(ctx context.Context) {
	s.logoutCalled = true
	s.state = models.SessionAnonymous
	s.user = nil
}

func (s *stubSession) State() models.SessionState { return s.state }
func (s *stubSession) CurrentUser() *models.User  { return s.user }

type stubFacts struct {
	err error
}

func (s stubFacts) List(ctx context.Context) ([]responses.HealthFact, error) {
	return nil, s.err
}

type stubDonations struct {
	board []responses.Donation
}

func (s stubDonations) List(ctx context.Context) ([]responses.Donation, error) {
	return s.board, nil
}

func (s stubDonations) ListByUser(ctx context.Context, email string) ([]responses.Donation, error) {
	return nil, nil
}

func (s stubDonations) Create(ctx context.Context, request *requests.CreateDonation) (*responses.Donation, error) {
	return nil, nil
}

func (s stubDonations) Update(ctx context.Context, request *requests.UpdateDonation) (*responses.Donation, error) {
	return nil, nil
}

func (s stubDonations) Delete(ctx context.Context, id string) error { return nil }

func newAppWithInput(session *stubSession, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app := NewApp(Clients{Session: session, Facts: stubFacts{}}, strings.NewReader(input), out, zap.NewNop())
	return app, out
}

func TestApp_RegisterMismatchNeverReachesSession(t *testing.T) {
	session := &stubSession{state: models.SessionAnonymous}
	input := "Jane Roe\njane@example.com\nsecret1\ndifferent\npatient\n"
	app, out := newAppWithInput(session, input)
	app.view = ViewRegister

	require.True(t, app.registerView(context.Background()))
	assert.False(t, session.registerCalled)
	assert.Contains(t, out.String(), constvars.ErrClientPasswordsDoNotMatch)
}

func TestApp_LoginSuccessLandsOnRoleDashboard(t *testing.T) {
	session := &stubSession{state: models.SessionAnonymous}
	app, out := newAppWithInput(session, "login\ndrx@example.com\npw\ndoctor\n")
	app.view = ViewLogin

	session.user = &models.User{ID: "1", Name: "Dr. X", Role: models.RoleDoctor}
	require.True(t, app.loginView(context.Background()))

	assert.Equal(t, ViewDoctorDashboard, app.view)
	assert.Contains(t, out.String(), constvars.MsgLoginSuccess)
}

func TestApp_LoginFailureStaysOnLogin(t *testing.T) {
	session := &stubSession{
		state:    models.SessionAnonymous,
		loginErr: exceptions.ErrInvalidCredentials(assert.AnError),
	}
	app, out := newAppWithInput(session, "login\ndrx@example.com\nwrong\ndoctor\n")
	app.view = ViewLogin

	require.True(t, app.loginView(context.Background()))
	assert.Equal(t, ViewLogin, app.view)
	assert.Contains(t, out.String(), constvars.ErrClientInvalidCredentials)
}

func TestApp_LogoutResetsToLogin(t *testing.T) {
	session := &stubSession{
		state: models.SessionAuthenticated,
		user:  &models.User{ID: "1", Name: "Dr. X", Role: models.RoleDoctor},
	}
	app, out := newAppWithInput(session, "logout\n")
	app.view = ViewDoctorDashboard

	require.True(t, app.dashboardView(context.Background()))
	assert.True(t, session.logoutCalled)
	assert.Equal(t, ViewLogin, app.view)
	assert.Contains(t, out.String(), constvars.MsgLogoutSuccess)
}

func TestApp_LoginNormalizesFormBeforeDispatch(t *testing.T) {
	session := &stubSession{state: models.SessionAnonymous}
	app, _ := newAppWithInput(session, "login\n  drx@example.com \npw\nDoctor\n")
	app.view = ViewLogin

	session.user = &models.User{ID: "1", Name: "Dr. X", Role: models.RoleDoctor}
	require.True(t, app.loginView(context.Background()))

	require.NotNil(t, session.lastLogin)
	assert.Equal(t, "drx@example.com", session.lastLogin.Email)
	assert.Equal(t, "doctor", session.lastLogin.Role)
}

func TestApp_RegisterMismatchSkipsDoctorVerification(t *testing.T) {
	session := &stubSession{state: models.SessionAnonymous}
	input := "Dr. X\ndrx@example.com\nsecret1\ndifferent\ndoctor\nNMC-1234\nCardiology\nLondon\n"
	app, out := newAppWithInput(session, input)
	app.view = ViewRegister

	require.True(t, app.registerView(context.Background()))
	assert.Zero(t, session.verifyCalls)
	assert.False(t, session.registerCalled)
	assert.Contains(t, out.String(), constvars.ErrClientPasswordsDoNotMatch)
}

func TestApp_FactsFailureShowsRetryMessage(t *testing.T) {
	session := &stubSession{
		state: models.SessionAuthenticated,
		user:  &models.User{ID: "2", Name: "Jane Roe", Role: models.RolePatient},
	}
	out := &bytes.Buffer{}
	app := NewApp(Clients{Session: session, Facts: stubFacts{err: assert.AnError}}, strings.NewReader("quit\n"), out, zap.NewNop())
	app.view = ViewPatientDashboard

	require.False(t, app.dashboardView(context.Background()))
	assert.Contains(t, out.String(), constvars.ErrClientFactsUnavailable)
}

func TestApp_DonationBoardTypeFilters(t *testing.T) {
	board := []responses.Donation{
		{ID: "1", Type: constvars.DonationTypeBlood, BloodType: "O-", PatientName: "Alan Blood"},
		{ID: "2", Type: constvars.DonationTypeOrgan, OrganType: "kidney", PatientName: "Olive Organ"},
	}

	filtered := filterDonationsByType(board, constvars.DonationTypeBlood)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Alan Blood", filtered[0].PatientName)

	session := &stubSession{
		state: models.SessionAuthenticated,
		user:  &models.User{ID: "2", Name: "Jane Roe", Email: "jane@example.com", Role: models.RolePatient},
	}
	out := &bytes.Buffer{}
	app := NewApp(Clients{Session: session, Donations: stubDonations{board: board}}, strings.NewReader("organ\n"), out, zap.NewNop())
	app.view = ViewDonations

	require.True(t, app.donationsView(context.Background()))
	// Full board renders once, the filtered board once more.
	assert.Equal(t, 2, strings.Count(out.String(), "Olive Organ"))
	assert.Equal(t, 1, strings.Count(out.String(), "Alan Blood"))
}

func TestApp_NavigateGatesByRole(t *testing.T) {
	session := &stubSession{
		state: models.SessionAuthenticated,
		user:  &models.User{ID: "2", Name: "Jane Roe", Role: models.RolePatient},
	}
	app, _ := newAppWithInput(session, "")

	app.navigate(ViewRequests)
	assert.Equal(t, ViewPatientDashboard, app.view)

	app.navigate(ViewUpload)
	assert.Equal(t, ViewUpload, app.view)
}
