package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"docnet-client/internal/app/models"
	"docnet-client/internal/app/services/aidiag"
	"docnet-client/internal/app/services/caseposts"
	"docnet-client/internal/app/services/consultations"
	"docnet-client/internal/app/services/donations"
	"docnet-client/internal/app/services/facts"
	"docnet-client/internal/app/services/session"
	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// App is the interactive terminal front-end. All contract-bearing logic lives
// in the services underneath; this layer only collects input, routes views
// and prints results.
type App struct {
	Session       session.SessionUsecase
	CasePosts     caseposts.CasePostClient
	Donations     donations.DonationClient
	Consultations consultations.ConsultationClient
	Diagnosis     aidiag.DiagnosisClient
	Facts         facts.FactClient
	Log           *zap.Logger

	in   *bufio.Scanner
	out  io.Writer
	view View
}

type Clients struct {
	Session       session.SessionUsecase
	CasePosts     caseposts.CasePostClient
	Donations     donations.DonationClient
	Consultations consultations.ConsultationClient
	Diagnosis     aidiag.DiagnosisClient
	Facts         facts.FactClient
}

func NewApp(clients Clients, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	return &App{
		Session:       clients.Session,
		CasePosts:     clients.CasePosts,
		Donations:     clients.Donations,
		Consultations: clients.Consultations,
		Diagnosis:     clients.Diagnosis,
		Facts:         clients.Facts,
		Log:           logger,
		in:            bufio.NewScanner(in),
		out:           out,
		view:          ViewLogin,
	}
}

// Run blocks until the input stream ends or the user quits. Nothing renders
// until the persisted session is resolved one way or the other.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, constvars.MsgValidatingSession)
	a.Session.Restore(ctx)

	if user := a.Session.CurrentUser(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s.\n", user.Name)
		a.view = DashboardFor(user.Role)
	} else {
		a.view = ViewLogin
	}

	for {
		if !a.renderAndDispatch(ctx) {
			return
		}
	}
}

func (a *App) renderAndDispatch(ctx context.Context) bool {
	switch a.view {
	case ViewLogin:
		return a.loginView(ctx)
	case ViewRegister:
		return a.registerView(ctx)
	case ViewDoctorDashboard, ViewPatientDashboard:
		return a.dashboardView(ctx)
	case ViewCases:
		return a.casesView(ctx)
	case ViewUpload:
		return a.uploadView(ctx)
	case ViewDonations:
		return a.donationsView(ctx)
	case ViewRequests:
		return a.requestsView(ctx)
	case ViewAIDiagnosis:
		return a.diagnosisView(ctx)
	default:
		a.view = ViewLogin
		return true
	}
}

// navigate routes a requested view through the gating rules before making it
// active.
func (a *App) navigate(requested View) {
	user := a.Session.CurrentUser()
	authenticated := a.Session.State() == models.SessionAuthenticated
	role := models.RolePatient
	if user != nil {
		role = user.Role
	}

	resolved := Resolve(authenticated, role, requested)
	if resolved != requested {
		a.Log.Debug("navigation redirected",
			zap.String(constvars.LoggingViewKey, requested.String()),
			zap.String(constvars.LoggingRoleKey, string(role)),
		)
	}
	a.view = resolved
}

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) promptInt(label string) (int, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.out, constvars.ErrClientCannotProcessRequest)
		return 0, false
	}
	return n, true
}

func (a *App) printError(err error) {
	fmt.Fprintln(a.out, exceptions.ClientMessageOf(err))
}

func (a *App) loginView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n[login] commands: login, register, quit")
	command, ok := a.prompt(">")
	if !ok {
		return false
	}

	switch command {
	case "register":
		a.navigate(ViewRegister)
	case "quit":
		return false
	case "login":
		email, ok := a.prompt("Email")
		if !ok {
			return false
		}
		password, ok := a.prompt("Password")
		if !ok {
			return false
		}
		role, ok := a.prompt("Role (doctor/patient)")
		if !ok {
			return false
		}

		form := &requests.Login{Email: email, Password: password, Role: role}
		if err := ValidateLoginForm(form); err != nil {
			a.printError(err)
			return true
		}
		if err := a.Session.Login(ctx, form); err != nil {
			a.printError(err)
			return true
		}
		fmt.Fprintln(a.out, constvars.MsgLoginSuccess)
		a.view = DashboardFor(a.Session.CurrentUser().Role)
	}
	return true
}

func (a *App) registerView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n[register] enter your details (or 'back')")
	name, ok := a.prompt("Name")
	if !ok {
		return false
	}
	if name == "back" {
		a.navigate(ViewLogin)
		return true
	}

	form := &requests.Register{Name: name}
	if form.Email, ok = a.prompt("Email"); !ok {
		return false
	}
	if form.Password, ok = a.prompt("Password"); !ok {
		return false
	}
	if form.ConfirmPassword, ok = a.prompt("Confirm password"); !ok {
		return false
	}
	if form.Role, ok = a.prompt("Role (doctor/patient)"); !ok {
		return false
	}

	registeringDoctor := strings.EqualFold(form.Role, constvars.LoginRoleDoctor)
	if registeringDoctor {
		if form.NMCNumber, ok = a.prompt("NMC registration number"); !ok {
			return false
		}
		if form.Specialization, ok = a.prompt("Specialization"); !ok {
			return false
		}
		if form.Location, ok = a.prompt("Location"); !ok {
			return false
		}
	}

	// Local checks come first so a bad form never spends the verify call.
	if err := ValidateRegisterFields(form); err != nil {
		a.printError(err)
		return true
	}

	if registeringDoctor {
		valid, err := a.Session.VerifyDoctor(ctx, form.NMCNumber)
		if err != nil {
			a.printError(err)
			return true
		}
		if !valid {
			fmt.Fprintln(a.out, constvars.ErrClientInvalidNMCNumber)
			return true
		}
		fmt.Fprintln(a.out, constvars.MsgNMCVerified)
		form.NMCVerified = true
		form.IsVerified = true
	}

	if err := ValidateRegisterForm(form); err != nil {
		a.printError(err)
		return true
	}
	if err := a.Session.Register(ctx, form); err != nil {
		a.printError(err)
		return true
	}

	fmt.Fprintln(a.out, constvars.MsgRegisterSuccess)
	a.view = DashboardFor(a.Session.CurrentUser().Role)
	return true
}

func (a *App) dashboardView(ctx context.Context) bool {
	user := a.Session.CurrentUser()
	fmt.Fprintf(a.out, "\n[%s] %s (%s)\n", a.view, user.Name, user.Role)

	if user.IsDoctor() {
		fmt.Fprintln(a.out, "commands: cases, donations, requests, diagnosis, logout, quit")
	} else {
		if list, err := a.Facts.List(ctx); err != nil {
			fmt.Fprintln(a.out, constvars.ErrClientFactsUnavailable)
		} else if len(list) > 0 {
			fmt.Fprintln(a.out, "Health facts:")
			renderHealthFacts(a.out, list)
		}
		fmt.Fprintln(a.out, "commands: cases, donations, upload, diagnosis, logout, quit")
	}

	command, ok := a.prompt(">")
	if !ok {
		return false
	}
	switch command {
	case "cases":
		a.navigate(ViewCases)
	case "donations":
		a.navigate(ViewDonations)
	case "upload":
		a.navigate(ViewUpload)
	case "requests":
		a.navigate(ViewRequests)
	case "diagnosis":
		a.navigate(ViewAIDiagnosis)
	case "logout":
		a.Session.Logout(ctx)
		fmt.Fprintln(a.out, constvars.MsgLogoutSuccess)
		a.view = ViewLogin
	case "quit":
		return false
	}
	return true
}

func (a *App) casesView(ctx context.Context) bool {
	posts, err := a.CasePosts.List(ctx)
	if err != nil {
		a.printError(err)
		a.navigate(DashboardFor(a.Session.CurrentUser().Role))
		return true
	}
	renderCasePosts(a.out, posts)

	user := a.Session.CurrentUser()
	if user.IsDoctor() {
		fmt.Fprintln(a.out, "commands: view <id>, like <id>, comment <id>, post, download <file>, back, quit")
	} else {
		fmt.Fprintln(a.out, "commands: view <id>, like <id>, download <file>, back, quit")
	}

	line, ok := a.prompt(">")
	if !ok {
		return false
	}
	command, argument := splitCommand(line)

	switch command {
	case "back":
		a.navigate(DashboardFor(user.Role))
	case "quit":
		return false
	case "view":
		for i := range posts {
			if posts[i].ID == argument {
				renderCasePostDetail(a.out, &posts[i])
			}
		}
	case "like":
		updated, err := a.CasePosts.Like(ctx, argument, user.ID)
		if err != nil {
			a.printError(err)
			return true
		}
		fmt.Fprintf(a.out, "%d likes\n", updated.Likes)
	case "comment":
		if !user.IsDoctor() {
			a.navigate(DashboardFor(user.Role))
			return true
		}
		content, ok := a.prompt("Comment")
		if !ok {
			return false
		}
		updated, err := a.CasePosts.AddComment(ctx, argument, &requests.CreateComment{
			DoctorID:   user.ID,
			DoctorName: user.Name,
			Content:    content,
		})
		if err != nil {
			a.printError(err)
			return true
		}
		fmt.Fprintln(a.out, constvars.MsgCommentAdded)
		renderCasePostDetail(a.out, updated)
	case "post":
		if !user.IsDoctor() {
			a.navigate(DashboardFor(user.Role))
			return true
		}
		return a.createCasePost(ctx, user)
	case "download":
		data, err := a.CasePosts.DownloadAttachment(ctx, argument)
		if err != nil {
			a.printError(err)
			return true
		}
		a.saveDownload(argument, data)
	}
	return true
}

func (a *App) createCasePost(ctx context.Context, user *models.User) bool {
	form := &requests.CreateCasePost{
		DoctorID:       user.ID,
		DoctorName:     user.Name,
		Specialization: user.Specialization,
		Comments:       []any{},
	}

	var ok bool
	if form.Title, ok = a.prompt("Title"); !ok {
		return false
	}
	if form.Description, ok = a.prompt("Description"); !ok {
		return false
	}
	if form.PatientAge, ok = a.promptInt("Patient age"); !ok {
		return true
	}
	if form.PatientGender, ok = a.prompt("Patient gender (male/female/other)"); !ok {
		return false
	}
	if form.Symptoms, ok = a.prompt("Symptoms"); !ok {
		return false
	}

	attachment, ok := a.promptAttachment(constvars.MultipartPartFile)
	if !ok {
		return false
	}

	created, err := a.CasePosts.Create(ctx, form, attachment)
	if err != nil {
		a.printError(err)
		return true
	}
	fmt.Fprintln(a.out, constvars.MsgCasePostCreated)
	renderCasePostDetail(a.out, created)
	return true
}

func (a *App) uploadView(ctx context.Context) bool {
	doctors, err := a.Consultations.Doctors(ctx)
	if err != nil {
		a.printError(err)
		a.navigate(ViewPatientDashboard)
		return true
	}
	renderDoctors(a.out, doctors)

	statuses, err := a.Consultations.StatusByPatient(ctx, a.Session.CurrentUser().ID)
	if err == nil {
		renderConsultationStatuses(a.out, statuses)
	}

	fmt.Fprintln(a.out, "commands: request <doctorId>, download <requestId>, back, quit")
	line, ok := a.prompt(">")
	if !ok {
		return false
	}
	command, argument := splitCommand(line)

	switch command {
	case "back":
		a.navigate(ViewPatientDashboard)
	case "quit":
		return false
	case "download":
		data, err := a.Consultations.Download(ctx, argument)
		if err != nil {
			a.printError(err)
			return true
		}
		a.saveDownload(argument, data)
	case "request":
		message, ok := a.prompt("Message for the doctor")
		if !ok {
			return false
		}
		document, ok := a.promptAttachment(constvars.MultipartPartFile)
		if !ok {
			return false
		}
		if document == nil || message == "" {
			fmt.Fprintln(a.out, constvars.ErrClientFileAndMessageNeeded)
			return true
		}

		err := a.Consultations.Request(ctx, &requests.CreateConsultation{
			DoctorID:  argument,
			PatientID: a.Session.CurrentUser().ID,
			Message:   message,
		}, document)
		if err != nil {
			a.printError(err)
			return true
		}
		fmt.Fprintln(a.out, constvars.MsgConsultationSent)
	}
	return true
}

func (a *App) donationsView(ctx context.Context) bool {
	user := a.Session.CurrentUser()
	board, err := a.Donations.List(ctx)
	if err != nil {
		a.printError(err)
		a.navigate(DashboardFor(user.Role))
		return true
	}
	renderDonations(a.out, board)

	fmt.Fprintln(a.out, "commands: mine, blood, organ, post, edit <id>, delete <id>, back, quit")
	line, ok := a.prompt(">")
	if !ok {
		return false
	}
	command, argument := splitCommand(line)

	switch command {
	case "back":
		a.navigate(DashboardFor(user.Role))
	case "quit":
		return false
	case "mine":
		mine, err := a.Donations.ListByUser(ctx, user.Email)
		if err != nil {
			a.printError(err)
			return true
		}
		renderDonations(a.out, mine)
	case "blood", "organ":
		renderDonations(a.out, filterDonationsByType(board, command))
	case "delete":
		if err := a.Donations.Delete(ctx, argument); err != nil {
			a.printError(err)
			return true
		}
		fmt.Fprintln(a.out, constvars.MsgDonationDeleted)
	case "post":
		return a.createDonation(ctx, user)
	case "edit":
		for i := range board {
			if board[i].ID == argument {
				return a.editDonation(ctx, &board[i])
			}
		}
		fmt.Fprintln(a.out, constvars.ErrClientCannotProcessRequest)
	}
	return true
}

// filterDonationsByType narrows the fetched board to one donation type; the
// board itself is never re-fetched for a filter change.
func filterDonationsByType(board []responses.Donation, donationType string) []responses.Donation {
	var filtered []responses.Donation
	for _, donation := range board {
		if donation.Type == donationType {
			filtered = append(filtered, donation)
		}
	}
	return filtered
}

// editDonation round-trips the server's representation with the edited
// fields; blank input keeps the current value.
func (a *App) editDonation(ctx context.Context, current *responses.Donation) bool {
	form := &requests.UpdateDonation{
		ID:           current.ID,
		Type:         current.Type,
		BloodType:    current.BloodType,
		OrganType:    current.OrganType,
		Urgency:      current.Urgency,
		PatientName:  current.PatientName,
		HospitalName: current.HospitalName,
		Location:     current.Location,
		ContactPhone: current.ContactPhone,
		Description:  current.Description,
		RequiredBy:   current.RequiredBy,
		CreatedAt:    current.CreatedAt,
		CreatedBy:    current.CreatedBy,
	}

	urgency, ok := a.prompt(fmt.Sprintf("Urgency [%s]", form.Urgency))
	if !ok {
		return false
	}
	if urgency != "" {
		form.Urgency = urgency
	}
	requiredBy, ok := a.prompt(fmt.Sprintf("Required by [%s]", form.RequiredBy))
	if !ok {
		return false
	}
	if requiredBy != "" {
		form.RequiredBy = requiredBy
	}
	notes, ok := a.prompt("Notes (empty keeps current)")
	if !ok {
		return false
	}
	if notes != "" {
		form.Description = notes
	}

	if _, err := a.Donations.Update(ctx, form); err != nil {
		a.printError(err)
		return true
	}
	fmt.Fprintln(a.out, constvars.MsgDonationUpdated)
	return true
}

func (a *App) createDonation(ctx context.Context, user *models.User) bool {
	form := &requests.CreateDonation{CreatedBy: user.Email}

	var ok bool
	if form.Type, ok = a.prompt("Type (blood/organ)"); !ok {
		return false
	}
	if strings.EqualFold(form.Type, constvars.DonationTypeBlood) {
		if form.BloodType, ok = a.prompt("Blood type"); !ok {
			return false
		}
	} else {
		if form.OrganType, ok = a.prompt("Organ"); !ok {
			return false
		}
	}
	if form.Urgency, ok = a.prompt("Urgency (low/medium/high)"); !ok {
		return false
	}
	if form.PatientName, ok = a.prompt("Patient name"); !ok {
		return false
	}
	if form.HospitalName, ok = a.prompt("Hospital"); !ok {
		return false
	}
	if form.Location, ok = a.prompt("Location"); !ok {
		return false
	}
	if form.ContactPhone, ok = a.prompt("Contact phone"); !ok {
		return false
	}
	if form.RequiredBy, ok = a.prompt("Required by (YYYY-MM-DD)"); !ok {
		return false
	}
	if form.Description, ok = a.prompt("Notes"); !ok {
		return false
	}

	created, err := a.Donations.Create(ctx, form)
	if err != nil {
		a.printError(err)
		return true
	}
	fmt.Fprintf(a.out, "%s (id %s)\n", constvars.MsgDonationCreated, created.ID)
	return true
}

func (a *App) requestsView(ctx context.Context) bool {
	user := a.Session.CurrentUser()
	inbox, err := a.Consultations.RequestsForDoctor(ctx, user.ID)
	if err != nil {
		a.printError(err)
		a.navigate(ViewDoctorDashboard)
		return true
	}
	renderConsultationInbox(a.out, inbox)

	fmt.Fprintln(a.out, "commands: approve <id>, reject <id>, download <id>, back, quit")
	line, ok := a.prompt(">")
	if !ok {
		return false
	}
	command, argument := splitCommand(line)

	switch command {
	case "back":
		a.navigate(ViewDoctorDashboard)
	case "quit":
		return false
	case "download":
		data, err := a.Consultations.Download(ctx, argument)
		if err != nil {
			a.printError(err)
			return true
		}
		a.saveDownload(argument, data)
	case "approve", "reject":
		message, ok := a.prompt("Message for the patient")
		if !ok {
			return false
		}
		resolution := &requests.ResolveConsultation{RequestID: argument, DoctorMessage: message}

		var err error
		if command == "approve" {
			err = a.Consultations.Approve(ctx, resolution)
		} else {
			err = a.Consultations.Reject(ctx, resolution)
		}
		if err != nil {
			a.printError(err)
			return true
		}
		if command == "approve" {
			fmt.Fprintln(a.out, constvars.MsgConsultationApproved)
		} else {
			fmt.Fprintln(a.out, constvars.MsgConsultationRejected)
		}
	}
	return true
}

func (a *App) diagnosisView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n[ai-diagnosis] describe your symptoms (or 'back')")
	symptoms, ok := a.prompt("Symptoms")
	if !ok {
		return false
	}
	if symptoms == "back" {
		a.navigate(DashboardFor(a.Session.CurrentUser().Role))
		return true
	}

	diagnosis, err := a.Diagnosis.Diagnose(ctx, &requests.Diagnose{Symptoms: symptoms})
	if err != nil {
		a.printError(err)
		return true
	}
	renderDiagnosis(a.out, diagnosis)
	return true
}

// promptAttachment reads a local path and loads it into a multipart file
// part; an empty path means no attachment.
func (a *App) promptAttachment(fieldName string) (*restclient.FilePart, bool) {
	path, ok := a.prompt("Attachment path (empty for none)")
	if !ok {
		return nil, false
	}
	if path == "" {
		return nil, true
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s\n", path)
		return nil, true
	}
	return &restclient.FilePart{
		FieldName: fieldName,
		FileName:  filepath.Base(path),
		Content:   content,
	}, true
}

func (a *App) saveDownload(name string, data []byte) {
	target := filepath.Base(name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		fmt.Fprintf(a.out, "Cannot save %s\n", target)
		return
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", target, len(data))
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
