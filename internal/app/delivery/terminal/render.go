package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/utils"

	"github.com/olekukonko/tablewriter"
)

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)
	return table
}

// truncate shortens on rune boundaries so multi-byte text never splits
// mid-character.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func renderCasePosts(out io.Writer, posts []responses.CasePost) {
	if len(posts) == 0 {
		fmt.Fprintln(out, "No case posts yet.")
		return
	}
	table := newTable(out, []string{"ID", "Title", "Doctor", "Likes", "Comments", "Posted"})
	for _, post := range posts {
		table.Append([]string{
			post.ID,
			truncate(post.Title, 40),
			post.DoctorName,
			strconv.Itoa(post.Likes),
			strconv.Itoa(len(post.Comments)),
			utils.FormatTimeAgo(post.CreatedAt),
		})
	}
	table.Render()
}

func renderCasePostDetail(out io.Writer, post *responses.CasePost) {
	fmt.Fprintf(out, "\n%s (by %s, %s)\n", post.Title, post.DoctorName, post.Specialization)
	fmt.Fprintf(out, "Patient: %d, %s | Symptoms: %s\n", post.PatientAge, post.PatientGender, post.Symptoms)
	fmt.Fprintln(out, post.Description)
	if post.FileName != "" {
		fmt.Fprintf(out, "Attachment: %s\n", post.FileName)
	}
	fmt.Fprintf(out, "%d likes, %d comments\n", post.Likes, len(post.Comments))
	for _, comment := range post.Comments {
		fmt.Fprintf(out, "  [%s] %s: %s\n", utils.FormatTimeAgo(comment.CreatedAt), comment.DoctorName, comment.Content)
	}
}

func renderDonations(out io.Writer, donations []responses.Donation) {
	if len(donations) == 0 {
		fmt.Fprintln(out, "No donation requests.")
		return
	}
	table := newTable(out, []string{"ID", "Type", "Patient", "Hospital", "Urgency", "Needed"})
	for _, donation := range donations {
		kind := donation.Type
		if donation.BloodType != "" {
			kind = fmt.Sprintf("%s (%s)", donation.Type, donation.BloodType)
		} else if donation.OrganType != "" {
			kind = fmt.Sprintf("%s (%s)", donation.Type, donation.OrganType)
		}
		table.Append([]string{
			donation.ID,
			kind,
			donation.PatientName,
			donation.HospitalName,
			donation.Urgency,
			utils.FormatTimeLeft(donation.RequiredBy),
		})
	}
	table.Render()
}

func renderDoctors(out io.Writer, doctors []responses.Doctor) {
	if len(doctors) == 0 {
		fmt.Fprintln(out, "No doctors available.")
		return
	}
	table := newTable(out, []string{"ID", "Name", "Specialization"})
	for _, doctor := range doctors {
		table.Append([]string{doctor.ID, doctor.Name, doctor.Specialization})
	}
	table.Render()
}

func renderConsultationStatuses(out io.Writer, statuses []responses.ConsultationStatus) {
	if len(statuses) == 0 {
		fmt.Fprintln(out, "No consultation requests yet.")
		return
	}
	table := newTable(out, []string{"Doctor", "Status", "Reply"})
	for _, status := range statuses {
		table.Append([]string{status.DoctorID, status.Status, truncate(status.DoctorMessage, 50)})
	}
	table.Render()
}

func renderConsultationInbox(out io.Writer, inbox []responses.ConsultationRequest) {
	if len(inbox) == 0 {
		fmt.Fprintln(out, "No pending requests.")
		return
	}
	table := newTable(out, []string{"ID", "Patient", "Message", "File", "Status"})
	for _, request := range inbox {
		table.Append([]string{
			request.ID,
			request.Patient.Name,
			truncate(request.Message, 40),
			request.FileName,
			request.Status,
		})
	}
	table.Render()
}

func renderDiagnosis(out io.Writer, diagnosis *responses.AIDiagnosis) {
	fmt.Fprintln(out, "\nPossible conditions (informational only, not medical advice):")
	for _, condition := range diagnosis.PossibleConditions {
		fmt.Fprintf(out, "  - %s: %s\n", condition.Condition, condition.Description)
	}
	if len(diagnosis.RecommendedTests) > 0 {
		fmt.Fprintf(out, "Recommended tests: %s\n", strings.Join(diagnosis.RecommendedTests, ", "))
	}
}

func renderHealthFacts(out io.Writer, list []responses.HealthFact) {
	for _, fact := range list {
		fmt.Fprintf(out, "  [%s] %s: %s\n", fact.Category, fact.Title, fact.Description)
	}
}
