package consultations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/app/services/shared/tokenstore"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) ConsultationClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := tokenstore.NewFileTokenStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
	rest := restclient.NewRestClient(server.URL, 5*time.Second, 100, tokens, zap.NewNop())
	return NewConsultationClient(rest, zap.NewNop())
}

func TestConsultationClient_RequestCarriesFileAndFields(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/consultations/request", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Please review my MRI", r.FormValue(constvars.MultipartPartMessage))
		assert.Equal(t, "9", r.FormValue(constvars.MultipartPartDoctorID))
		assert.Equal(t, "3", r.FormValue(constvars.MultipartPartPatientID))

		file, header, err := r.FormFile(constvars.MultipartPartFile)
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "mri.pdf", header.Filename)

		w.WriteHeader(http.StatusOK)
	})

	client := newTestClient(t, router)

	request := &requests.CreateConsultation{DoctorID: "9", PatientID: "3", Message: "Please review my MRI"}
	document := &restclient.FilePart{FieldName: constvars.MultipartPartFile, FileName: "mri.pdf", Content: []byte("mri")}
	require.NoError(t, client.Request(context.Background(), request, document))
}

func TestConsultationClient_SecondRequestToSameDoctorIsRejected(t *testing.T) {
	pending := map[string]bool{}

	router := chi.NewRouter()
	router.Post("/consultations/request", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		key := r.FormValue(constvars.MultipartPartPatientID) + ":" + r.FormValue(constvars.MultipartPartDoctorID)
		if pending[key] {
			w.WriteHeader(http.StatusConflict)
			return
		}
		pending[key] = true
	})

	client := newTestClient(t, router)

	request := &requests.CreateConsultation{DoctorID: "9", PatientID: "3", Message: "First request"}
	document := &restclient.FilePart{FieldName: constvars.MultipartPartFile, FileName: "report.pdf", Content: []byte("x")}
	require.NoError(t, client.Request(context.Background(), request, document))

	err := client.Request(context.Background(), request, document)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, exceptions.StatusOf(err))
	assert.Equal(t, constvars.ErrClientConsultAlreadyPending, exceptions.ClientMessageOf(err))
}

func TestConsultationClient_StatusByPatient(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/consultations/status/{patientId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", chi.URLParam(r, "patientId"))
		json.NewEncoder(w).Encode([]map[string]string{
			{"doctorId": "9", "status": "approved", "doctorMessage": "Looks fine, follow up in 6 months."},
			{"doctorId": "11", "status": "pending"},
		})
	})

	client := newTestClient(t, router)

	statuses, err := client.StatusByPatient(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, constvars.ConsultationStatusApproved, statuses[0].Status)
	assert.Equal(t, "Looks fine, follow up in 6 months.", statuses[0].DoctorMessage)
	assert.Equal(t, constvars.ConsultationStatusPending, statuses[1].Status)
}

func TestConsultationClient_RequestsForDoctor(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/consultations/doctor/{doctorId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", chi.URLParam(r, "doctorId"))
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":       "5",
				"patient":  map[string]string{"id": "3", "name": "Jane Roe", "email": "jane@example.com"},
				"message":  "Please review my MRI",
				"fileName": "mri.pdf",
				"status":   "pending",
			},
		})
	})

	client := newTestClient(t, router)

	inbox, err := client.RequestsForDoctor(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Jane Roe", inbox[0].Patient.Name)
	assert.Equal(t, "mri.pdf", inbox[0].FileName)
	assert.Equal(t, constvars.ConsultationStatusPending, inbox[0].Status)
}

func TestConsultationClient_ApproveAndRejectPaths(t *testing.T) {
	var approved, rejected []string

	router := chi.NewRouter()
	router.Post("/consultations/approve", func(w http.ResponseWriter, r *http.Request) {
		approved = append(approved, r.URL.Query().Get(constvars.QueryParamRequestID))
		assert.Equal(t, "See my notes", r.URL.Query().Get(constvars.QueryParamDoctorMessage))
	})
	router.Post("/reject", func(w http.ResponseWriter, r *http.Request) {
		rejected = append(rejected, r.URL.Query().Get(constvars.QueryParamRequestID))
	})

	client := newTestClient(t, router)

	require.NoError(t, client.Approve(context.Background(), &requests.ResolveConsultation{RequestID: "5", DoctorMessage: "See my notes"}))
	require.NoError(t, client.Reject(context.Background(), &requests.ResolveConsultation{RequestID: "6"}))

	assert.Equal(t, []string{"5"}, approved)
	assert.Equal(t, []string{"6"}, rejected)
}

func TestConsultationClient_Download(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/consultations/download/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", chi.URLParam(r, "id"))
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEOctetStream)
		w.Write([]byte("document-bytes"))
	})

	client := newTestClient(t, router)

	data, err := client.Download(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, []byte("document-bytes"), data)
}
