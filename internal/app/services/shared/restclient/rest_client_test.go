package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"docnet-client/internal/app/models"
	"docnet-client/internal/app/services/shared/tokenstore"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string) (RestClient, tokenstore.TokenStore) {
	t.Helper()
	tokens := tokenstore.NewFileTokenStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
	client := NewRestClient(baseURL, 5*time.Second, 100, tokens, zap.NewNop())
	return client, tokens
}

func TestRestClient_AttachesBearerToEveryRequest(t *testing.T) {
	var seenAuth []string

	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = append(seenAuth, r.Header.Get(constvars.HeaderAuthorization))
		w.Write([]byte(`{}`))
	})
	router.Post("/upload", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = append(seenAuth, r.Header.Get(constvars.HeaderAuthorization))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.Write([]byte(`{}`))
	})
	router.Get("/blob", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = append(seenAuth, r.Header.Get(constvars.HeaderAuthorization))
		w.Write([]byte("binary"))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client, tokens := newTestClient(t, server.URL)
	tokens.Save("abc", &models.User{ID: "1"})

	require.NoError(t, client.DoJSON(context.Background(), constvars.MethodGet, "/ping", nil, nil, nil))

	form := &MultipartForm{
		Fields: map[string]string{"message": "hello"},
		File:   &FilePart{FieldName: "file", FileName: "scan.pdf", Content: []byte("pdf")},
	}
	require.NoError(t, client.DoMultipart(context.Background(), "/upload", form, nil))

	data, err := client.Download(context.Background(), "/blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("binary"), data)

	require.Len(t, seenAuth, 3)
	for _, auth := range seenAuth {
		assert.Equal(t, "Bearer abc", auth, "every request kind must carry the bearer token")
	}
}

func TestRestClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	require.NoError(t, client.DoJSON(context.Background(), constvars.MethodGet, "/ping", nil, nil, nil))
}

func TestRestClient_SurfacesStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("already exists"))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	err := client.DoJSON(context.Background(), constvars.MethodPost, "/donation", nil, map[string]string{"patientName": "X"}, nil)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusOf(err))
	assert.True(t, exceptions.IsConflict(err))
}

func TestRestClient_NetworkFailureHasStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := newTestClient(t, server.URL)
	err := client.DoJSON(context.Background(), constvars.MethodGet, "/ping", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, exceptions.IsNetworkFailure(err))
}

func TestRestClient_DecodesResponseAndQuery(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/case-posts/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("userId"))
		json.NewEncoder(w).Encode(map[string]interface{}{"id": chi.URLParam(r, "id"), "likes": 3})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	var out struct {
		ID    string `json:"id"`
		Likes int    `json:"likes"`
	}
	query := url.Values{"userId": []string{"7"}}
	require.NoError(t, client.DoJSON(context.Background(), constvars.MethodPost, "/case-posts/42/like", query, nil, &out))
	assert.Equal(t, "42", out.ID)
	assert.Equal(t, 3, out.Likes)
}

func TestRestClient_MultipartJSONPart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.JSONEq(t, `{"title":"Case"}`, r.FormValue("post"))
		w.Write([]byte(`{"id":"1","title":"Case"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	var out struct {
		ID string `json:"id"`
	}
	form := &MultipartForm{JSONParts: map[string][]byte{"post": []byte(`{"title":"Case"}`)}}
	require.NoError(t, client.DoMultipart(context.Background(), "/case-posts", form, &out))
	assert.Equal(t, "1", out.ID)
}
