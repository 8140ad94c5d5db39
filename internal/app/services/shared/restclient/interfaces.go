package restclient

import (
	"context"
	"net/url"
)

// FilePart is a file riding along in a multipart upload.
type FilePart struct {
	FieldName string
	FileName  string
	Content   []byte
}

// MultipartForm describes one multipart request body: plain fields, parts
// carrying JSON payloads, and at most one file.
type MultipartForm struct {
	Fields    map[string]string
	JSONParts map[string][]byte
	File      *FilePart
}

// RestClient issues every request this client sends. The base URL is fixed at
// construction; when the token store holds a token it is attached as
// "Authorization: Bearer <token>" to every outgoing request without
// exception, multipart uploads and file downloads included. Network failures
// and non-2xx statuses both come back as *exceptions.CustomError carrying the
// status, so callers can tell a 409 apart from everything else.
type RestClient interface {
	DoJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
	DoMultipart(ctx context.Context, path string, form *MultipartForm, out interface{}) error
	Download(ctx context.Context, path string) ([]byte, error)
}
