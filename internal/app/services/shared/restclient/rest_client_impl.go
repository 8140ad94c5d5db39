package restclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"docnet-client/internal/app/services/shared/tokenstore"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/exceptions"
	"docnet-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 2048

type restClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     tokenstore.TokenStore
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewRestClient(baseURL string, timeout time.Duration, requestsPerSecond int, tokens tokenstore.TokenStore, logger *zap.Logger) RestClient {
	return &restClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		Limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		Log:        logger,
	}
}

func (c *restClient) DoJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient.DoJSON error marshaling body",
				zap.String(constvars.LoggingPathKey, path),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return exceptions.ErrBuildRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	respBody, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}

func (c *restClient) DoMultipart(ctx context.Context, path string, form *MultipartForm, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return exceptions.ErrBuildMultipartForm(err)
		}
	}
	for name, payload := range form.JSONParts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, name))
		header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		part, err := writer.CreatePart(header)
		if err != nil {
			return exceptions.ErrBuildMultipartForm(err)
		}
		if _, err := part.Write(payload); err != nil {
			return exceptions.ErrBuildMultipartForm(err)
		}
	}
	if form.File != nil {
		part, err := writer.CreateFormFile(form.File.FieldName, form.File.FileName)
		if err != nil {
			return exceptions.ErrBuildMultipartForm(err)
		}
		if _, err := part.Write(form.File.Content); err != nil {
			return exceptions.ErrBuildMultipartForm(err)
		}
	}
	if err := writer.Close(); err != nil {
		return exceptions.ErrBuildMultipartForm(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.buildURL(path, nil), &buf)
	if err != nil {
		return exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	respBody, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}

func (c *restClient) Download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.buildURL(path, nil), nil)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	return c.send(req)
}

// send applies the rate limiter, attaches the bearer token and correlation
// id, dispatches the request and maps the outcome into the error taxonomy.
func (c *restClient) send(req *http.Request) ([]byte, error) {
	if err := c.Limiter.Wait(req.Context()); err != nil {
		return nil, exceptions.ErrRateLimiterWait(err)
	}

	requestID := utils.NewRequestID()
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if token, _ := c.Tokens.Load(); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthBearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("restClient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, req.Method),
			zap.String(constvars.LoggingPathKey, req.URL.Path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrNetworkFailure(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrNetworkFailure(err)
	}

	c.Log.Debug("restClient request finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingPathKey, req.URL.Path),
		zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		snippet := respBody
		if len(snippet) > maxErrorBodyBytes {
			snippet = snippet[:maxErrorBodyBytes]
		}
		return nil, exceptions.ErrUnexpectedStatus(resp.StatusCode, string(snippet))
	}
	return respBody, nil
}

func (c *restClient) buildURL(path string, query url.Values) string {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}
