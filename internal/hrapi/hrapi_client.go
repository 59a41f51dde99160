// Package hrapi is the REST gateway to the HR store.
package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hris-console/internal/leave"
	"hris-console/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

var resources = map[leave.LeaveType]string{
	leave.TypeAnnual:  "/annual-leave",
	leave.TypeAbsence: "/absence-leave",
	leave.TypeSick:    "/sick-leave",
}

// StatusError is a non-2xx answer from the HR API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hrapi: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("hrapi: unexpected status %d: %s", e.StatusCode, e.Message)
}

// Client implements leave.Gateway over HTTP. Calls are never retried.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

var _ leave.Gateway = (*Client)(nil)

// NewClient builds a client for baseURL. token is used when the request
// context carries no caller token.
func NewClient(baseURL, token string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("hrapi.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrapi.client")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

func resourceOf(leaveType leave.LeaveType) (string, error) {
	path, ok := resources[leaveType]
	if !ok {
		return "", fmt.Errorf("hrapi: unknown leave type %q", leaveType)
	}
	return path, nil
}

func (c *Client) FetchLeaves(ctx context.Context, leaveType leave.LeaveType) ([]leave.LeaveRequest, error) {
	path, err := resourceOf(leaveType)
	if err != nil {
		return nil, err
	}

	var dtos []leaveDTO
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]leave.LeaveRequest, len(dtos))
	for i, d := range dtos {
		out[i] = d.toRecord(leaveType)
	}
	return out, nil
}

func (c *Client) CreateLeave(ctx context.Context, leaveType leave.LeaveType, payload leave.CreatePayload) (leave.LeaveRequest, error) {
	path, err := resourceOf(leaveType)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	var dto leaveDTO
	if err := c.doJSON(ctx, http.MethodPost, path, createBody(leaveType, payload), &dto); err != nil {
		return leave.LeaveRequest{}, err
	}
	return dto.toRecord(leaveType), nil
}

func (c *Client) ApproveLeave(ctx context.Context, leaveType leave.LeaveType, id string, substitute *leave.Substitute) (leave.LeaveRequest, error) {
	body := approveBody{}
	if substitute != nil {
		body.SubstituteID = substitute.EmployeeID
	}
	return c.decide(ctx, leaveType, id, "approve", body)
}

func (c *Client) RejectLeave(ctx context.Context, leaveType leave.LeaveType, id string) (leave.LeaveRequest, error) {
	return c.decide(ctx, leaveType, id, "reject", struct{}{})
}

func (c *Client) decide(ctx context.Context, leaveType leave.LeaveType, id, verb string, body any) (leave.LeaveRequest, error) {
	path, err := resourceOf(leaveType)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	var dto leaveDTO
	target := fmt.Sprintf("%s/%s/%s", path, url.PathEscape(id), verb)
	if err := c.doJSON(ctx, http.MethodPatch, target, body, &dto); err != nil {
		return leave.LeaveRequest{}, err
	}
	return dto.toRecord(leaveType), nil
}

func (c *Client) SearchEmployeesByName(ctx context.Context, term string) ([]leave.Employee, error) {
	var dtos []employeeDTO
	if err := c.doJSON(ctx, http.MethodGet, "/employees/search?name="+url.QueryEscape(term), nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]leave.Employee, len(dtos))
	for i, d := range dtos {
		out[i] = d.toEmployee()
	}
	return out, nil
}

func (c *Client) UploadAttachment(ctx context.Context, filename string, content io.Reader) (leave.Attachment, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return leave.Attachment{}, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return leave.Attachment{}, err
	}
	if err := mw.Close(); err != nil {
		return leave.Attachment{}, err
	}

	var dto uploadDTO
	if err := c.do(ctx, http.MethodPost, "/uploads", &buf, mw.FormDataContentType(), &dto); err != nil {
		return leave.Attachment{}, err
	}
	return leave.Attachment{URL: dto.URL}, nil
}

func (c *Client) DeleteAttachment(ctx context.Context, fileURL string) error {
	return c.do(ctx, http.MethodDelete, "/uploads?url="+url.QueryEscape(fileURL), nil, "", nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	if body == nil {
		return c.do(ctx, method, path, nil, "", out)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, bytes.NewReader(b), "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.bearer(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("hrapi request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("hrapi request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) bearer(ctx context.Context) string {
	if tok := contextutil.GetAccessToken(ctx); tok != "" {
		return tok
	}
	return c.token
}

// decode accepts a bare payload or one wrapped as {"data": ...}.
func decode(raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			raw = env.Data
		}
	}
	return json.Unmarshal(raw, out)
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		switch v := body.Error.(type) {
		case string:
			return v
		case map[string]any:
			if m, ok := v["message"].(string); ok {
				return m
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
