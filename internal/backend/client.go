package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"safelens/internal/domain"
)

// DefaultTimeout bounds every backend request when no client is supplied.
const DefaultTimeout = 15 * time.Second

// HTTP is the backend client. All requests are form-encoded POSTs or plain
// GETs with JSON responses.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the backend at base. A nil client gets a
// dedicated http.Client with DefaultTimeout.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

type analyzeResponse struct {
	Analysis domain.Analysis `json:"analysis"`
}

// AnalyzeText submits text to the remote classifier.
func (c *HTTP) AnalyzeText(ctx context.Context, text string) (domain.Analysis, error) {
	var out analyzeResponse
	form := url.Values{"text": {text}}
	if err := c.postForm(ctx, "analyze-text", "/analyze-text", form, &out); err != nil {
		return domain.Analysis{}, err
	}
	if out.Analysis.Keywords == nil {
		out.Analysis.Keywords = domain.Keywords{}
	}
	return out.Analysis, nil
}

// SendAlert asks the backend to deliver triggerMessage to contactPhone. Any
// non-2xx response is a delivery failure.
func (c *HTTP) SendAlert(ctx context.Context, contactPhone, triggerMessage string) (domain.AlertReceipt, error) {
	var out domain.AlertReceipt
	form := url.Values{
		"contact_phone":   {contactPhone},
		"trigger_message": {triggerMessage},
	}
	if err := c.postForm(ctx, "send-alert", "/send-alert", form, &out); err != nil {
		return domain.AlertReceipt{}, err
	}
	return out, nil
}

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Locate asks the backend for the device position.
func (c *HTTP) Locate(ctx context.Context) (float64, float64, error) {
	var out locationResponse
	if err := c.getJSON(ctx, "location", "/location", &out); err != nil {
		return 0, 0, err
	}
	return out.Lat, out.Lon, nil
}

func (c *HTTP) postForm(ctx context.Context, op, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return &domain.DeliveryError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(op, req, out)
}

func (c *HTTP) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return &domain.DeliveryError{Op: op, Err: err}
	}
	return c.do(op, req, out)
}

func (c *HTTP) do(op string, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &domain.DeliveryError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.DeliveryError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.DeliveryError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

var _ domain.BackendClient = (*HTTP)(nil)
