package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safelens/internal/backend"
	"safelens/internal/domain"
	"safelens/internal/server"
)

type captureSender struct {
	phone, body string
	err         error
}

func (c *captureSender) Send(_ context.Context, phone, body string) (string, error) {
	c.phone, c.body = phone, body
	if c.err != nil {
		return "", c.err
	}
	return "Mock alert sent to " + phone + ".", nil
}

func newServer(t *testing.T, cfg *server.Config, sender *captureSender) *httptest.Server {
	t.Helper()
	if cfg == nil {
		cfg = &server.Config{SMSProvider: server.ProviderLog}
	}
	ts := httptest.NewServer(server.New(cfg, sender, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postForm(t *testing.T, ts *httptest.Server, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := ts.Client().PostForm(ts.URL+path, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestStatus(t *testing.T) {
	ts := newServer(t, nil, &captureSender{})
	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, server.StatusMessage, body["status"])
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestAnalyzeText(t *testing.T) {
	ts := newServer(t, nil, &captureSender{})
	resp := postForm(t, ts, "/analyze-text", url.Values{"text": {"you're worthless, I'll kill you"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Analysis domain.Analysis `json:"analysis"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.LabelHighRisk, body.Analysis.Label)
	assert.Equal(t, 10.5, body.Analysis.Score)
	assert.Len(t, body.Analysis.Keywords, 3)
}

func TestAnalyzeText_SafeHasEmptyKeywordList(t *testing.T) {
	ts := newServer(t, nil, &captureSender{})
	resp := postForm(t, ts, "/analyze-text", url.Values{"text": {"lunch tomorrow?"}})

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, `[]`, string(raw["analysis"]["keywords_detected"]))
}

func TestAnalyzeText_MissingText(t *testing.T) {
	ts := newServer(t, nil, &captureSender{})
	resp := postForm(t, ts, "/analyze-text", url.Values{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "invalid_request", e["code"])
}

func TestSendAlert(t *testing.T) {
	sender := &captureSender{}
	cfg := &server.Config{SMSProvider: server.ProviderLog, HasLocation: true, Lat: -26.1843, Lon: 28.0055}
	ts := newServer(t, cfg, sender)

	resp := postForm(t, ts, "/send-alert", url.Values{
		"contact_phone":   {"+15551234567"},
		"trigger_message": {"Manual emergency button was pressed."},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec domain.AlertReceipt
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "success", rec.Status)
	assert.Equal(t, "Mock alert sent to +15551234567.", rec.Message)
	assert.Equal(t, "+15551234567", sender.phone)
	assert.Equal(t,
		"URGENT SafeLens Alert: Manual emergency button was pressed.. Location: https://www.google.com/maps?q=-26.1843,28.0055",
		sender.body)
}

func TestSendAlert_NoLocationConfigured(t *testing.T) {
	sender := &captureSender{}
	ts := newServer(t, nil, sender)
	postForm(t, ts, "/send-alert", url.Values{"contact_phone": {"1"}, "trigger_message": {"help"}})
	assert.Equal(t, "URGENT SafeLens Alert: help", sender.body)
}

func TestSendAlert_SenderFailureIs502(t *testing.T) {
	ts := newServer(t, nil, &captureSender{err: errors.New("carrier down")})
	resp := postForm(t, ts, "/send-alert", url.Values{"contact_phone": {"1"}, "trigger_message": {"help"}})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSendAlert_MissingFields(t *testing.T) {
	sender := &captureSender{}
	ts := newServer(t, nil, sender)
	resp := postForm(t, ts, "/send-alert", url.Values{"contact_phone": {"1"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, sender.body)
}

func TestLocation(t *testing.T) {
	ts := newServer(t, nil, &captureSender{})
	resp, err := ts.Client().Get(ts.URL + "/location")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	ts = newServer(t, &server.Config{HasLocation: true, Lat: 37, Lon: -122}, &captureSender{})
	resp, err = ts.Client().Get(ts.URL + "/location")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 37.0, body["lat"])
	assert.Equal(t, "https://www.google.com/maps?q=37.0,-122.0", body["url"])
}

func TestCORSPreflight(t *testing.T) {
	ts := newServer(t, nil, &captureSender{})
	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/send-alert", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Methods"))
}

func TestBackendClientRoundTrip(t *testing.T) {
	sender := &captureSender{}
	ts := newServer(t, &server.Config{HasLocation: true, Lat: 1.5, Lon: 2.5}, sender)
	client := backend.NewHTTP(ts.URL, ts.Client())
	ctx := context.Background()

	a, err := client.AnalyzeText(ctx, "hello there")
	require.NoError(t, err)
	assert.Equal(t, domain.LabelSafe, a.Label)

	rec, err := client.SendAlert(ctx, "+1555", "Duress code was entered on the keypad.\nEMERGENCY! I need help.")
	require.NoError(t, err)
	assert.Equal(t, "success", rec.Status)
	assert.True(t, strings.HasPrefix(sender.body, "URGENT SafeLens Alert: Duress code"))

	lat, lon, err := client.Locate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.5, lat)
	assert.Equal(t, 2.5, lon)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := server.New(&server.Config{ShutdownTimeout: time.Second}, &captureSender{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
