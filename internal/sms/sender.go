package sms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Sender delivers body to phone and returns a short confirmation.
type Sender interface {
	Send(ctx context.Context, phone, body string) (string, error)
}

// LogSender writes alerts to the log instead of sending them.
type LogSender struct {
	Log *zap.Logger
}

// Send logs the alert.
func (s LogSender) Send(_ context.Context, phone, body string) (string, error) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Warn("EMERGENCY ALERT TRIGGERED", zap.String("to", phone), zap.String("message", body))
	return fmt.Sprintf("Mock alert sent to %s.", phone), nil
}

// TwilioSender sends SMS through the Twilio REST API. BaseURL, when set,
// replaces the scheme and host of every API call.
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string
	HTTP       *http.Client
}

// Send creates one message resource.
func (s TwilioSender) Send(ctx context.Context, phone, body string) (string, error) {
	rest, err := s.client(ctx)
	if err != nil {
		return "", err
	}
	params := &openapi.CreateMessageParams{}
	params.SetTo(strings.TrimSpace(phone))
	params.SetFrom(s.From)
	params.SetBody(body)

	msg, err := rest.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio: %w", err)
	}
	if msg.Sid == nil || *msg.Sid == "" {
		return "", errors.New("twilio: response carried no message sid")
	}
	return fmt.Sprintf("Alert sent to %s (SID: %s).", phone, *msg.Sid), nil
}

func (s TwilioSender) client(ctx context.Context) (*twilio.RestClient, error) {
	base := s.HTTP
	if base == nil {
		base = &http.Client{Timeout: 15 * time.Second}
	}
	httpClient := *base
	rt := &requestTransport{ctx: ctx, next: base.Transport}
	if s.BaseURL != "" {
		u, err := url.Parse(s.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("twilio: base url: %w", err)
		}
		rt.target = u
	}
	httpClient.Transport = rt

	c := &client.Client{
		Credentials: client.NewCredentials(s.AccountSID, s.AuthToken),
		HTTPClient:  &httpClient,
	}
	c.SetAccountSid(s.AccountSID)
	return twilio.NewRestClientWithParams(twilio.ClientParams{Client: c}), nil
}

// requestTransport binds the caller's context to SDK requests, which are
// built without one, and optionally redirects them to another host.
type requestTransport struct {
	ctx    context.Context
	target *url.URL
	next   http.RoundTripper
}

func (t *requestTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(t.ctx)
	if t.target != nil {
		req.URL.Scheme = t.target.Scheme
		req.URL.Host = t.target.Host
		req.Host = t.target.Host
	}
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}

var (
	_ Sender = LogSender{}
	_ Sender = TwilioSender{}
)
