package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	got, err := LogSender{Log: zap.New(core)}.Send(context.Background(), "+15551234567", "help")
	require.NoError(t, err)
	assert.Equal(t, "Mock alert sent to +15551234567.", got)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "+15551234567", entries[0].ContextMap()["to"])
	assert.Equal(t, "help", entries[0].ContextMap()["message"])
}

func TestTwilioSender(t *testing.T) {
	var user, pass, to, from, body, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ = r.BasicAuth()
		_ = r.ParseForm()
		to, from, body = r.PostForm.Get("To"), r.PostForm.Get("From"), r.PostForm.Get("Body")
		path = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer srv.Close()

	s := TwilioSender{AccountSID: "AC1", AuthToken: "tok", From: "+1000", BaseURL: srv.URL, HTTP: srv.Client()}
	got, err := s.Send(context.Background(), " +15551234567 ", "help")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC1/Messages.json", path)
	assert.Equal(t, "AC1", user)
	assert.Equal(t, "tok", pass)
	assert.Equal(t, "+15551234567", to)
	assert.Equal(t, "+1000", from)
	assert.Equal(t, "help", body)
	assert.Contains(t, got, "SM123")
}

func TestTwilioSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer srv.Close()

	s := TwilioSender{AccountSID: "AC1", BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := s.Send(context.Background(), "nope", "help")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid phone number")
}

func TestTwilioSender_MalformedSuccessBody(t *testing.T) {
	for name, payload := range map[string]string{
		"not json": `<html>ok</html>`,
		"no sid":   `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(payload))
			}))
			defer srv.Close()

			s := TwilioSender{AccountSID: "AC1", AuthToken: "tok", From: "+1000", BaseURL: srv.URL, HTTP: srv.Client()}
			got, err := s.Send(context.Background(), "+15551234567", "help")
			require.Error(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestTwilioSender_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := TwilioSender{AccountSID: "AC1", AuthToken: "tok", From: "+1000", BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := s.Send(ctx, "+15551234567", "help")
	require.Error(t, err)
}
