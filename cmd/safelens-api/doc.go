// Package main runs the SafeLens backend: the text classifier, the alert
// relay and the optional location endpoint used by the safelens client.
//
// HTTP API
//
//	GET /
//	    Status probe.
//
//	POST /analyze-text   (form: text)
//	    Score the text against the built-in phrase tables.
//
//	POST /send-alert     (form: contact_phone, trigger_message)
//	    Send "URGENT SafeLens Alert: <trigger_message>" (plus the configured
//	    location) through the SMS provider. 502 when delivery fails.
//
//	GET /location
//	    The configured coordinates and a maps link; 404 when unset.
//
// Configuration
//
//	SAFELENS_API_ADDR        listen address (default 127.0.0.1:8000)
//	SAFELENS_SMS_PROVIDER    log (default) or twilio
//	TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER
//	SAFELENS_LOCATION_LAT, SAFELENS_LOCATION_LON
//	SAFELENS_LOG_LEVEL       debug, info, warn, error
//
// The process logs JSON to stdout and shuts down gracefully on SIGINT or
// SIGTERM.
package main
