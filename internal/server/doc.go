// Package server is the SafeLens backend HTTP API.
//
// Endpoints
//
//	GET  /              status probe
//	POST /analyze-text  form "text"; returns {"analysis": {label, score, keywords_detected}}
//	POST /send-alert    form "contact_phone", "trigger_message"; returns {status, message}
//	GET  /location      configured backend position as {lat, lon, url}
//
// All responses are JSON. Errors carry {"code", "message"}. CORS is fully
// open because the client may be served from any origin.
package server
