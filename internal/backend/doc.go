// Package backend provides an HTTP implementation of the domain.BackendClient
// interface used by the SafeLens client.
//
// The backend classifies free text, relays alerts to the trusted contact and
// can report a device position. This package offers a concrete HTTP client
// for those endpoints:
//   - POST /analyze-text   (form: text)
//   - POST /send-alert     (form: contact_phone, trigger_message)
//   - GET  /location
//
// All requests accept a context for cancellation and deadlines. Transport
// errors and non-2xx statuses are returned as *domain.DeliveryError carrying
// the operation name and status code.
package backend
