// Package sms delivers alert text to a phone number on behalf of the
// backend.
//
// LogSender only records the alert (the default, for demos and tests);
// TwilioSender posts to the Twilio Messages API.
package sms
