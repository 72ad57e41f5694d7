// Package alert composes and delivers duress alerts to the trusted contact.
//
// A dispatch runs in a fixed order: load the contact (fail with
// domain.ErrMissingContact before anything else happens), resolve the
// location with a bounded wait, compose the message body, then deliver it on
// exactly one channel. The three trigger sources (manual button, keypad
// duress code, trigger phrase) all go through Service.Trigger and behave
// identically. Repeated triggers are never deduplicated.
package alert
