// Package analysis submits text to the backend classifier and watches for the
// user's trigger phrase.
package analysis
