package alert

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"safelens/internal/domain"
)

// Trigger messages for the three alert sources.
const (
	ManualMessage = "Manual emergency button was pressed."
	DuressMessage = "Duress code was entered on the keypad."
)

// DefaultBody is sent when the user has not configured a custom message.
const DefaultBody = "EMERGENCY! I need help."

// LocationFallback replaces the maps link when no position is available.
const LocationFallback = "Location unavailable"

// TriggerPhraseMessage is the trigger message for a matched phrase.
func TriggerPhraseMessage(phrase string) string {
	return fmt.Sprintf("Trigger phrase %q detected.", phrase)
}

// formatCoord renders a coordinate with full precision and at least one
// decimal place, so 37 becomes "37.0".
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") && !math.IsNaN(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}

// MapsURL returns a maps link for the given position.
func MapsURL(lat, lon float64) string {
	return "https://www.google.com/maps?q=" + formatCoord(lat) + "," + formatCoord(lon)
}

// LocationDescriptor is the maps link for an available location, or the
// fixed fallback text.
func LocationDescriptor(loc domain.Location) string {
	if !loc.Available {
		return LocationFallback
	}
	return MapsURL(loc.Lat, loc.Lon)
}

// ComposeBody joins the custom message and the location descriptor on
// separate lines. A blank custom message falls back to DefaultBody.
func ComposeBody(custom string, loc domain.Location) string {
	if strings.TrimSpace(custom) == "" {
		custom = DefaultBody
	}
	return custom + "\n" + LocationDescriptor(loc)
}

// SMSLink builds an sms: deep link addressed to phone with body percent
// encoded (spaces as %20, as messaging apps expect).
func SMSLink(phone, body string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
	return "sms:" + phone + "?body=" + encoded
}
