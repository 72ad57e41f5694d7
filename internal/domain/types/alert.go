package types

import "time"

// Channel selects how an alert leaves the device.
type Channel string

const (
	// ChannelSMSLink hands an sms: deep link to the platform messaging app.
	ChannelSMSLink Channel = "sms-link"
	// ChannelBackend posts the alert to the backend alert service.
	ChannelBackend Channel = "backend"
)

// AlertMessage is composed per dispatch and never persisted.
type AlertMessage struct {
	Body           string
	RecipientPhone string
}

// AlertOutcome describes a completed dispatch.
type AlertOutcome struct {
	ID          DispatchID
	Channel     Channel
	Message     AlertMessage
	Location    Location
	Detail      string // backend acknowledgement or the launched link
	DeliveredAt time.Time
}

// AlertReceipt is the backend's acknowledgement of /send-alert.
type AlertReceipt struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
