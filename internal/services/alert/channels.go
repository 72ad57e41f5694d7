package alert

import (
	"context"

	"safelens/internal/domain"
)

// Channel delivers a composed alert.
type Channel interface {
	Name() domain.Channel
	// Deliver sends msg. trigger is the reason for the alert. The returned
	// detail is a user-facing acknowledgement.
	Deliver(ctx context.Context, trigger string, msg domain.AlertMessage) (detail string, err error)
}

// SMSLinkChannel hands an sms: deep link to the platform messaging app.
type SMSLinkChannel struct {
	Launcher domain.Launcher
}

// Name reports domain.ChannelSMSLink.
func (SMSLinkChannel) Name() domain.Channel { return domain.ChannelSMSLink }

// Deliver launches the deep link. The trigger reason is not part of the SMS.
func (c SMSLinkChannel) Deliver(ctx context.Context, _ string, msg domain.AlertMessage) (string, error) {
	link := SMSLink(msg.RecipientPhone, msg.Body)
	if err := c.Launcher.Launch(ctx, link); err != nil {
		return "", &domain.DeliveryError{Op: "open messaging app", Err: err}
	}
	return link, nil
}

// BackendChannel posts the alert to the backend alert service.
type BackendChannel struct {
	Client domain.BackendClient
}

// Name reports domain.ChannelBackend.
func (BackendChannel) Name() domain.Channel { return domain.ChannelBackend }

// Deliver submits the contact phone and the trigger message followed by the
// composed body, so the backend sees both the reason and the location.
func (c BackendChannel) Deliver(ctx context.Context, trigger string, msg domain.AlertMessage) (string, error) {
	rec, err := c.Client.SendAlert(ctx, msg.RecipientPhone, trigger+"\n"+msg.Body)
	if err != nil {
		return "", err
	}
	return rec.Message, nil
}

var (
	_ Channel = SMSLinkChannel{}
	_ Channel = BackendChannel{}
)
