package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"safelens/internal/domain"
)

// Service is the alert dispatcher.
type Service struct {
	contacts domain.ContactStore
	resolver domain.LocationResolver
	channel  Channel
	body     string
	log      *zap.Logger
	now      func() time.Time
}

// New returns a dispatcher that sends body (blank for DefaultBody) over
// channel.
func New(
	contacts domain.ContactStore,
	resolver domain.LocationResolver,
	channel Channel,
	body string,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		contacts: contacts,
		resolver: resolver,
		channel:  channel,
		body:     body,
		log:      log.Named("alert"),
		now:      time.Now,
	}
}

// Trigger composes and delivers one alert for message.
//
// Without a trusted contact it fails with domain.ErrMissingContact before any
// location lookup or delivery. A missing location never aborts the alert.
func (s *Service) Trigger(ctx context.Context, message string) (domain.AlertOutcome, error) {
	id := domain.DispatchID(uuid.NewString())
	log := s.log.With(zap.String("dispatch_id", id.String()), zap.String("trigger", message))

	contact, ok, err := s.contacts.GetContact()
	if err != nil {
		log.Error("load trusted contact", zap.Error(err))
		return domain.AlertOutcome{ID: id}, err
	}
	if !ok {
		log.Warn("alert not sent: no trusted contact")
		return domain.AlertOutcome{ID: id}, domain.ErrMissingContact
	}

	loc := s.resolver.Resolve(ctx)
	log.Info("location resolved", zap.Bool("available", loc.Available))

	msg := domain.AlertMessage{
		Body:           ComposeBody(s.body, loc),
		RecipientPhone: contact.Phone,
	}
	out := domain.AlertOutcome{
		ID:       id,
		Channel:  s.channel.Name(),
		Message:  msg,
		Location: loc,
	}

	detail, err := s.channel.Deliver(ctx, message, msg)
	if err != nil {
		log.Error("alert delivery failed", zap.String("channel", string(out.Channel)), zap.Error(err))
		return out, err
	}
	out.Detail = detail
	out.DeliveredAt = s.now()
	log.Info("alert delivered", zap.String("channel", string(out.Channel)))
	return out, nil
}

// Compile-time assertion that Service implements domain.AlertDispatcher.
var _ domain.AlertDispatcher = (*Service)(nil)
