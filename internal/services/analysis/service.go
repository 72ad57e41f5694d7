package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"safelens/internal/domain"
	"safelens/internal/services/alert"
)

// Service is the text analysis client.
type Service struct {
	backend    domain.BackendClient
	dispatcher domain.AlertDispatcher
	phrase     string
	log        *zap.Logger
}

// New returns a Service. A blank phrase disables trigger scanning.
func New(backend domain.BackendClient, dispatcher domain.AlertDispatcher, phrase string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		backend:    backend,
		dispatcher: dispatcher,
		phrase:     strings.TrimSpace(phrase),
		log:        log.Named("analysis"),
	}
}

// Matches reports whether text contains the trigger phrase, ignoring case.
func (s *Service) Matches(text string) bool {
	if s.phrase == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(s.phrase))
}

// Analyze scans text for the trigger phrase and then asks the backend to
// classify it. The scan and its alert happen before, and regardless of, the
// network call. The returned error describes the classification only; the
// alert outcome is reported in the result.
func (s *Service) Analyze(ctx context.Context, text string) (domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return domain.AnalysisResult{}, &domain.ValidationError{Field: "text", Message: "enter some text to analyze"}
	}

	var res domain.AnalysisResult
	if s.Matches(text) {
		res.TriggerMatched = true
		res.TriggerPhrase = s.phrase
		s.log.Info("trigger phrase matched")
		if s.dispatcher == nil {
			res.AlertErr = domain.ErrMissingContact
		} else {
			out, err := s.dispatcher.Trigger(ctx, alert.TriggerPhraseMessage(s.phrase))
			res.Alert = &out
			res.AlertErr = err
			if err != nil {
				s.log.Warn("trigger phrase alert failed", zap.Error(err))
			}
		}
	}

	a, err := s.backend.AnalyzeText(ctx, text)
	if err != nil {
		s.log.Warn("classification failed", zap.Error(err))
		return res, err
	}
	res.Analysis = &a
	s.log.Debug("classified", zap.String("label", a.Label), zap.Float64("score", a.Score))
	return res, nil
}

// Compile-time assertion that Service implements domain.TextAnalyzer.
var _ domain.TextAnalyzer = (*Service)(nil)
