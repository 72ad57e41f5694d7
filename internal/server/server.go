package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"safelens/internal/domain"
	"safelens/internal/risk"
	"safelens/internal/services/alert"
	"safelens/internal/sms"
)

// StatusMessage is the body of GET /.
const StatusMessage = "SafeLens API is running"

// Server is the backend API.
type Server struct {
	cfg    *Config
	router chi.Router
	scorer *risk.Scorer
	sender sms.Sender
	log    *zap.Logger
}

// New returns a Server that delivers alerts through sender.
func New(cfg *Config, sender sms.Sender, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		scorer: risk.NewScorer(),
		sender: sender,
		log:    log.Named("api"),
	}
	s.setupRouter()
	return s
}

// NewSender picks the SMS sender named in cfg.
func NewSender(cfg *Config, log *zap.Logger) sms.Sender {
	if cfg.SMSProvider == ProviderTwilio {
		return sms.TwilioSender{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			From:       cfg.TwilioFrom,
		}
	}
	return sms.LogSender{Log: log.Named("sms")}
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(recovery(s.log))
	r.Use(cors)
	if s.cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/", s.handleStatus)
	r.Post("/analyze-text", s.handleAnalyzeText)
	r.Post("/send-alert", s.handleSendAlert)
	r.Get("/location", s.handleLocation)

	s.router = r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on cfg.Addr until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), timeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": StatusMessage})
}

type analyzeResponse struct {
	Analysis domain.Analysis `json:"analysis"`
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid form body")
		return
	}
	text := r.PostForm.Get("text")
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Analysis: s.scorer.Score(text)})
}

// AlertText is the SMS text sent for a trigger message.
func (s *Server) AlertText(trigger string) string {
	msg := "URGENT SafeLens Alert: " + trigger
	if s.cfg.HasLocation {
		msg += ". Location: " + alert.MapsURL(s.cfg.Lat, s.cfg.Lon)
	}
	return msg
}

func (s *Server) handleSendAlert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid form body")
		return
	}
	phone := strings.TrimSpace(r.PostForm.Get("contact_phone"))
	trigger := r.PostForm.Get("trigger_message")
	if phone == "" || strings.TrimSpace(trigger) == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "contact_phone and trigger_message are required")
		return
	}

	detail, err := s.sender.Send(r.Context(), phone, s.AlertText(trigger))
	if err != nil {
		s.log.Error("alert delivery failed",
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, codeDelivery, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.AlertReceipt{Status: "success", Message: detail})
}

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	URL string  `json:"url"`
}

func (s *Server) handleLocation(w http.ResponseWriter, _ *http.Request) {
	if !s.cfg.HasLocation {
		writeError(w, http.StatusNotFound, codeNotFound, "location is not configured")
		return
	}
	writeJSON(w, http.StatusOK, locationResponse{
		Lat: s.cfg.Lat,
		Lon: s.cfg.Lon,
		URL: alert.MapsURL(s.cfg.Lat, s.cfg.Lon),
	})
}
