package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"safelens/internal/backend"
	"safelens/internal/domain"
	alertsvc "safelens/internal/services/alert"
	analysissvc "safelens/internal/services/analysis"
	capturesvc "safelens/internal/services/capture"
	"safelens/internal/services/location"
	"safelens/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config   *Config
	Log      *zap.Logger
	KV       domain.KVStore
	Contacts domain.ContactStore
	Vault    domain.EvidenceVault
	Backend  domain.BackendClient
	Location domain.LocationResolver
	Alerts   domain.AlertDispatcher
	Capture  *capturesvc.Session
	Analyzer domain.TextAnalyzer
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}

	kv, err := openKV(cfg)
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Backend.Timeout}
	}
	bc := backend.NewHTTP(cfg.Backend.URL, httpClient)

	contacts := store.NewContactStore(kv)
	vault := store.NewVault(kv)
	resolver := location.NewResolver(newLocator(cfg, bc), cfg.Alert.LocationTimeout, log)

	var channel alertsvc.Channel
	switch cfg.Alert.Channel {
	case domain.ChannelBackend:
		channel = alertsvc.BackendChannel{Client: bc}
	default:
		launcher := cfg.Launcher
		if launcher == nil {
			launcher = alertsvc.SystemLauncher{}
		}
		channel = alertsvc.SMSLinkChannel{Launcher: launcher}
	}
	alerts := alertsvc.New(contacts, resolver, channel, cfg.Alert.Message, log)

	var mic domain.Microphone = capturesvc.Denied{}
	if cfg.Capture.Source != "" {
		mic = capturesvc.WAVFile{Path: cfg.Capture.Source}
	}
	captureOpts := []capturesvc.Option{capturesvc.WithLogger(log)}
	if cfg.Capture.Mode == domain.SaveAsDownload {
		captureOpts = append(captureOpts, capturesvc.WithDownload(cfg.DownloadDir()))
	}
	session := capturesvc.NewSession(mic, vault, captureOpts...)

	analyzer := analysissvc.New(bc, alerts, cfg.Analysis.TriggerPhrase, log)

	log.Debug("wired",
		zap.String("store", cfg.Store.Backend),
		zap.String("channel", string(cfg.Alert.Channel)),
		zap.String("location", cfg.Location.Source),
		zap.String("capture", string(cfg.Capture.Mode)))

	return &Wire{
		Config:   cfg,
		Log:      log,
		KV:       kv,
		Contacts: contacts,
		Vault:    vault,
		Backend:  bc,
		Location: resolver,
		Alerts:   alerts,
		Capture:  session,
		Analyzer: analyzer,
		HTTP:     httpClient,
	}, nil
}

func openKV(cfg *Config) (domain.KVStore, error) {
	if cfg.Store.Backend == StoreSQLite {
		kv, err := store.NewSQLiteKV(filepath.Join(cfg.Home, "safelens.db"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return kv, nil
	}
	kv, err := store.NewFileKV(cfg.Home)
	if err != nil {
		return nil, fmt.Errorf("open file store: %w", err)
	}
	return kv, nil
}

func newLocator(cfg *Config, bc domain.BackendClient) domain.Locator {
	switch cfg.Location.Source {
	case LocationStatic:
		return location.Static{Lat: cfg.Location.Lat, Lon: cfg.Location.Lon}
	case LocationDenied:
		return location.Denied{}
	default:
		return location.Backend{Client: bc}
	}
}
