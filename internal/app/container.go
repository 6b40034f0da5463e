package app

import (
	"context"

	"github.com/doeshing/jarvis-go/internal/application/dispatch"
	"github.com/doeshing/jarvis-go/internal/application/doctor"
	"github.com/doeshing/jarvis-go/internal/application/knowledge"
	"github.com/doeshing/jarvis-go/internal/application/listen"
	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/cache"
	"github.com/doeshing/jarvis-go/internal/infrastructure/config"
	"github.com/doeshing/jarvis-go/internal/infrastructure/history"
	"github.com/doeshing/jarvis-go/internal/infrastructure/lookup"
	"github.com/doeshing/jarvis-go/internal/infrastructure/osaction"
	"github.com/doeshing/jarvis-go/internal/infrastructure/speech"
	"github.com/doeshing/jarvis-go/internal/infrastructure/vision"
	"github.com/doeshing/jarvis-go/internal/infrastructure/wakeword"
	"github.com/doeshing/jarvis-go/internal/pkg/logger"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	Dispatcher     *dispatch.Service
	Resolver       *knowledge.Resolver
	Listener       *listen.Loop
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	DoctorService  *doctor.Service
	HistoryStore   ports.HistoryRepository
	CacheStore     *cache.FileCache
	Camera         ports.Camera
	Speaker        ports.Speaker
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph from the loaded config.
// Optional stores (history, cache) stay nil when disabled; the services
// treat nil collaborators as absent.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	wake := wakeword.New(cfg.Wakeword.Phrase, cfg.Wakeword.Keyword)

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore()
	}
	var cacheStore *cache.FileCache
	if cfg.Cache.Enabled {
		cacheStore = cache.NewFileCache(cfg.Cache)
	}

	speaker := speech.NewSpeaker(cfg.Speech, log)
	capturer := speech.NewCapturer(cfg.Capture, log)
	camera := vision.NewCamera(cfg.Vision, log)
	screen := vision.NewScreenGrabber(cfg.Vision)
	actions := osaction.New(log)

	resolver := &knowledge.Resolver{
		Structured:   lookup.NewWikipediaClient(cfg.Lookup),
		Web:          lookup.NewWebSearcher(cfg.Lookup),
		Logger:       log,
		MaxSentences: cfg.Lookup.WikiSentences,
	}
	if cacheStore != nil {
		resolver.Cache = cacheStore
	}

	dispatcher := &dispatch.Service{
		Resolver:      resolver,
		Web:           resolver.Web,
		Browser:       actions,
		System:        actions,
		Screen:        screen,
		Camera:        camera,
		Speaker:       speaker,
		History:       historyStore,
		Logger:        log,
		SaveDir:       cfg.Vision.SaveDir,
		MaxCandidates: cfg.Lookup.MaxCandidates,
	}

	listener := &listen.Loop{
		Capturer:   capturer,
		Dispatcher: dispatcher,
		Speaker:    speaker,
		Logger:     log,
		Wakeword:   wake,
		Capture:    cfg.Capture,
	}

	return &Container{
		Config:         cfg,
		Dispatcher:     dispatcher,
		Resolver:       resolver,
		Listener:       listener,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		DoctorService:  doctor.New(cfgLoader),
		HistoryStore:   historyStore,
		CacheStore:     cacheStore,
		Camera:         camera,
		Speaker:        speaker,
		Logger:         log,
	}, nil
}

// Wakeword rebuilds the normalizer for the loaded config. The CLI uses it to
// strip a leading wake phrase from typed input.
func (c *Container) Wakeword() *wakeword.Normalizer {
	return wakeword.New(c.Config.Wakeword.Phrase, c.Config.Wakeword.Keyword)
}
