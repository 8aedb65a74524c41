package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/civishield/civi-shield/backend/internal/bus"
	"github.com/civishield/civi-shield/backend/internal/config"
	"github.com/civishield/civi-shield/backend/internal/handler"
	"github.com/civishield/civi-shield/backend/internal/i18n"
	aiservice "github.com/civishield/civi-shield/backend/internal/service/ai"
	assistservice "github.com/civishield/civi-shield/backend/internal/service/assist"
	geoservice "github.com/civishield/civi-shield/backend/internal/service/geo"
	"github.com/civishield/civi-shield/backend/internal/speech/input"
	"github.com/civishield/civi-shield/backend/internal/speech/output"
	contactstore "github.com/civishield/civi-shield/backend/internal/store/contacts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Shared language and location state
	state := bus.New()

	// Durable family contact store
	contacts, err := contactstore.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("failed to open contact store: %v", err)
	}
	defer contacts.Close()
	log.Printf("contact store opened at %s", cfg.Storage.Path)

	// AI completion client
	var aiClient aiservice.Client
	if cfg.AI.Enabled() {
		aiClient = aiservice.NewService(cfg.AI)
		log.Println("AI completion service initialized successfully")
	} else {
		log.Println("GEMINI_API_KEY not configured, answers fall back to emergency templates")
	}

	// Assistant orchestrator
	assist := assistservice.NewService(aiClient, state)

	// Location resolution
	var geocoder geoservice.Geocoder
	if cfg.Geocoding.Enabled() {
		geocoder = geoservice.NewOpenCageClient(cfg.Geocoding)
		log.Println("reverse geocoding enabled")
	} else {
		log.Println("OPENCAGE_API_KEY not configured, detected positions keep their coordinate label")
	}
	geo := geoservice.NewService(state, geoservice.NoopLocator{}, geocoder)

	// Speech output: playback directives stream to the page, which owns the
	// audio device.
	var speechAdapter *output.Adapter
	var directives *output.DirectiveSynthesizer
	if cfg.Speech.Enabled {
		directives = output.NewDirectiveSynthesizer()
		speechAdapter = output.NewAdapter(directives, output.Options{
			Rate:              cfg.Speech.Rate,
			Pitch:             cfg.Speech.Pitch,
			Volume:            cfg.Speech.Volume,
			LongTextThreshold: cfg.Speech.LongTextThreshold,
		})
		assist.SetNarrator(speechAdapter)
		log.Println("speech output initialized successfully")
	} else {
		log.Println("speech disabled by configuration, answers stay on screen")
	}

	// Voice input: recognition deltas arrive over the voice WebSocket.
	var voiceAdapter *input.Adapter
	var recognizer *input.PushRecognizer
	if cfg.Speech.Enabled {
		recognizer = input.NewPushRecognizer()
		voiceAdapter = input.NewAdapter(recognizer, time.Duration(cfg.Speech.SilenceWindow)*time.Second)
		voiceAdapter.SetLocale(cfg.Speech.Locale)
	}

	// Keep the voice locale in step with the selected language.
	if voiceAdapter != nil {
		state.OnLanguageChange(func(code string) {
			voiceAdapter.SetLocale(i18n.SpeechLocale(code))
		})
	}

	router := handler.NewRouter(handler.Deps{
		State:      state,
		Assist:     assist,
		Geo:        geo,
		Contacts:   contacts,
		Speech:     speechAdapter,
		Directives: directives,
		Voice:      voiceAdapter,
		Recognizer: recognizer,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("CIVI-SHIELD backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
