package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every service configuration section.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Geocoding GeocodingConfig
	Speech    SpeechConfig
	Storage   StorageConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	speech, err := loadSpeechConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		AI:        ai,
		Geocoding: loadGeocodingConfig(),
		Speech:    speech,
		Storage:   loadStorageConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the generative completion endpoint. Generation
// parameters default to the values the assistant was tuned with.
type AIConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
	Timeout         int
}

// Enabled reports whether the completion endpoint can be called.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("GEMINI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("GEMINI_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	topK, err := parseOptionalIntEnv("GEMINI_TOP_K")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("GEMINI_MAX_OUTPUT_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeout, err := parseOptionalIntEnv("GEMINI_TIMEOUT")
	if err != nil {
		return AIConfig{}, err
	}

	cfg := AIConfig{
		APIKey:          strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		BaseURL:         getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		Temperature:     0.3,
		TopK:            40,
		TopP:            0.8,
		MaxOutputTokens: 1000,
		Timeout:         30,
	}

	if temperature != nil {
		cfg.Temperature = *temperature
	}
	if topK != nil {
		cfg.TopK = *topK
	}
	if topP != nil {
		cfg.TopP = *topP
	}
	if maxTokens != nil {
		cfg.MaxOutputTokens = *maxTokens
	}
	if timeout != nil {
		cfg.Timeout = *timeout
	}

	return cfg, nil
}

// GeocodingConfig describes the reverse-geocoding endpoint.
type GeocodingConfig struct {
	APIKey  string
	BaseURL string
	Timeout int
}

// Enabled reports whether reverse geocoding can be called.
func (c GeocodingConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadGeocodingConfig() GeocodingConfig {
	return GeocodingConfig{
		APIKey:  strings.TrimSpace(os.Getenv("OPENCAGE_API_KEY")),
		BaseURL: getEnvOrDefault("OPENCAGE_BASE_URL", "https://api.opencagedata.com/geocode/v1/json"),
		Timeout: 15,
	}
}

// SpeechConfig tunes the voice input and speech output adapters.
type SpeechConfig struct {
	Enabled           bool
	SilenceWindow     int // seconds of silence before voice input auto-stops
	LongTextThreshold int // narration length that requires confirmation
	Rate              float64
	Pitch             float64
	Volume            float64
	Locale            string
}

func loadSpeechConfig() (SpeechConfig, error) {
	enabled, err := parseBoolEnv("SPEECH_ENABLED", true)
	if err != nil {
		return SpeechConfig{}, err
	}

	silence, err := parseOptionalIntEnv("SPEECH_SILENCE_WINDOW")
	if err != nil {
		return SpeechConfig{}, err
	}
	silenceSeconds := 4
	if silence != nil && *silence > 0 {
		silenceSeconds = *silence
	}

	threshold, err := parseOptionalIntEnv("SPEECH_LONG_TEXT_THRESHOLD")
	if err != nil {
		return SpeechConfig{}, err
	}
	longText := 500
	if threshold != nil && *threshold > 0 {
		longText = *threshold
	}

	return SpeechConfig{
		Enabled:           enabled,
		SilenceWindow:     silenceSeconds,
		LongTextThreshold: longText,
		Rate:              0.9,
		Pitch:             1.0,
		Volume:            0.8,
		Locale:            getEnvOrDefault("SPEECH_LOCALE", "en-IN"),
	}, nil
}

// StorageConfig locates the durable contact store.
type StorageConfig struct {
	Path string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Path: getEnvOrDefault("CONTACTS_DB_PATH", "civishield.db"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
