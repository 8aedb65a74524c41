// Package ai calls the generative completion endpoint used to answer
// emergency queries. The wire format is the generateContent JSON API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/civishield/civi-shield/backend/internal/config"
)

// ApologyMessage is returned when the endpoint answers without a usable
// candidate text field.
const ApologyMessage = "I'm sorry, I couldn't process that request right now. For immediate emergencies, dial 112."

// InlineImage attaches a user-supplied photo to a completion request.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// Client issues completion requests. Implemented by Service and by test fakes.
type Client interface {
	Complete(ctx context.Context, prompt string, image *InlineImage) (string, error)
}

// Service is the HTTP client for the completion endpoint.
type Service struct {
	cfg    config.AIConfig
	client *http.Client
}

// NewService creates the completion client from configuration.
func NewService(cfg config.AIConfig) *Service {
	return &Service{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete sends a single concatenated system+user prompt and returns the
// first candidate text. A well-formed response with no usable text yields
// ApologyMessage rather than an error; transport and status failures are
// returned to the caller for local fallback handling.
func (s *Service) Complete(ctx context.Context, prompt string, image *InlineImage) (string, error) {
	parts := []part{{Text: prompt}}
	if image != nil && len(image.Data) > 0 {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: image.MIMEType,
			Data:     image.Data,
		}})
	}

	reqBody := generateContentRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			Temperature:     s.cfg.Temperature,
			TopK:            s.cfg.TopK,
			TopP:            s.cfg.TopP,
			MaxOutputTokens: s.cfg.MaxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.cfg.BaseURL, s.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	text := firstCandidateText(parsed)
	if text == "" {
		log.Printf("[ai] response contained no candidate text, returning apology")
		return ApologyMessage, nil
	}

	return text, nil
}

func firstCandidateText(resp generateContentResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
