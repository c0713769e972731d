// Package genai is the adapter for the Gemini text-generation API. The
// pipeline treats it as an external oracle: every call is single-shot and
// synchronous, and failures surface as plain errors for the calling stage to
// absorb with its own fallback. No retries happen here.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mahacyber/cyber-suraksha/pkg/config"
)

// ErrNotConfigured is returned when no API key was provided at startup
var ErrNotConfigured = errors.New("genai: API key not configured")

// Client calls the Gemini generateContent endpoint
type Client struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
}

// NewClient creates a Gemini client from injected configuration
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether an API key is available
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Classify asks the model to categorize a complaint into the fixed taxonomy
func (c *Client) Classify(ctx context.Context, complaint string) (*Classification, error) {
	prompt := fmt.Sprintf(classifyPrompt, complaint)

	var result Classification
	if err := c.generate(ctx, prompt, c.cfg.ClassifyTemperature, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Draft asks the model to write a submission-ready complaint report
func (c *Client) Draft(ctx context.Context, req DraftRequest) (*Draft, error) {
	prompt := fmt.Sprintf(draftPrompt,
		req.ScamType,
		req.Complaint,
		req.Amount,
		req.UTR,
		req.BankName,
		req.SuspectPhone,
		req.SuspectURL,
		req.IncidentDate,
		req.EvidenceScore,
	)

	var result Draft
	if err := c.generate(ctx, prompt, c.cfg.DraftTemperature, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// generateContent request/response shapes (only the fields we use)
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string, temperature float64, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      temperature,
			ResponseMimeType: "application/json",
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("genai: API error (status %d): %s", resp.StatusCode, string(body))
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return fmt.Errorf("genai: failed to parse response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return errors.New("genai: empty response from model")
	}

	text := stripCodeFence(gr.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("genai: malformed model output: %w", err)
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code block if the model
// ignored the no-markdown instruction
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
