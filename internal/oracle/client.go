package oracle

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

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
)

const systemPrompt = "You are a Sanskrit Scholar. When given a word, provide: " +
	"1. Devanagari spelling 2. Etymology (Root/Dhatu) 3. Cultural significance " +
	"4. A simple usage sentence. Keep responses concise and beautiful."

// NoWisdom is returned when the model answers with an empty message.
const NoWisdom = "No wisdom found."

var ErrNotConfigured = errors.New("oracle API key not configured")

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	model      string
	log        *logger.Logger
}

func New(url, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		apiKey:     apiKey,
		model:      model,
		log:        logger.Default().WithPrefix("oracle"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Explain asks the model for the Sanskrit background of word.
func (c *Client) Explain(ctx context.Context, word string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("oracle").WithField("word", word)
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Explain the Sanskrit connection for: " + word},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.Debug("querying oracle")
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("oracle request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()
	log.Debug("oracle responded in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("oracle request failed: status=%d, body=%s", resp.StatusCode, string(snippet))
		return "", fmt.Errorf("oracle status %d: %s", resp.StatusCode, string(snippet))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode oracle response: %v", err)
		return "", err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return NoWisdom, nil
	}
	return out.Choices[0].Message.Content, nil
}
