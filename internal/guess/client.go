// Package guess talks to the external service that guesses a word from its descriptions.
package guess

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable is returned for every failure: the caller only needs to know there is no guess this turn.
var ErrUnavailable = errors.New("guess unavailable")

type Guesser interface {
	Guess(ctx context.Context, description string, prior []string) (string, error)
}

type request struct {
	Description     string   `json:"description"`
	AllDescriptions []string `json:"allDescriptions"`
}

type response struct {
	Guess string `json:"guess"`
	Error string `json:"error,omitempty"`
}

type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient returns a client for the service at url. Each request is bounded by timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Guess(ctx context.Context, description string, prior []string) (string, error) {
	if c == nil || c.URL == "" {
		return "", fmt.Errorf("%w: no guess service configured", ErrUnavailable)
	}
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("%w: empty description", ErrUnavailable)
	}
	if prior == nil {
		prior = []string{}
	}

	body, err := json.Marshal(request{Description: description, AllDescriptions: prior})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", ErrUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d %s", ErrUnavailable, resp.StatusCode, out.Error)
	}
	guess := strings.TrimSpace(out.Guess)
	if guess == "" {
		return "", fmt.Errorf("%w: empty guess", ErrUnavailable)
	}
	return guess, nil
}
