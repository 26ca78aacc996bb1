package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// NoOutput is returned when the backend answers successfully but without an output.
const NoOutput = "No output received."

const maxResponseSize = 4 << 20

// Relay forwards a single question to the question-answering backend
type Relay struct {
	apiURL string
	client *http.Client
}

type askRequest struct {
	Input string `json:"input"`
}

type askResponse struct {
	Output *string `json:"output"`
}

func NewRelay(apiURL string, client *http.Client) *Relay {
	if client == nil {
		client = http.DefaultClient
	}
	return &Relay{
		apiURL: apiURL,
		client: client,
	}
}

// Ask posts the question with the token as bearer credential and returns the backend's answer.
// Non-200 replies come back as *BackendError carrying the raw body; transport problems
// wrap apperrors.ErrNetworkFailure. Nothing is retried.
func (r *Relay) Ask(ctx context.Context, question, accessToken string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", apperrors.ErrEmptyQuestion
	}
	if accessToken == "" {
		return "", apperrors.ErrNotAuthenticated
	}

	payload, err := json.Marshal(askRequest{Input: question})
	if err != nil {
		return "", fmt.Errorf("[query Ask] encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("[query Ask] creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.bearerClient(ctx, accessToken).Do(req)
	if err != nil {
		log.Err(err).Str("api_url", r.apiURL).Msg("Backend request failed")
		return "", fmt.Errorf("[query Ask] %w: %w", apperrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("[query Ask] %w: reading response: %w", apperrors.ErrNetworkFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("Backend returned an error")
		return "", &BackendError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var answer askResponse
	if err := json.Unmarshal(body, &answer); err != nil {
		return "", &BackendError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}
	if answer.Output == nil || *answer.Output == "" {
		return NoOutput, nil
	}
	return *answer.Output, nil
}

// bearerClient wraps the relay's client so every request carries "Authorization: Bearer <token>".
func (r *Relay) bearerClient(ctx context.Context, accessToken string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, r.client)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
}
