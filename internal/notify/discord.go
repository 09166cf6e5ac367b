package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gleasonw/lidnd/internal/errors"
)

const defaultDiscordBaseURL = "https://discord.com/api/v10"

// DiscordSinkConfig configures the Discord message sink.
type DiscordSinkConfig struct {
	// BotToken authenticates as the mirror bot
	BotToken string
	// BaseURL overrides the Discord API endpoint, mainly for tests
	BaseURL string
	// HTTPTimeout bounds each API call (default 10s)
	HTTPTimeout time.Duration
}

// Validate ensures the config is usable.
func (cfg *DiscordSinkConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.BotToken == "" {
		vb.RequiredField("BotToken")
	}
	return vb.Build()
}

// DiscordSink posts and edits mirror messages through the Discord REST
// API. It implements MessageSink.
type DiscordSink struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewDiscordSink creates a Discord-backed message sink.
func NewDiscordSink(cfg *DiscordSinkConfig) (*DiscordSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultDiscordBaseURL
	}
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &DiscordSink{
		token:   cfg.BotToken,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type discordMessage struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
}

// SendMessage posts a new message and returns its ID.
func (s *DiscordSink) SendMessage(ctx context.Context, channelID, content string) (string, error) {
	url := fmt.Sprintf("%s/channels/%s/messages", s.baseURL, channelID)

	var msg discordMessage
	if err := s.do(ctx, http.MethodPost, url, content, &msg); err != nil {
		return "", errors.Wrap(err, "failed to send message")
	}
	return msg.ID, nil
}

// EditMessage rewrites an existing message in place. Returns
// ErrMessageNotFound when the message no longer exists.
func (s *DiscordSink) EditMessage(ctx context.Context, channelID, messageID, content string) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", s.baseURL, channelID, messageID)

	if err := s.do(ctx, http.MethodPatch, url, content, nil); err != nil {
		return errors.Wrap(err, "failed to edit message")
	}
	return nil
}

func (s *DiscordSink) do(ctx context.Context, method, url, content string, out *discordMessage) error {
	body, err := json.Marshal(discordMessage{Content: content})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to encode message")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Authorization", "Bot "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "chat API unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrMessageNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Internalf("chat API returned %d: %s", resp.StatusCode, string(snippet))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode chat API response")
		}
	}
	return nil
}
