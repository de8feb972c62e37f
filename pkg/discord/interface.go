package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"callaudit-srv/pkg/log"
)

// IDiscord posts operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	// ReportBug posts an unhandled request error.
	ReportBug(ctx context.Context, message string) error
	// SendError posts a titled alert with err attached as a field.
	SendError(ctx context.Context, title, description string, err error) error
	Close() error
}

// DiscordWebhook identifies the webhook.
type DiscordWebhook struct {
	ID    string
	Token string
}

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// New creates the client. An incomplete webhook yields an error so callers can run without alerts.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:          l,
		url:        webhookBaseURL + "/" + webhook.ID + "/" + webhook.Token,
		client:     &http.Client{Timeout: 10 * time.Second},
		retries:    1,
		retryDelay: time.Second,
	}, nil
}
