package discord

import (
	"net/http"
	"time"

	"callaudit-srv/pkg/log"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"
	username       = "callaudit-srv"

	// Discord rejects descriptions above 4096 characters.
	maxDescriptionLen = 4000
	maxFieldLen       = 1000

	colorError  = 0xE74C3C
	colorUrgent = 0x992D22
)

type discordImpl struct {
	l          log.Logger
	url        string
	client     *http.Client
	retries    int
	retryDelay time.Duration
}

type embedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds"`
}
