package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.post(ctx, embed{
		Title:       "Unhandled error",
		Description: truncate(message, maxDescriptionLen),
		Color:       colorUrgent,
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	e := embed{
		Title:       title,
		Description: truncate(description, maxDescriptionLen),
		Color:       colorError,
	}
	if err != nil {
		e.Fields = []embedField{{Name: "Error", Value: truncate(err.Error(), maxFieldLen)}}
	}
	return d.post(ctx, e)
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

// post sends e, retrying once on failure.
func (d *discordImpl) post(ctx context.Context, e embed) error {
	e.Timestamp = time.Now().UTC().Format(time.RFC3339)
	body, err := json.Marshal(webhookPayload{Username: username, Embeds: []embed{e}})
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= d.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.retryDelay):
			}
		}
		if lastErr = d.do(ctx, body); lastErr == nil {
			return nil
		}
	}
	d.l.Warnf(ctx, "discord.post: giving up: %v", lastErr)
	return lastErr
}

func (d *discordImpl) do(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
