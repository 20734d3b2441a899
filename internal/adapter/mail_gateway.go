// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mercadinho Contributors

// Package adapter holds clients for external collaborators reached over the
// network. The only one today is the mail gateway that delivers
// password-reset messages.
package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mercadinho/auth-service/internal/config"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/models"
)

// expiresAtLayout renders the token expiry for display in the message body
// (two-digit date fields, 24-hour clock).
const expiresAtLayout = "01/02/2006, 15:04:05"

// mailMessage is the wire format the mail gateway accepts.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// MailGateway implements the reset-notification contract by posting messages
// to an HTTP mail gateway. It owns the outward-facing reset URL and the
// display formatting of the expiry; the core only supplies raw values.
type MailGateway struct {
	client      *resty.Client
	fromName    string
	fromAddress string
	frontEndURL string
	logger      *logger.Logger
}

// NewMailGateway constructs a MailGateway from notifier configuration.
func NewMailGateway(cfg config.Notifier, logger *logger.Logger) *MailGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.GatewayURL, "/")).
		SetTimeout(timeout)

	return &MailGateway{
		client:      cli,
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
		frontEndURL: strings.TrimRight(cfg.FrontEndURL, "/"),
		logger:      logger,
	}
}

// SendResetLink delivers the password-reset message. Any transport failure
// or non-2xx gateway response is returned as a generic error; the raw token
// is embedded only in the message payload and never logged.
func (g *MailGateway) SendResetLink(ctx context.Context, notification models.ResetNotification) error {
	log := logger.FromContext(ctx)

	message := mailMessage{
		From:    fmt.Sprintf("%q %s", g.fromName, g.fromAddress),
		To:      notification.Recipient,
		Subject: "Mercadinho - Reset Password",
		HTML: fmt.Sprintf(
			`<h1>Reset Password</h1> <br />
        <p>Heres the link to set your new password: %s</p>
        <p>This link expires at %s</p>`,
			g.resetPasswordURL(notification.RawToken),
			notification.ExpiresAt.Format(expiresAtLayout),
		),
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post("/api/messages")
	if err != nil {
		log.Err(err).Str("recipient", notification.Recipient).Msg("reset link send failed")
		return fmt.Errorf("reset link send failed: %w", err)
	}
	if resp.IsError() {
		log.Error().Str("recipient", notification.Recipient).Int("status", resp.StatusCode()).Msg("mail gateway rejected message")
		return fmt.Errorf("mail gateway returned status %d", resp.StatusCode())
	}

	return nil
}

func (g *MailGateway) resetPasswordURL(rawToken string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", g.frontEndURL, rawToken)
}
