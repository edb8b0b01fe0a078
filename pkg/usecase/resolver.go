package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

// ResolveTarget decides the channel and webhook for one invocation.
//
// Dry-run always implies debug. The "me" channel goes to the personal webhook
// with no channel so that the webhook's own direct-message default applies.
// Otherwise debug mode uses the debug channel and normal mode the default
// channel, both on the primary webhook.
func ResolveTarget(ctx context.Context, cfg *model.SlackConfig, channel string, debug, dryRun bool) model.DeliveryTarget {
	logger := ctxlog.From(ctx)

	if dryRun {
		debug = true
	}

	target := model.DeliveryTarget{
		Debug:  debug,
		DryRun: dryRun,
	}

	switch {
	case channel == model.PersonalChannel:
		target.WebhookURL = cfg.PersonalWebhookURL
		return target

	case debug:
		target.Channel = cfg.DebugChannel
		target.WebhookURL = cfg.WebhookURL

	default:
		target.Channel = cfg.Channel
		target.WebhookURL = cfg.WebhookURL
	}

	if channel != "" {
		logger.Info("explicit channel only selects the personal webhook, using configured channel",
			slog.String("requested", channel),
			slog.String("channel", target.Channel),
		)
	}

	target.Channel = model.EnsureChannelPrefix(target.Channel)

	logger.Debug("target resolved",
		slog.String("channel", target.Channel),
		slog.String("webhook_url", maskWebhookURL(target.WebhookURL)),
		slog.Bool("debug", target.Debug),
		slog.Bool("dry_run", target.DryRun),
	)
	return target
}
