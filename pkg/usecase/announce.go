package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/interfaces"
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

type AnnounceUseCase struct {
	config   *model.Config
	composer *Composer
	sender   interfaces.SlackSender
}

type AnnounceUseCaseOptions struct {
	Config *model.Config
	Sender interfaces.SlackSender
}

func NewAnnounceUseCase(opts AnnounceUseCaseOptions) *AnnounceUseCase {
	config := opts.Config
	if config == nil {
		config = model.NewConfig()
	}

	return &AnnounceUseCase{
		config:   config,
		composer: NewComposer(config.Slack.DefaultTitle),
		sender:   opts.Sender,
	}
}

// Execute composes the message, resolves where it goes and sends it once.
func (u *AnnounceUseCase) Execute(ctx context.Context, opts model.Options) (*model.DeliveryResult, error) {
	logger := ctxlog.From(ctx)

	if u.sender == nil {
		return nil, goerr.Wrap(domain.ErrConfiguration, "slack sender is not set")
	}

	attachment, err := u.composer.Compose(ctx, opts.Message, opts.Title, opts.Color, opts.Fallback)
	if err != nil {
		return nil, err
	}

	target := ResolveTarget(ctx, &u.config.Slack, opts.Channel, opts.Debug, opts.DryRun)

	req := &model.SendRequest{
		Target:     target,
		UserName:   u.config.Slack.UserName,
		Attachment: attachment,
	}

	result, err := u.sender.Send(ctx, req)
	if err != nil {
		return result, err
	}

	logger.Info("announcement finished",
		slog.String("state", string(result.State)),
		slog.String("channel", target.Channel),
	)
	return result, nil
}
