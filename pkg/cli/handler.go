package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/interfaces"
	"github.com/srshearer/slack-announce/pkg/domain/model"
	"github.com/srshearer/slack-announce/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func RunAnnounce(ctx context.Context, cmd *cli.Command) error {
	config := NewConfigFromCommand(cmd)

	errWriter := cmd.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(errWriter, &slog.HandlerOptions{
		Level: config.LogLevel(),
	}))
	ctx = ctxlog.With(ctx, logger)

	if config.Message == "" {
		return goerr.Wrap(domain.ErrInvalidInput, `required flag "message" not set`)
	}

	appConfig, err := loadConfig(ctx, usecase.NewConfigService(), config.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cmd, appConfig)
	if err := appConfig.Validate(); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cmd.Writer != nil {
		w = cmd.Writer
	}

	sender := usecase.NewSlackSender(NewDisplayManager(w),
		usecase.WithTimeout(appConfig.Slack.Timeout),
	)

	announce := usecase.NewAnnounceUseCase(usecase.AnnounceUseCaseOptions{
		Config: appConfig,
		Sender: sender,
	})

	_, err = announce.Execute(ctx, config.ToOptions())
	return err
}

// loadConfig reads the explicit config path if given, otherwise the config in
// the working directory, otherwise the per-user config
func loadConfig(ctx context.Context, service interfaces.ConfigService, path string) (*model.Config, error) {
	logger := ctxlog.From(ctx)

	if path != "" {
		logger.Debug("loading config", slog.String("path", path))
		return service.Load(path)
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return nil, goerr.Wrap(domain.ErrConfiguration, "failed to get working directory: "+err.Error())
	}

	config, foundPath, err := service.LoadFromDirectory(currentDir)
	if err != nil {
		return nil, err
	}
	if foundPath != "" {
		logger.Debug("loaded config", slog.String("path", foundPath))
		return config, nil
	}

	logger.Debug("loading default config", slog.String("path", service.GetDefaultPath()))
	return service.LoadDefault()
}
