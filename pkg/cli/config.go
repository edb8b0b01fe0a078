package cli

import (
	"log/slog"
	"strings"

	"github.com/srshearer/slack-announce/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

const envPrefix = "SLACK_ANNOUNCE_"

type Config struct {
	Message    string
	Title      string
	Color      string
	Fallback   string
	Channel    string
	Debug      bool
	DryRun     bool
	Verbose    bool
	ConfigPath string
}

// NewConfigFromCommand reads the invocation flags
func NewConfigFromCommand(cmd *cli.Command) *Config {
	return &Config{
		Message:    cmd.String("message"),
		Title:      cmd.String("title"),
		Color:      cmd.String("color"),
		Fallback:   cmd.String("fallback"),
		Channel:    cmd.String("channel"),
		Debug:      cmd.Bool("debug"),
		DryRun:     cmd.Bool("dry"),
		Verbose:    cmd.Bool("verbose"),
		ConfigPath: cmd.String("config"),
	}
}

func (c *Config) ToOptions() model.Options {
	return model.Options{
		Message:  c.Message,
		Title:    c.Title,
		Color:    c.Color,
		Fallback: c.Fallback,
		Channel:  c.Channel,
		Debug:    c.Debug,
		DryRun:   c.DryRun,
	}
}

// LogLevel is debug in debug or dry-run mode, info when verbose and warn
// otherwise
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Debug || c.DryRun:
		return slog.LevelDebug
	case c.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "The message to send to the channel",
		},
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Set a message title",
		},
		&cli.StringFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "The color for message. Options: " + strings.Join(model.ColorAliases(), ", "),
		},
		&cli.StringFlag{
			Name:  "fallback",
			Usage: "Plain text shown in notifications (default: the title)",
		},
		&cli.StringFlag{
			Name:    "channel",
			Aliases: []string{"r"},
			Usage:   `Slack channel room to send the message to; "me" sends to yourself`,
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "Enable debug mode. Send message to test channel",
		},
		&cli.BoolFlag{
			Name:  "dry",
			Usage: "Enable dryrun mode. Message will not be sent",
		},
	}
}

// DefineConfigFlags returns flags that override values of the config file
func DefineConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "webhook-url",
			Usage:   "Slack incoming webhook URL",
			Sources: cli.EnvVars(envPrefix + "WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:    "personal-webhook-url",
			Usage:   "Slack incoming webhook URL used with --channel me",
			Sources: cli.EnvVars(envPrefix + "PERSONAL_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:    "username",
			Usage:   "User name to post as",
			Sources: cli.EnvVars(envPrefix + "USERNAME"),
		},
		&cli.StringFlag{
			Name:    "default-channel",
			Usage:   "Channel for normal messages",
			Sources: cli.EnvVars(envPrefix + "CHANNEL"),
		},
		&cli.StringFlag{
			Name:    "debug-channel",
			Usage:   "Channel for debug and dry-run messages",
			Sources: cli.EnvVars(envPrefix + "DEBUG_CHANNEL"),
		},
		&cli.StringFlag{
			Name:    "default-title",
			Usage:   "Title of messages sent without --title",
			Sources: cli.EnvVars(envPrefix + "DEFAULT_TITLE"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Webhook request timeout",
			Sources: cli.EnvVars(envPrefix + "TIMEOUT"),
		},
	}
}

// applyOverrides copies flags and environment variables that were set over
// the loaded config
func applyOverrides(cmd *cli.Command, config *model.Config) {
	s := &config.Slack
	strs := map[string]*string{
		"webhook-url":          &s.WebhookURL,
		"personal-webhook-url": &s.PersonalWebhookURL,
		"username":             &s.UserName,
		"default-channel":      &s.Channel,
		"debug-channel":        &s.DebugChannel,
		"default-title":        &s.DefaultTitle,
	}
	for name, p := range strs {
		if cmd.IsSet(name) {
			*p = cmd.String(name)
		}
	}

	if cmd.IsSet("timeout") {
		s.Timeout = cmd.Duration("timeout")
	}
	if s.Timeout <= 0 {
		s.Timeout = model.DefaultTimeout
	}
}
