package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(), DefineConfigFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to config file (default: ./.slack-announce.yml, then ~/.config/slack-announce/config.yml)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "slack-announce",
		Usage:   "Send announcements to a Slack channel as a bot user",
		Version: "0.1.0",
		Description: `slack-announce sends custom messages and maintenance announcements to Slack
through an incoming webhook.

Message shortcuts:
  -m up                          server is back up
  -m "down 30 minutes"           server going down, with expected downtime
  -m "serverupdate NAME NOTES"   software update available; "\n" in NOTES is a newline

Any other message is sent as is, with -t/--title and -c/--color applied.
Use -r me to send to yourself, -d to send to the debug channel and --dry to
print the payload without sending.`,
		Flags:  flags,
		Action: RunAnnounce,
		Commands: []*cli.Command{
			NewConfigCommand(),
		},
	}
}
