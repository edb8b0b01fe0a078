package cli

import (
	"context"
	"fmt"

	"github.com/srshearer/slack-announce/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// NewConfigCommand creates a new config command
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage slack-announce configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Generate configuration template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path for config file",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Force overwrite existing file",
					},
				},
				Action: configInitAction,
			},
			{
				Name:   "show",
				Usage:  "Print configuration template",
				Action: configShowAction,
			},
		},
	}
}

func configInitAction(ctx context.Context, cmd *cli.Command) error {
	service := usecase.NewConfigService()

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = service.GetDefaultPath()
	}

	if err := service.SaveTemplate(outputPath, cmd.Bool("force")); err != nil {
		return fmt.Errorf("failed to create config template: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Config template written to %s\n", outputPath)
	return nil
}

func configShowAction(ctx context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprint(cmd.Root().Writer, usecase.NewConfigService().GenerateTemplate())
	return err
}
