package usecase

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/interfaces"
	"github.com/srshearer/slack-announce/pkg/domain/model"
	"go.yaml.in/yaml/v3"
)

const appName = "slack-announce"

// configFileNames are looked up in a directory in priority order
var configFileNames = []string{
	"." + appName + ".yml",
	"." + appName + ".yaml",
}

const configTemplate = `# slack-announce configuration
#
# Values may reference environment variables, e.g. "${SLACK_WEBHOOK_URL}".
# Every value can also be overridden with a command line flag or its
# SLACK_ANNOUNCE_* environment variable.

slack:
  # Incoming webhook used for channel messages
  webhook_url: "${SLACK_WEBHOOK_URL}"

  # Incoming webhook that delivers to yourself, selected with "-r me"
  personal_webhook_url: ""

  # Name the bot posts as
  username: "announce-bot"

  # Channel for normal messages
  channel: "#general"

  # Channel used with -d/--debug and --dry
  debug_channel: "#bot-test"

  # Title of freeform messages without -t/--title
  default_title: "Server Announcement: "

  # Webhook request timeout
  timeout: 5s
`

type configService struct{}

// NewConfigService creates a new ConfigService instance
func NewConfigService() interfaces.ConfigService {
	return &configService{}
}

// Load reads and validates the config file at path
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is chosen by the operator
	if err != nil {
		return nil, goerr.Wrap(domain.ErrConfiguration, "failed to read config file: "+err.Error(),
			goerr.V("path", path))
	}

	config := model.NewConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(domain.ErrConfiguration, "failed to parse config file: "+err.Error(),
			goerr.V("path", path))
	}

	config.ExpandEnv()
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid config file", goerr.V("path", path))
	}

	return config, nil
}

// LoadDefault loads the per-user config, returning defaults when it does not
// exist
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if path == "" || !fileExists(path) {
		return model.NewConfig(), nil
	}
	return c.Load(path)
}

// LoadFromDirectory loads the first config file found in dir. The returned
// path is empty when no file exists, and set even when loading fails.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return model.NewConfig(), "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func (c *configService) GetDefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", appName, "config.yml")
}

func (c *configService) GenerateTemplate() string {
	return configTemplate
}

// SaveTemplate writes the template to path, refusing to overwrite an existing
// file unless force is set
func (c *configService) SaveTemplate(path string, force bool) error {
	if !force && fileExists(path) {
		return goerr.Wrap(domain.ErrConfiguration, "config file already exists, use --force to overwrite",
			goerr.V("path", path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return goerr.Wrap(domain.ErrConfiguration, "failed to create config directory: "+err.Error())
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return goerr.Wrap(domain.ErrConfiguration, "failed to write config file: "+err.Error(),
			goerr.V("path", path))
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
