package model

import (
	"errors"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/srshearer/slack-announce/pkg/domain"
)

const (
	DefaultTitle   = "Server Announcement: "
	DefaultTimeout = 5 * time.Second
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config represents the application configuration
type Config struct {
	Slack SlackConfig `yaml:"slack"`
}

// SlackConfig holds destinations and identity used for every message
type SlackConfig struct {
	WebhookURL         string        `yaml:"webhook_url,omitempty" validate:"omitempty,url"`
	PersonalWebhookURL string        `yaml:"personal_webhook_url,omitempty" validate:"omitempty,url"`
	UserName           string        `yaml:"username,omitempty"`
	Channel            string        `yaml:"channel,omitempty"`
	DebugChannel       string        `yaml:"debug_channel,omitempty"`
	DefaultTitle       string        `yaml:"default_title,omitempty"`
	Timeout            time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
}

// Options are the per-invocation inputs taken from the command line
type Options struct {
	Message  string
	Title    string
	Color    string
	Fallback string
	Channel  string
	Debug    bool
	DryRun   bool
}

// NewConfig returns a config with built-in defaults applied
func NewConfig() *Config {
	return &Config{
		Slack: SlackConfig{
			DefaultTitle: DefaultTitle,
			Timeout:      DefaultTimeout,
		},
	}
}

// ExpandEnv replaces ${VAR} and $VAR references in every string field
func (c *Config) ExpandEnv() {
	s := &c.Slack
	for _, p := range []*string{
		&s.WebhookURL,
		&s.PersonalWebhookURL,
		&s.UserName,
		&s.Channel,
		&s.DebugChannel,
		&s.DefaultTitle,
	} {
		*p = os.ExpandEnv(*p)
	}
}

// Validate checks the format of configured values. Presence of required
// values depends on the destination and is checked at send time.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return goerr.Wrap(domain.ErrConfiguration, "invalid configuration", goerr.V("detail", err.Error()))
	}
	return nil
}

var requestFieldLabels = map[string]string{
	"UserName":   "username",
	"WebhookURL": "webhook url",
}

// Validate checks the preconditions of a send. A missing attachment is an
// input error; a missing or malformed username or webhook is a configuration
// error.
func (r *SendRequest) Validate() error {
	if r.Attachment == nil {
		return goerr.Wrap(domain.ErrInvalidInput, "missing attachment")
	}
	if r.Attachment.Text == "" {
		return goerr.Wrap(domain.ErrInvalidInput, "missing attachment text")
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return goerr.Wrap(domain.ErrConfiguration, "invalid send request", goerr.V("detail", err.Error()))
	}

	fe := fieldErrs[0]
	label, ok := requestFieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	if fe.Tag() == "required" {
		return goerr.Wrap(domain.ErrConfiguration, "missing "+label)
	}
	return goerr.Wrap(domain.ErrConfiguration, "invalid "+label, goerr.V("rule", fe.Tag()))
}
