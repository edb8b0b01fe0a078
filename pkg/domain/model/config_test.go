package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

func TestConfig(t *testing.T) {
	t.Run("NewConfig defaults", func(t *testing.T) {
		config := model.NewConfig()
		gt.Equal(t, config.Slack.DefaultTitle, "Server Announcement: ")
		gt.Equal(t, config.Slack.Timeout, model.DefaultTimeout)
		gt.NoError(t, config.Validate())
	})

	t.Run("ExpandEnv", func(t *testing.T) {
		t.Setenv("TEST_HOOK", "https://hooks.example.com/abc")
		t.Setenv("TEST_USER", "bot")

		config := model.NewConfig()
		config.Slack.WebhookURL = "${TEST_HOOK}"
		config.Slack.UserName = "$TEST_USER"
		config.ExpandEnv()
		gt.Equal(t, config.Slack.WebhookURL, "https://hooks.example.com/abc")
		gt.Equal(t, config.Slack.UserName, "bot")
	})

	t.Run("Validate rejects malformed URLs", func(t *testing.T) {
		config := model.NewConfig()
		config.Slack.PersonalWebhookURL = "hooks.example.com"
		err := config.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
	})
}

func TestSendRequest(t *testing.T) {
	newRequest := func() *model.SendRequest {
		return &model.SendRequest{
			Target:     model.DeliveryTarget{Channel: "#ops", WebhookURL: "https://hooks.example.com/abc"},
			UserName:   "bot",
			Attachment: &model.Attachment{Fallback: "t", Title: "t", Text: "body", Color: model.ColorBlue},
		}
	}

	t.Run("Valid request", func(t *testing.T) {
		gt.NoError(t, newRequest().Validate())
	})

	t.Run("Missing text", func(t *testing.T) {
		req := newRequest()
		req.Attachment.Text = ""
		err := req.Validate()
		gt.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("Missing username", func(t *testing.T) {
		req := newRequest()
		req.UserName = ""
		err := req.Validate()
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
		gt.Equal(t, err.Error(), "missing username: configuration error")
	})

	t.Run("NewPayload", func(t *testing.T) {
		payload := newRequest().NewPayload()
		gt.NotNil(t, payload.Channel)
		gt.Equal(t, *payload.Channel, "#ops")
		gt.Equal(t, payload.UserName, "bot")
		gt.Equal(t, len(payload.Attachments), 1)

		req := newRequest()
		req.Target.Channel = ""
		gt.Nil(t, req.NewPayload().Channel)
	})
}
