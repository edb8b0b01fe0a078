package model

import "strings"

// PersonalChannel is the channel name that routes a message to the personal
// webhook instead of a channel.
const PersonalChannel = "me"

// Attachment represents a Slack message attachment
type Attachment struct {
	Fallback string     `json:"fallback"`
	Color    ColorToken `json:"color"`
	Title    string     `json:"title,omitempty"`
	Text     string     `json:"text"`
}

// Payload represents the JSON payload for Slack webhook. Channel is encoded as
// null when the webhook's own default destination should be used.
type Payload struct {
	Channel     *string      `json:"channel"`
	UserName    string       `json:"username"`
	Attachments []Attachment `json:"attachments"`
}

// DeliveryTarget is where a message goes. An empty Channel means the webhook
// default (direct message for the personal webhook).
type DeliveryTarget struct {
	Channel    string
	WebhookURL string `validate:"required,url"`
	Debug      bool
	DryRun     bool
}

// SendRequest is everything the sender needs for a single POST.
type SendRequest struct {
	Target     DeliveryTarget
	UserName   string      `validate:"required"`
	Attachment *Attachment `validate:"required"`
}

// NewPayload builds the wire payload. Slack requires an attachments array even
// for a single attachment.
func (r *SendRequest) NewPayload() *Payload {
	payload := &Payload{
		UserName:    r.UserName,
		Attachments: []Attachment{*r.Attachment},
	}
	if r.Target.Channel != "" {
		channel := r.Target.Channel
		payload.Channel = &channel
	}
	return payload
}

type DeliveryState string

const (
	DeliveryDryRunSkipped DeliveryState = "dry_run_skipped"
	DeliverySent          DeliveryState = "sent"
	DeliveryFailed        DeliveryState = "failed"
)

// DeliveryResult reports the terminal state of a send.
type DeliveryResult struct {
	State      DeliveryState
	StatusCode int
	Body       string
	Payload    *Payload
}

// EnsureChannelPrefix prepends "#" unless the channel is empty or already
// prefixed.
func EnsureChannelPrefix(channel string) string {
	if channel == "" || strings.HasPrefix(channel, "#") {
		return channel
	}
	return "#" + channel
}
