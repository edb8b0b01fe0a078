package interfaces

import (
	"context"

	"github.com/srshearer/slack-announce/pkg/domain/model"
)

// SlackSender delivers a single request to a Slack incoming webhook
type SlackSender interface {
	Send(ctx context.Context, req *model.SendRequest) (*model.DeliveryResult, error)
}
