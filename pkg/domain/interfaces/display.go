package interfaces

import (
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

// Display reports delivery progress to the operator
type Display interface {
	ShowPayload(payload *model.Payload)
	ShowDryRun()
	StartSending(target model.DeliveryTarget)
	ShowResult(result *model.DeliveryResult)
}
