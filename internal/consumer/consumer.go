package consumer

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

// Consumer applies loyalty preference updates from order-placed events. The
// broker redelivers unacknowledged messages, so each update is applied at
// least once; the preference upsert tolerates replays by re-deriving
// eligibility from the stored count.
type Consumer struct {
	prefSvc *service.PreferenceService
	reader  *kafka.Reader
}

func NewConsumer(prefSvc *service.PreferenceService, reader *kafka.Reader) *Consumer {
	return &Consumer{prefSvc: prefSvc, reader: reader}
}

// Start reads order events until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		c.processMessage(ctx, msg)
	}
}

// processMessage turns one order-placed event into per-line preference
// updates. A failed line is logged and skipped; the rest still apply.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	var event entity.OrderPlacedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		log.Error().Msgf("Error unmarshalling message: %v", err)
		return
	}

	for _, item := range event.Items {
		err := c.prefSvc.UpdatePreference(ctx, &entity.PreferenceUpdateRequest{
			CustomerID: event.CustomerID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
		if err != nil {
			log.Error().Msgf("Error updating preference for customer %d item %d: %v", event.CustomerID, item.MenuItemID, err)
		}
	}
}
