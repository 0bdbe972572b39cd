package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// WebhookController records provider event notifications. Events are only
// mirrored for browsing; the provider owns delivery, retries and ordering,
// so the endpoint acknowledges everything it can parse.
type WebhookController struct {
	syncer *sync.Syncer
}

func NewWebhookController(syncer *sync.Syncer) *WebhookController {
	return &WebhookController{syncer: syncer}
}

type webhookPayload struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Livemode bool            `json:"livemode"`
	Data     json.RawMessage `json:"data"`
}

// HandleEvent stores one notification. Redeliveries of an already recorded
// event are acknowledged without a second row.
func (wc *WebhookController) HandleEvent(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if payload.ID == "" || payload.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing event id or type"})
	}

	event, created, err := wc.syncer.RecordEvent(payload.ID, payload.Type, payload.Livemode, string(c.Body()))
	if err != nil {
		log.Error().Err(err).Str("event", payload.ID).Msg("could not record event")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if !created {
		log.Debug().Str("event", payload.ID).Msg("event redelivered, already recorded")
	}
	return c.JSON(fiber.Map{"id": event.StripeID, "recorded": created})
}
