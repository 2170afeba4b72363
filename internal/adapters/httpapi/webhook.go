package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/okorch/notetaker/internal/adapters/rtms"
	"github.com/okorch/notetaker/internal/app"
	"github.com/okorch/notetaker/internal/auth"
)

// WebhookHandler turns platform notifications into session lifecycle actions.
// Apart from the URL-validation challenge, the reply is always 200 "ok":
// internal failures never surface to the webhook sender.
type WebhookHandler struct {
	Secret   string // webhook verification secret, not the handshake secret
	Workflow *app.Workflow
	RTMS     *rtms.Client
}

type webhookEvent struct {
	Event   string         `json:"event"`
	Payload webhookPayload `json:"payload"`
}

type webhookPayload struct {
	PlainToken  string `json:"plainToken"`
	MeetingUUID string `json:"meeting_uuid"`
	StreamID    string `json:"rtms_stream_id"`
	ServerURLs  string `json:"server_urls"`
}

func (h *WebhookHandler) Handle(ctx context.Context, c *gin.Context) {
	var ev webhookEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		log.Warn().Str("module", "httpapi.webhook").Err(err).Msg("bad webhook body")
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	logger := log.With().
		Str("module", "httpapi.webhook").
		Str("request_id", c.GetString("request_id")).
		Str("event", ev.Event).
		Logger()

	switch ev.Event {
	case "endpoint.url_validation":
		if ev.Payload.PlainToken == "" {
			logger.Warn().Msg("validation challenge without token")
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		logger.Info().Msg("answering url validation challenge")
		c.JSON(http.StatusOK, gin.H{
			"plainToken":     ev.Payload.PlainToken,
			"encryptedToken": auth.ChallengeResponse(ev.Payload.PlainToken, h.Secret),
		})

	case "meeting.rtms_started":
		p := ev.Payload
		if p.MeetingUUID == "" || p.StreamID == "" || p.ServerURLs == "" {
			logger.Warn().Msg("rtms_started payload incomplete")
		} else {
			logger.Info().Str("meeting", p.MeetingUUID).Msg("meeting started")
			h.RTMS.StartSignaling(ctx, p.MeetingUUID, p.StreamID, p.ServerURLs)
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})

	case "meeting.rtms_stopped":
		logger.Info().Str("meeting", ev.Payload.MeetingUUID).Msg("meeting stopped")
		h.Workflow.StopMeeting(ev.Payload.MeetingUUID)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})

	default:
		logger.Debug().Msg("ignoring unhandled event")
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
