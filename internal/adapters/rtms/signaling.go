// Package rtms drives the two WebSocket channels of a meeting's RTMS stream:
// the signaling channel that negotiates and monitors the stream, and the
// media channel that delivers transcript fragments.
package rtms

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/okorch/notetaker/internal/app"
	"github.com/okorch/notetaker/internal/auth"
	"github.com/okorch/notetaker/internal/config"
	"github.com/okorch/notetaker/internal/core"
	"github.com/okorch/notetaker/internal/protocol"
)

// Client owns the channel drivers for all meetings. Each driver is one
// goroutine that lives exactly until its socket closes; every exit path
// clears the driver's handle from the session.
type Client struct {
	clientID     string
	clientSecret string
	registry     *app.Registry
	windower     *app.Windower
	workflow     *app.Workflow
}

func NewClient(cfg *config.Config, reg *app.Registry, win *app.Windower, wf *app.Workflow) *Client {
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		registry:     reg,
		windower:     win,
		workflow:     wf,
	}
}

// StartSignaling launches the signaling driver for one meeting.
func (c *Client) StartSignaling(ctx context.Context, meetingUUID, streamID, serverURL string) {
	go c.runSignaling(ctx, meetingUUID, streamID, serverURL)
}

func (c *Client) runSignaling(ctx context.Context, meetingUUID, streamID, serverURL string) {
	logger := log.With().Str("module", "rtms.signaling").Str("meeting", meetingUUID).Logger()
	logger.Info().Str("url", serverURL).Msg("connecting to signaling server")

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, serverURL, nil)
	if err != nil {
		logger.Error().Err(err).Msg("signaling dial failed")
		return
	}
	conn := newWSConn(ws)

	sess, isNew := c.registry.CreateIfAbsent(meetingUUID, streamID)
	sess.BindSignaling(conn)
	defer func() {
		sess.ClearSignaling()
		conn.Close()
		logger.Info().Msg("signaling closed")
	}()

	if isNew {
		title := "Meeting Notes " + time.Now().Format("2006-01-02")
		c.workflow.Dispatch(meetingUUID, core.DocumentNeeded{Title: title})
	}

	sig, err := auth.Sign(c.clientID, meetingUUID, streamID, c.clientSecret)
	if err != nil {
		logger.Error().Err(err).Msg("cannot sign handshake")
		return
	}
	handshake := protocol.SignalingHandshake(meetingUUID, streamID, sig, time.Now().UnixNano())
	if err := conn.SendJSON(handshake); err != nil {
		logger.Error().Err(err).Msg("handshake send failed")
		return
	}
	logger.Info().Msg("signaling handshake sent")

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			logger.Warn().Err(err).Msg("signaling connection closed")
			return
		}
		msg, err := protocol.Decode(data)
		if err != nil {
			logger.Warn().Err(err).Msg("dropping bad signaling frame")
			continue
		}

		switch msg.Type {
		case protocol.TypeKeepAliveReq:
			if err := conn.SendJSON(protocol.KeepAliveResponse(msg.Timestamp)); err != nil {
				logger.Warn().Err(err).Msg("keep-alive reply failed")
			}

		case protocol.TypeSignalingHandshakeResp:
			if msg.StatusCode != protocol.StatusOK {
				logger.Error().Int("status", msg.StatusCode).Msg("signaling handshake rejected")
				continue
			}
			mediaURL := msg.MediaURL()
			if mediaURL == "" {
				// Feature unavailable for this meeting; the signaling
				// channel stays up but no transcript will flow.
				logger.Warn().Msg("handshake response names no media server")
				continue
			}
			if sess.Media() != nil {
				continue
			}
			go c.runMedia(ctx, mediaURL, meetingUUID, streamID, conn)

		case protocol.TypeStreamStateUpdate:
			if msg.State == protocol.StateTerminated {
				logger.Info().Msg("stream terminated by remote")
				return
			}
		}
	}
}
