package rtms

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okorch/notetaker/internal/auth"
	"github.com/okorch/notetaker/internal/core"
	"github.com/okorch/notetaker/internal/domain"
	"github.com/okorch/notetaker/internal/protocol"
)

// mediaDialer skips certificate verification for the media channel only: the
// media endpoint is a short-lived pre-authenticated address handed out by the
// signaling handshake, not a stable public host.
var mediaDialer = &websocket.Dialer{
	Proxy:            http.ProxyFromEnvironment,
	HandshakeTimeout: 45 * time.Second,
	TLSClientConfig:  &tls.Config{InsecureSkipVerify: true},
}

// runMedia drives the media channel. It holds a reference to the still-open
// signaling handle for exactly one send: reporting the stream active after a
// successful data handshake. A dropped media channel is not reconnected.
func (c *Client) runMedia(ctx context.Context, mediaURL, meetingUUID, streamID string, signaling core.Conn) {
	logger := log.With().Str("module", "rtms.media").Str("meeting", meetingUUID).Logger()
	logger.Info().Str("url", mediaURL).Msg("connecting to media server")

	ws, _, err := mediaDialer.DialContext(ctx, mediaURL, nil)
	if err != nil {
		logger.Error().Err(err).Msg("media dial failed")
		return
	}
	conn := newWSConn(ws)

	sess, ok := c.registry.Get(meetingUUID)
	if !ok {
		logger.Warn().Msg("no session for media channel")
		conn.Close()
		return
	}
	sess.BindMedia(conn)
	defer func() {
		sess.ClearMedia()
		conn.Close()
		logger.Info().Msg("media closed")
	}()

	// Fresh per-channel signature; the signaling one is never reused.
	sig, err := auth.Sign(c.clientID, meetingUUID, streamID, c.clientSecret)
	if err != nil {
		logger.Error().Err(err).Msg("cannot sign handshake")
		return
	}
	if err := conn.SendJSON(protocol.DataHandshake(meetingUUID, streamID, sig)); err != nil {
		logger.Error().Err(err).Msg("handshake send failed")
		return
	}
	logger.Info().Msg("media handshake sent")

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			logger.Warn().Err(err).Msg("media connection closed")
			return
		}
		msg, err := protocol.Decode(data)
		if err != nil {
			logger.Warn().Err(err).Msg("dropping undecodable media frame")
			continue
		}

		switch msg.Type {
		case protocol.TypeKeepAliveReq:
			if err := conn.SendJSON(protocol.KeepAliveResponse(msg.Timestamp)); err != nil {
				logger.Warn().Err(err).Msg("keep-alive reply failed")
			}

		case protocol.TypeDataHandshakeResp:
			if msg.StatusCode != protocol.StatusOK {
				logger.Error().Int("status", msg.StatusCode).Msg("media handshake rejected")
				continue
			}
			// The remote learns the stream is live over the signaling channel.
			if err := signaling.SendJSON(protocol.StreamStateActive(streamID)); err != nil {
				logger.Warn().Err(err).Msg("stream-state update failed")
			} else {
				logger.Info().Msg("media handshake complete, stream active")
			}

		case protocol.TypeMediaDataTranscript:
			c.handleTranscript(sess, msg, logger)
		}
	}
}

func (c *Client) handleTranscript(sess *core.Session, msg *protocol.Message, logger zerolog.Logger) {
	if msg.Content == nil || msg.Content.Data == "" {
		return
	}
	speaker := msg.Content.UserName
	if speaker == "" {
		speaker = "Unknown User"
	}
	line := domain.FormatLine(speaker, msg.Content.Data)
	sess.AppendTranscript(line)
	if window, ready := c.windower.Offer(sess, line); ready {
		logger.Debug().Int("lines", len(window)).Msg("transcript window ready")
		c.workflow.Dispatch(sess.MeetingUUID, core.WindowReady{Lines: window})
	}
}
