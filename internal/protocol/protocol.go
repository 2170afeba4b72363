// Package protocol defines the RTMS message catalog shared by the signaling
// and media channels, and the codec between raw frames and typed messages.
package protocol

// Message type discriminators. The same numeric space covers both channels.
const (
	TypeSignalingHandshakeReq  = 1
	TypeSignalingHandshakeResp = 2
	TypeDataHandshakeReq       = 3
	TypeDataHandshakeResp      = 4
	TypeStreamStateUpdate      = 7
	TypeKeepAliveReq           = 12
	TypeKeepAliveResp          = 13
	TypeMediaDataTranscript    = 17
)

const (
	ProtocolVersion     = 1
	MediaTypeTranscript = 8 // declares transcript-only interest in the data handshake
	StatusOK            = 0
	StateTerminated     = 4
)

// Message is the inbound envelope. Fields are populated per msg_type; absent
// fields keep their zero value. A missing status_code decodes to 0, which is
// the success value on this protocol.
type Message struct {
	Type        int             `json:"msg_type"`
	StatusCode  int             `json:"status_code"`
	State       int             `json:"state"`
	Timestamp   int64           `json:"timestamp"`
	MediaServer *MediaServer    `json:"media_server"`
	Content     *TranscriptData `json:"content"`
}

type MediaServer struct {
	ServerURLs ServerURLs `json:"server_urls"`
}

type ServerURLs struct {
	Transcript string `json:"transcript"`
	All        string `json:"all"`
}

// TranscriptData carries one transcript fragment.
type TranscriptData struct {
	UserName string `json:"user_name"`
	Data     string `json:"data"`
}

// MediaURL returns the media endpoint named by a signaling handshake response,
// preferring the transcript-specific URL. Empty when the response names none.
func (m *Message) MediaURL() string {
	if m.MediaServer == nil {
		return ""
	}
	if u := m.MediaServer.ServerURLs.Transcript; u != "" {
		return u
	}
	return m.MediaServer.ServerURLs.All
}
