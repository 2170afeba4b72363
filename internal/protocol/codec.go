package protocol

import (
	"encoding/json"
	"fmt"
)

// Decode parses a raw frame into a Message. A failed decode is not fatal to
// the channel; callers drop the frame and keep reading.
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("protocol: bad frame: %w", err)
	}
	return &m, nil
}

// SignalingHandshake builds the signed SIGNALING_HAND_SHAKE_REQ. The sequence
// must be strictly increasing within a connection.
func SignalingHandshake(meetingUUID, streamID, signature string, sequence int64) any {
	return struct {
		Type            int    `json:"msg_type"`
		ProtocolVersion int    `json:"protocol_version"`
		MeetingUUID     string `json:"meeting_uuid"`
		StreamID        string `json:"rtms_stream_id"`
		Sequence        int64  `json:"sequence"`
		Signature       string `json:"signature"`
	}{TypeSignalingHandshakeReq, ProtocolVersion, meetingUUID, streamID, sequence, signature}
}

// DataHandshake builds the signed DATA_HAND_SHAKE_REQ. Transcript-only media
// interest and unencrypted payloads are always declared.
func DataHandshake(meetingUUID, streamID, signature string) any {
	return struct {
		Type              int    `json:"msg_type"`
		ProtocolVersion   int    `json:"protocol_version"`
		MeetingUUID       string `json:"meeting_uuid"`
		StreamID          string `json:"rtms_stream_id"`
		Signature         string `json:"signature"`
		MediaType         int    `json:"media_type"`
		PayloadEncryption bool   `json:"payload_encryption"`
	}{TypeDataHandshakeReq, ProtocolVersion, meetingUUID, streamID, signature, MediaTypeTranscript, false}
}

// KeepAliveResponse echoes the timestamp of a KEEP_ALIVE_REQ.
func KeepAliveResponse(timestamp int64) any {
	return struct {
		Type      int   `json:"msg_type"`
		Timestamp int64 `json:"timestamp"`
	}{TypeKeepAliveResp, timestamp}
}

// StreamStateActive reports the media stream live over the signaling channel.
func StreamStateActive(streamID string) any {
	return struct {
		Type     int    `json:"msg_type"`
		StreamID string `json:"rtms_stream_id"`
	}{TypeStreamStateUpdate, streamID}
}
