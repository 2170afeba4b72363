// Package auth computes the HMAC credentials used by the RTMS handshakes and
// the webhook URL-validation challenge.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// Sign returns the hex-encoded HMAC-SHA256 over "clientID,meetingUUID,streamID"
// keyed by secret. Each handshake computes its own signature; the result is
// never cached or shared between the signaling and media channels.
func Sign(clientID, meetingUUID, streamID, secret string) (string, error) {
	if clientID == "" || meetingUUID == "" || streamID == "" || secret == "" {
		return "", errors.New("auth: missing signature input")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s,%s,%s", clientID, meetingUUID, streamID)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// ChallengeResponse hashes a webhook validation token with the verification
// secret. The verification secret is distinct from the handshake secret.
func ChallengeResponse(plainToken, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(plainToken))
	return hex.EncodeToString(mac.Sum(nil))
}
