// Package webhook verifies delivery signatures on the consumer side.
// The delivery provider signs every message with the endpoint secret
// returned at webhook creation; receivers use this package to check
// authenticity and reject replays.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// secretPrefix marks endpoint secrets issued by the delivery provider
	secretPrefix = "whsec_"

	// signatureVersion is the only scheme currently emitted
	signatureVersion = "v1"

	// defaultTolerance bounds the accepted clock skew between signer and
	// receiver to limit the replay window
	defaultTolerance = 5 * time.Minute
)

// Delivery headers set by the provider on every webhook request
const (
	HeaderMessageID = "webhook-id"
	HeaderTimestamp = "webhook-timestamp"
	HeaderSignature = "webhook-signature"
)

var (
	ErrMissingHeaders   = errors.New("missing signature headers")
	ErrInvalidTimestamp = errors.New("invalid signature timestamp")
	ErrTimestampExpired = errors.New("signature timestamp outside tolerance")
	ErrNoMatch          = errors.New("no matching signature")
)

// Verifier checks webhook delivery signatures against an endpoint secret
type Verifier struct {
	key       []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier creates a verifier from an endpoint secret as returned by
// the management API. The whsec_ prefix is optional.
func NewVerifier(secret string) (*Verifier, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint secret: %w", err)
	}

	return &Verifier{
		key:       key,
		tolerance: defaultTolerance,
		now:       time.Now,
	}, nil
}

// Sign computes the signature for a message. The signed content is
// "{msgID}.{timestamp}.{payload}" so receivers can verify identity,
// freshness, and integrity in one check.
func (v *Verifier) Sign(msgID string, timestamp time.Time, payload []byte) string {
	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%d.", msgID, timestamp.Unix())
	mac.Write(payload)
	return signatureVersion + "," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks the signature headers of a received delivery against
// the payload. The signature header may carry several space-separated
// signatures (old and new secret during rotation); one match suffices.
func (v *Verifier) Verify(payload []byte, headers http.Header) error {
	msgID := headers.Get(HeaderMessageID)
	rawTimestamp := headers.Get(HeaderTimestamp)
	rawSignatures := headers.Get(HeaderSignature)
	if msgID == "" || rawTimestamp == "" || rawSignatures == "" {
		return ErrMissingHeaders
	}

	unix, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}
	timestamp := time.Unix(unix, 0)

	if skew := v.now().Sub(timestamp); skew > v.tolerance || skew < -v.tolerance {
		return ErrTimestampExpired
	}

	expected := v.Sign(msgID, timestamp, payload)
	for _, candidate := range strings.Fields(rawSignatures) {
		if !strings.HasPrefix(candidate, signatureVersion+",") {
			continue
		}
		if hmac.Equal([]byte(candidate), []byte(expected)) {
			return nil
		}
	}

	return ErrNoMatch
}
