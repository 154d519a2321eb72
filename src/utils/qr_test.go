package utils

import (
	"etix/src/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := BuildQRPayload(42, 1337)
	assert.Equal(t, "event:42|ticket:1337", payload)

	eventId, ticketId, err := ParseQRPayload(payload)
	assert.Nil(t, err)
	assert.Equal(t, uint(42), eventId)
	assert.Equal(t, uint(1337), ticketId)
}

func TestParseQRPayloadMalformed(t *testing.T) {
	malformed := []string{
		"",
		"garbage",
		"event:1",
		"ticket:2|event:1",
		"event:|ticket:2",
		"event:1|ticket:",
		"event:abc|ticket:2",
		"event:1|ticket:xyz",
		"event:0|ticket:2",
		"event:1|ticket:0",
		"event:1|ticket:2|extra:3",
		"event:-1|ticket:2",
	}
	for _, payload := range malformed {
		_, _, err := ParseQRPayload(payload)
		assert.ErrorIs(t, err, types.ErrInvalidQRFormat, "payload: %q", payload)
	}
}

func TestEncodeTicketQR(t *testing.T) {
	uri, err := EncodeTicketQR(BuildQRPayload(1, 2))
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	assert.Greater(t, len(uri), len("data:image/jpeg;base64,"))
}
