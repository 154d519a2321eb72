package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONBRoundTrip(t *testing.T) {
	in := JSONB{"event_title": "Summer Gala", "ticket_ids": []any{float64(1), float64(2)}}

	value, err := in.Value()
	assert.Nil(t, err)

	var out JSONB
	err = out.Scan([]byte(value.(string)))
	assert.Nil(t, err)
	assert.Equal(t, in, out)
}

func TestJSONBScanRejectsNonBytes(t *testing.T) {
	var out JSONB
	assert.NotNil(t, out.Scan(42))
}
