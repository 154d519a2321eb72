package utils

import (
	"bytes"
	"encoding/base64"
	"etix/src/types"
	"fmt"
	"strconv"
	"strings"

	"github.com/yeqown/go-qrcode"
)

// QR payload grammar: event:<eventId>|ticket:<ticketId>. The event segment
// guards against a ticket code being replayed against another event.

func BuildQRPayload(eventId uint, ticketId uint) string {
	return fmt.Sprintf("event:%d|ticket:%d", eventId, ticketId)
}

func ParseQRPayload(payload string) (eventId uint, ticketId uint, err error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 2 {
		return 0, 0, types.ErrInvalidQRFormat
	}
	rawEvent, ok := strings.CutPrefix(parts[0], "event:")
	if !ok {
		return 0, 0, types.ErrInvalidQRFormat
	}
	rawTicket, ok := strings.CutPrefix(parts[1], "ticket:")
	if !ok {
		return 0, 0, types.ErrInvalidQRFormat
	}
	eid, err := strconv.ParseUint(rawEvent, 10, 64)
	if err != nil || eid == 0 {
		return 0, 0, types.ErrInvalidQRFormat
	}
	tid, err := strconv.ParseUint(rawTicket, 10, 64)
	if err != nil || tid == 0 {
		return 0, 0, types.ErrInvalidQRFormat
	}
	return uint(eid), uint(tid), nil
}

// EncodeTicketQR renders the payload as a QR image and returns it as a
// self-contained data URI, so clients can display the code without a second
// round trip.
func EncodeTicketQR(payload string) (string, error) {
	qrc, err := qrcode.New(payload)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return fmt.Sprintf("data:image/jpeg;base64,%s", encoded), nil
}
