package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ComposeReservationMessage builds the free-text inquiry handed to the
// restaurant over WhatsApp. This is a one-way message, not a booking:
// no table is held until staff reply.
func ComposeReservationMessage(name, date, timeSlot string, partySize int, notes string) string {
	var b strings.Builder
	b.WriteString("Hello! I would like to reserve a table.\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Time: %s\n", timeSlot)
	fmt.Fprintf(&b, "Party size: %d", partySize)
	if notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", notes)
	}
	return b.String()
}

// BuildWhatsAppLink returns a wa.me deep link that opens a chat with
// the given phone number and the message pre-filled. Everything except
// digits is stripped from the phone number, since wa.me only accepts
// international numbers without punctuation.
func BuildWhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}
