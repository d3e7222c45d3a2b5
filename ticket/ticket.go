package ticket

import (
	"fmt"
	"strings"

	"github.com/paologalligit/showtime/entities"
	"github.com/skip2/go-qrcode"
)

func payload(movie string, seat int, customer *entities.Customer) string {
	return fmt.Sprintf("SHOWTIME\nmovie=%s\nseat=%d\nname=%s\ncode=%d", movie, seat, customer.Name, customer.Code)
}

// Render draws a terminal ticket: a QR code followed by a caption line.
func Render(movie string, seat int, customer *entities.Customer) (string, error) {
	if customer == nil {
		return "", fmt.Errorf("ticket for %q seat %d: no customer", movie, seat)
	}
	qr, err := qrcode.New(payload(movie, seat, customer), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("error encoding ticket: %w", err)
	}

	var b strings.Builder
	b.WriteString(qr.ToSmallString(false))
	fmt.Fprintf(&b, "%s | Seat %02d | %s, %d\n", movie, seat, customer.Name, customer.Code)
	return b.String(), nil
}
