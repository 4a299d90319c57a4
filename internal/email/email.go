package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/kafka"
)

// Sender writes notification emails to an output stream instead of an SMTP
// relay.
type Sender struct {
	from string
	out  io.Writer
}

func NewSender(from string) *Sender {
	return &Sender{from: from, out: os.Stdout}
}

func NewSenderTo(from string, out io.Writer) *Sender {
	return &Sender{from: from, out: out}
}

func (s *Sender) SendFlightStatus(ctx context.Context, event kafka.FlightStatusChanged, p domain.Passenger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seat := "unassigned"
	if p.SeatNumber != nil {
		seat = *p.SeatNumber
	}
	_, err := fmt.Fprintf(s.out, "send email from %s to %s: flight %s is now %s (was %s), seat %s\n",
		s.from, p.Email, event.FlightNumber, event.NewStatus, event.OldStatus, seat)
	return err
}
