package entities

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidSeatCount = errors.New("seat count must be positive")
	ErrTheatreNotFound  = errors.New("theatre not found")
	ErrCorruptSnapshot  = errors.New("corrupt theatre snapshot")
)

// Theatre owns a fixed row of seats. Seat numbers are 1-based on every
// exported method. The seat count is fixed at construction.
type Theatre struct {
	Movie string
	seats []*Customer
}

func NewTheatre(movie string, numSeats int) (*Theatre, error) {
	if numSeats <= 0 {
		return nil, fmt.Errorf("theatre %q: %w", movie, ErrInvalidSeatCount)
	}
	return &Theatre{
		Movie: movie,
		seats: make([]*Customer, numSeats),
	}, nil
}

func (t *Theatre) NumSeats() int {
	return len(t.seats)
}

// BookSeat assigns the seat to the customer if the seat exists and is free.
// A false return leaves the theatre untouched.
func (t *Theatre) BookSeat(seatNumber int, customer *Customer) bool {
	if customer == nil {
		return false
	}
	if seatNumber < 1 || seatNumber > len(t.seats) {
		return false
	}
	if t.seats[seatNumber-1] != nil {
		return false
	}
	t.seats[seatNumber-1] = customer
	return true
}

func (t *Theatre) IsFull() bool {
	for _, c := range t.seats {
		if c == nil {
			return false
		}
	}
	return true
}

// Available counts the empty seats.
func (t *Theatre) Available() int {
	free := 0
	for _, c := range t.seats {
		if c == nil {
			free++
		}
	}
	return free
}

// Seat returns the occupant of a seat, or false when the seat is empty or
// does not exist.
func (t *Theatre) Seat(seatNumber int) (*Customer, bool) {
	if seatNumber < 1 || seatNumber > len(t.seats) {
		return nil, false
	}
	c := t.seats[seatNumber-1]
	return c, c != nil
}

type ReportLine struct {
	Seat     int
	Occupant *Customer
}

func (l ReportLine) Empty() bool {
	return l.Occupant == nil
}

func (l ReportLine) String() string {
	if l.Occupant == nil {
		return fmt.Sprintf("Seat %02d: Empty", l.Seat)
	}
	return fmt.Sprintf("Seat %02d: %s, %d", l.Seat, l.Occupant.Name, l.Occupant.Code)
}

// Report lists every seat in order, one line per seat.
func (t *Theatre) Report() []ReportLine {
	lines := make([]ReportLine, 0, len(t.seats))
	for i, c := range t.seats {
		lines = append(lines, ReportLine{Seat: i + 1, Occupant: c})
	}
	return lines
}

func (t *Theatre) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Report for %s\n\n", t.Movie); err != nil {
		return err
	}
	for _, line := range t.Report() {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
