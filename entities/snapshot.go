package entities

import (
	"fmt"
	"time"
)

type SlotState string

const (
	SlotEmpty    SlotState = "empty"
	SlotOccupied SlotState = "occupied"
)

// SeatSlot is the persisted form of one seat. Customer is set only when
// State is SlotOccupied.
type SeatSlot struct {
	Seat     int       `json:"seat"`
	State    SlotState `json:"state"`
	Customer *Customer `json:"customer,omitempty"`
}

type TheatreSnapshot struct {
	Version  int        `json:"version"`
	Movie    string     `json:"movie"`
	NumSeats int        `json:"numSeats"`
	Seats    []SeatSlot `json:"seats"`
	SavedAt  time.Time  `json:"savedAt"`
}

// Snapshot copies the full theatre state, empty seats included.
func (t *Theatre) Snapshot() TheatreSnapshot {
	slots := make([]SeatSlot, len(t.seats))
	for i, c := range t.seats {
		slot := SeatSlot{Seat: i + 1, State: SlotEmpty}
		if c != nil {
			slot.State = SlotOccupied
			slot.Customer = &Customer{Name: c.Name, Code: c.Code}
		}
		slots[i] = slot
	}
	return TheatreSnapshot{
		Movie:    t.Movie,
		NumSeats: len(t.seats),
		Seats:    slots,
	}
}

func RestoreTheatre(s TheatreSnapshot) (*Theatre, error) {
	if s.NumSeats <= 0 {
		return nil, fmt.Errorf("%w: seat count %d", ErrCorruptSnapshot, s.NumSeats)
	}
	if len(s.Seats) != s.NumSeats {
		return nil, fmt.Errorf("%w: %d slots for %d seats", ErrCorruptSnapshot, len(s.Seats), s.NumSeats)
	}
	t, err := NewTheatre(s.Movie, s.NumSeats)
	if err != nil {
		return nil, err
	}
	for i, slot := range s.Seats {
		if slot.Seat != i+1 {
			return nil, fmt.Errorf("%w: slot %d holds seat %d", ErrCorruptSnapshot, i+1, slot.Seat)
		}
		switch slot.State {
		case SlotEmpty:
			if slot.Customer != nil {
				return nil, fmt.Errorf("%w: empty seat %d has a customer", ErrCorruptSnapshot, slot.Seat)
			}
		case SlotOccupied:
			if slot.Customer == nil {
				return nil, fmt.Errorf("%w: occupied seat %d has no customer", ErrCorruptSnapshot, slot.Seat)
			}
			t.seats[i] = &Customer{Name: slot.Customer.Name, Code: slot.Customer.Code}
		default:
			return nil, fmt.Errorf("%w: seat %d has state %q", ErrCorruptSnapshot, slot.Seat, slot.State)
		}
	}
	return t, nil
}
