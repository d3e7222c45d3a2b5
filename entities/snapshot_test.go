package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedTheatre(t *testing.T) *Theatre {
	t.Helper()
	th, err := NewTheatre("Harry Potter 12: Legend of the Scar", 3)
	require.NoError(t, err)
	require.True(t, th.BookSeat(1, &Customer{Name: "Ada", Code: 12345}))
	require.True(t, th.BookSeat(3, &Customer{Name: "Lin", Code: 54321}))
	return th
}

func TestTheatre_Snapshot(t *testing.T) {
	s := mixedTheatre(t).Snapshot()

	assert.Equal(t, "Harry Potter 12: Legend of the Scar", s.Movie)
	assert.Equal(t, 3, s.NumSeats)
	assert.Equal(t, []SeatSlot{
		{Seat: 1, State: SlotOccupied, Customer: &Customer{Name: "Ada", Code: 12345}},
		{Seat: 2, State: SlotEmpty},
		{Seat: 3, State: SlotOccupied, Customer: &Customer{Name: "Lin", Code: 54321}},
	}, s.Seats)
}

func TestTheatre_SnapshotDoesNotAlias(t *testing.T) {
	th := mixedTheatre(t)
	s := th.Snapshot()
	s.Seats[0].Customer.Name = "Changed"

	c, _ := th.Seat(1)
	assert.Equal(t, "Ada", c.Name)
}

func TestRestoreTheatre_RoundTrip(t *testing.T) {
	original := mixedTheatre(t)

	restored, err := RestoreTheatre(original.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, original.Movie, restored.Movie)
	assert.Equal(t, original.NumSeats(), restored.NumSeats())
	assert.Equal(t, original.Report(), restored.Report())
	assert.False(t, restored.BookSeat(1, &Customer{Name: "Other", Code: 11111}))
	assert.True(t, restored.BookSeat(2, &Customer{Name: "Other", Code: 11111}))
}

func TestRestoreTheatre_Corrupt(t *testing.T) {
	ada := &Customer{Name: "Ada", Code: 12345}
	tests := []struct {
		name     string
		snapshot TheatreSnapshot
	}{
		{
			name:     "zero seats",
			snapshot: TheatreSnapshot{Movie: "M", NumSeats: 0},
		},
		{
			name: "slot count mismatch",
			snapshot: TheatreSnapshot{Movie: "M", NumSeats: 2, Seats: []SeatSlot{
				{Seat: 1, State: SlotEmpty},
			}},
		},
		{
			name: "seats out of order",
			snapshot: TheatreSnapshot{Movie: "M", NumSeats: 2, Seats: []SeatSlot{
				{Seat: 2, State: SlotEmpty},
				{Seat: 1, State: SlotEmpty},
			}},
		},
		{
			name: "occupied without customer",
			snapshot: TheatreSnapshot{Movie: "M", NumSeats: 1, Seats: []SeatSlot{
				{Seat: 1, State: SlotOccupied},
			}},
		},
		{
			name: "empty with customer",
			snapshot: TheatreSnapshot{Movie: "M", NumSeats: 1, Seats: []SeatSlot{
				{Seat: 1, State: SlotEmpty, Customer: ada},
			}},
		},
		{
			name: "unknown state",
			snapshot: TheatreSnapshot{Movie: "M", NumSeats: 1, Seats: []SeatSlot{
				{Seat: 1, State: "reserved"},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th, err := RestoreTheatre(tc.snapshot)
			assert.Nil(t, th)
			assert.True(t, errors.Is(err, ErrCorruptSnapshot), "got %v", err)
		})
	}
}
