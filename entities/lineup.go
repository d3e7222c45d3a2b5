package entities

import (
	"fmt"

	"github.com/paologalligit/showtime/constant"
)

// Lineup is the fixed set of theatres for one run. It is built once at
// startup and handed to the menu and to persistence.
type Lineup struct {
	theatres []*Theatre
}

func NewLineup(seeds []constant.TheatreSeed) (*Lineup, error) {
	theatres := make([]*Theatre, 0, len(seeds))
	for _, seed := range seeds {
		t, err := NewTheatre(seed.Movie, seed.Seats)
		if err != nil {
			return nil, err
		}
		theatres = append(theatres, t)
	}
	return &Lineup{theatres: theatres}, nil
}

// Select resolves a 1-based menu choice.
func (l *Lineup) Select(choice int) (*Theatre, error) {
	if choice < 1 || choice > len(l.theatres) {
		return nil, fmt.Errorf("choice %d of %d: %w", choice, len(l.theatres), ErrTheatreNotFound)
	}
	return l.theatres[choice-1], nil
}

func (l *Lineup) Theatres() []*Theatre {
	return l.theatres
}

func (l *Lineup) Len() int {
	return len(l.theatres)
}
