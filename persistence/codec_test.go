package persistence

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/paologalligit/showtime/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTheatre(t *testing.T) *entities.Theatre {
	t.Helper()
	th, err := entities.NewTheatre("Harry Potter 12: Legend of the Scar", 3)
	require.NoError(t, err)
	require.True(t, th.BookSeat(1, &entities.Customer{Name: "Ada", Code: 12345}))
	require.True(t, th.BookSeat(3, &entities.Customer{Name: "Lin", Code: 54321}))
	return th
}

func assertSameTheatre(t *testing.T, expected, actual *entities.Theatre) {
	t.Helper()
	assert.Equal(t, expected.Movie, actual.Movie)
	assert.Equal(t, expected.NumSeats(), actual.NumSeats())
	assert.Equal(t, expected.Report(), actual.Report())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sampleTheatre(t)
	savedAt := time.Date(2022, 2, 3, 10, 0, 0, 0, time.UTC)

	data, err := Encode(original, savedAt)
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	assertSameTheatre(t, original, restored)
}

func TestEncode_TaggedSlots(t *testing.T) {
	savedAt := time.Date(2022, 2, 3, 10, 0, 0, 0, time.UTC)
	data, err := Encode(sampleTheatre(t), savedAt)
	require.NoError(t, err)

	var doc struct {
		Version  int       `json:"version"`
		Movie    string    `json:"movie"`
		NumSeats int       `json:"numSeats"`
		SavedAt  time.Time `json:"savedAt"`
		Seats    []map[string]any
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "Harry Potter 12: Legend of the Scar", doc.Movie)
	assert.Equal(t, 3, doc.NumSeats)
	assert.True(t, savedAt.Equal(doc.SavedAt))
	require.Len(t, doc.Seats, 3)
	assert.Equal(t, "occupied", doc.Seats[0]["state"])
	assert.Equal(t, "empty", doc.Seats[1]["state"])
	assert.NotContains(t, doc.Seats[1], "customer")
	assert.Equal(t, map[string]any{"name": "Lin", "code": float64(54321)}, doc.Seats[2]["customer"])
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "\xac\xed\x00\x05"},
		{name: "unknown version", data: `{"version":7,"movie":"M","numSeats":1,"seats":[{"seat":1,"state":"empty"}]}`},
		{name: "missing slots", data: `{"version":1,"movie":"M","numSeats":2,"seats":[{"seat":1,"state":"empty"}]}`},
		{name: "occupied without customer", data: `{"version":1,"movie":"M","numSeats":1,"seats":[{"seat":1,"state":"occupied"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th, err := Decode([]byte(tc.data))
			assert.Nil(t, th)
			assert.True(t, errors.Is(err, ErrCorruptArtifact), "got %v", err)
		})
	}
}

func TestArtifactKey(t *testing.T) {
	tests := []struct {
		movie    string
		expected string
	}{
		{movie: "Harry Potter 12: Legend of the Scar", expected: "harry-potter-12-legend-of-the-scar"},
		{movie: "Encanto 3: No More Powers", expected: "encanto-3-no-more-powers"},
		{movie: "Matrix 24: Resuscitated", expected: "matrix-24-resuscitated"},
	}

	for _, tc := range tests {
		t.Run(tc.movie, func(t *testing.T) {
			key := ArtifactKey(tc.movie)
			assert.Equal(t, tc.expected, key)
			assert.Equal(t, key, ArtifactKey(key), "key must be stable when passed back in")
		})
	}
}
