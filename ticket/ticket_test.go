package ticket

import (
	"strings"
	"testing"

	"github.com/paologalligit/showtime/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	got := payload("Encanto 3: No More Powers", 7, &entities.Customer{Name: "Ada", Code: 12345})
	assert.Equal(t, "SHOWTIME\nmovie=Encanto 3: No More Powers\nseat=7\nname=Ada\ncode=12345", got)
}

func TestRender(t *testing.T) {
	out, err := Render("Encanto 3: No More Powers", 7, &entities.Customer{Name: "Ada", Code: 12345})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "Encanto 3: No More Powers | Seat 07 | Ada, 12345", lines[len(lines)-1])
	assert.True(t, strings.ContainsAny(lines[0], "█▀▄"), "first line should be QR blocks")
}

func TestRender_NoCustomer(t *testing.T) {
	_, err := Render("Encanto 3: No More Powers", 7, nil)
	assert.Error(t, err)
}
