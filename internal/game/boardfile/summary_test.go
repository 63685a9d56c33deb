package boardfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSummarize(t *testing.T) {
	def, err := ParseString(validBoard)
	require.NoError(t, err)
	def.Rooms["Study"].SetWeapon(def.Weapons["Rope"])

	s := Summarize(def)
	assert.Equal(t, 10, s.Width)
	assert.Equal(t, 5, s.Height)
	assert.Equal(t, 36, s.Corridors)
	require.Len(t, s.Rooms, 2)

	kitchen := s.Rooms[0]
	assert.Equal(t, "Kitchen", kitchen.Name)
	assert.Equal(t, "K", kitchen.ID)
	assert.Equal(t, []int{0, 0}, kitchen.Box.Min)
	assert.Equal(t, []int{3, 2}, kitchen.Box.Max)
	assert.Equal(t, []float64{2, 1.5}, kitchen.Center)
	assert.Equal(t, "Study", kitchen.Passage)
	require.Len(t, kitchen.Doors, 2)
	assert.Equal(t, "vertical", kitchen.Doors[0].Orientation)
	assert.Equal(t, []int{4, 1}, kitchen.Doors[0].Beside)
	assert.Equal(t, "horizontal", kitchen.Doors[1].Orientation)

	assert.Equal(t, "Rope", s.Rooms[1].Weapon)
	assert.Empty(t, kitchen.Weapon)

	require.Len(t, s.Suspects, 2)
	assert.Equal(t, "m", s.Suspects[0].ID)
	assert.Equal(t, []int{1, 4}, s.Suspects[0].Start)
	assert.Equal(t, []string{"Lead Pipe", "Rope"}, s.Weapons)
}

func TestWriteSummary(t *testing.T) {
	def, err := ParseString(validBoard)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, def))
	assert.Contains(t, buf.String(), "bounding_box:")
	assert.Contains(t, buf.String(), "at: [3, 1]")

	var back Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, Summarize(def), back)
}
