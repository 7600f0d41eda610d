package bridge

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRandom replays a fixed sequence of values, ignoring n.
type scriptedRandom struct {
	values []int
}

func (s *scriptedRandom) Intn(n int) int {
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func TestDeviceInitialVolume(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 10, NewTV(&buf).Volume())
	assert.Equal(t, 5, NewRadio(&buf).Volume())
	assert.Empty(t, buf.String())
}

func TestRemoteControl_TogglePower(t *testing.T) {
	t.Run("heads powers on", func(t *testing.T) {
		var buf bytes.Buffer
		NewRemoteControl(&buf, NewTV(&buf), &scriptedRandom{values: []int{1}}).TogglePower()
		assert.Equal(t, "Toggling power...\nTV is now ON\n", buf.String())
	})

	t.Run("tails powers off", func(t *testing.T) {
		var buf bytes.Buffer
		NewRemoteControl(&buf, NewRadio(&buf), &scriptedRandom{values: []int{0}}).TogglePower()
		assert.Equal(t, "Toggling power...\nRadio is now OFF\n", buf.String())
	})
}

// TestRemoteControl_VolumeRanges checks the volume bounds over many seeded draws.
func TestRemoteControl_VolumeRanges(t *testing.T) {
	var buf bytes.Buffer
	tv := NewTV(&buf)
	remote := NewRemoteControl(&buf, tv, rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		remote.VolumeUp()
		require.GreaterOrEqual(t, tv.Volume(), 11)
		require.LessOrEqual(t, tv.Volume(), 20)

		remote.VolumeDown()
		require.GreaterOrEqual(t, tv.Volume(), 0)
		require.LessOrEqual(t, tv.Volume(), 10)
	}
}

func TestAdvancedRemoteControl_Mute(t *testing.T) {
	var buf bytes.Buffer
	radio := NewRadio(&buf)
	NewAdvancedRemoteControl(&buf, radio, &scriptedRandom{}).Mute()

	assert.Equal(t, 0, radio.Volume())
	assert.Equal(t, "Muting the device\nRadio volume set to 0\n", buf.String())
}

func TestDemo(t *testing.T) {
	// power on, up → 11+4, down → 3, power off, up → 11+9
	rnd := &scriptedRandom{values: []int{1, 4, 3, 0, 9}}

	var buf bytes.Buffer
	require.NoError(t, Demo(&buf, rnd))

	want := "Toggling power...\n" +
		"TV is now ON\n" +
		"TV volume set to 15\n" +
		"TV volume set to 3\n" +
		"\n" +
		"Toggling power...\n" +
		"Radio is now OFF\n" +
		"Radio volume set to 20\n" +
		"Muting the device\n" +
		"Radio volume set to 0\n"
	assert.Equal(t, want, buf.String())
}
