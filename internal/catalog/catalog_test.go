package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/gof-patterns/internal/config"
	"github.com/shinji-kodama/gof-patterns/internal/model"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/abstractfactory"
)

// TestDefault_RegistersEveryPattern verifies the built-in table: 23 unique,
// valid entries split across the three GoF families.
func TestDefault_RegistersEveryPattern(t *testing.T) {
	c := Default()
	entries := c.Entries()
	require.Len(t, entries, 23)

	counts := map[model.Category]int{}
	for _, e := range entries {
		require.NoError(t, e.Validate())
		counts[e.Category]++
	}
	assert.Equal(t, 5, counts[model.CategoryCreational])
	assert.Equal(t, 7, counts[model.CategoryStructural])
	assert.Equal(t, 11, counts[model.CategoryBehavioral])
}

func TestList(t *testing.T) {
	c := Default()

	t.Run("all categories sorted by name", func(t *testing.T) {
		infos := c.List("")
		require.Len(t, infos, 23)
		for i := 1; i < len(infos); i++ {
			assert.Less(t, infos[i-1].Name, infos[i].Name)
		}
	})

	t.Run("single category", func(t *testing.T) {
		var names []string
		for _, info := range c.List(model.CategoryCreational) {
			names = append(names, info.Name)
		}
		assert.Equal(t, []string{"abstract-factory", "builder", "factory", "prototype", "singleton"}, names)
	})
}

func TestLookup_NotFound(t *testing.T) {
	_, err := Default().Lookup("monad")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"monad"`)
}

func TestRegister_Rejects(t *testing.T) {
	noop := func(io.Writer, config.Settings) error { return nil }
	info := model.PatternInfo{Name: "null-object", Title: "Null Object", Category: model.CategoryBehavioral}

	c := New()
	require.NoError(t, c.Register(Entry{PatternInfo: info, Run: noop}))

	t.Run("duplicate name", func(t *testing.T) {
		err := c.Register(Entry{PatternInfo: info, Run: noop})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("nil run", func(t *testing.T) {
		other := info
		other.Name = "monostate"
		assert.Error(t, c.Register(Entry{PatternInfo: other}))
	})

	t.Run("invalid metadata", func(t *testing.T) {
		bad := info
		bad.Name = "Bad Name"
		assert.Error(t, c.Register(Entry{PatternInfo: bad, Run: noop}))
	})
}

// TestRun_Golden compares every deterministic demo against its golden file
// under testdata/, using the default settings.
func TestRun_Golden(t *testing.T) {
	c := Default()
	for _, e := range c.Entries() {
		if e.Name == "bridge" {
			// Output depends on the seeded random source; covered below.
			continue
		}
		t.Run(e.Name, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", e.Name+".golden"))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, c.Run(&buf, e.Name, config.Default()))

			if diff := cmp.Diff(string(want), buf.String()); diff != "" {
				t.Errorf("%s output mismatch (-want +got):\n%s", e.Name, diff)
			}
		})
	}
}

// TestRun_BridgeIsSeeded verifies that equal seeds replay the same output
// and that the output keeps the two-remote shape.
func TestRun_BridgeIsSeeded(t *testing.T) {
	c := Default()
	s := config.Default()
	s.Seed = 2024

	var first, second bytes.Buffer
	require.NoError(t, c.Run(&first, "bridge", s))
	require.NoError(t, c.Run(&second, "bridge", s))
	assert.Equal(t, first.String(), second.String())

	lines := strings.Split(strings.TrimSuffix(first.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Toggling power...", lines[0])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "Toggling power...", lines[5])
	assert.Equal(t, "Muting the device", lines[8])
	assert.Equal(t, "Radio volume set to 0", lines[9])
}

func TestRun_UsesSettings(t *testing.T) {
	c := Default()
	s := config.Default()
	s.Platform = "mac"
	s.Movie = "Alien"

	var buf bytes.Buffer
	require.NoError(t, c.Run(&buf, "abstract-factory", s))
	assert.Equal(t, "Rendering Mac-style Button\nRendering Mac-style Checkbox\n", buf.String())

	buf.Reset()
	require.NoError(t, c.Run(&buf, "facade", s))
	assert.Contains(t, buf.String(), "Playing movie: Alien\n")
}

// TestRun_WrapsDemoErrors verifies that demo failures carry the pattern name
// and keep the underlying sentinel reachable.
func TestRun_WrapsDemoErrors(t *testing.T) {
	s := config.Default()
	s.Platform = "beos"

	err := Default().Run(io.Discard, "abstract-factory", s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, abstractfactory.ErrUnknownPlatform))
	assert.True(t, strings.HasPrefix(err.Error(), "abstract-factory: "))
}
