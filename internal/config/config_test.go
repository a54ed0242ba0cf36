package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	require.Equal(t, float32(6), opts.MinDragDistance)
	require.False(t, opts.DisableTouchDrag, "touch drags are on by default")
	require.False(t, opts.DisableEdgeAutoScroll, "edge auto-scroll is on by default")
	require.Equal(t, float32(80), opts.AutoScrollSpeed)
	require.Equal(t, float32(0.12), opts.EdgeZoneFraction)
	require.Equal(t, float32(0.25), opts.MinAutoScrollFactor)
	require.Equal(t, "jump", opts.AutoScrollMode)
	require.Equal(t, 120*time.Millisecond, opts.AnimationDuration())
}

func TestLoadFromPathOverridesPartially(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rubberband.toml")
	content := `
min_drag_distance = 10.0
disable_edge_auto_scroll = true
auto_scroll_mode = "animate"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := NewService().LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, float32(10), opts.MinDragDistance)
	require.True(t, opts.DisableEdgeAutoScroll, "an explicit disable must stick")
	require.Equal(t, "animate", opts.AutoScrollMode)
	require.Equal(t, float32(80), opts.AutoScrollSpeed, "absent keys keep defaults")
	require.False(t, opts.DisableTouchDrag, "absent keys keep defaults")
}

func TestLoadFromPathMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromPathBadToml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("min_drag_distance = ["), 0644))

	_, err := NewService().LoadFromPath(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sub", "rubberband.toml")
	svc := NewService()

	want := DefaultOptions()
	want.AutoScrollSpeed = 120
	want.AutoScrollMode = "animate"
	require.NoError(t, svc.SaveToPath(want, path))

	got, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNormalizedFixesInvalidValues(t *testing.T) {
	t.Parallel()

	opts := Options{AutoScrollMode: "teleport", MinDragDistance: -1}.Normalized()
	require.Equal(t, "jump", opts.AutoScrollMode)
	require.Equal(t, float32(6), opts.MinDragDistance)
}

func TestPartialLiteralKeepsFeaturesEnabled(t *testing.T) {
	t.Parallel()

	// A host that only sets one field must not silently lose the
	// default-on behaviors.
	opts := Options{MinDragDistance: 2}.Normalized()
	require.False(t, opts.DisableTouchDrag, "touch drags stay enabled in a partial literal")
	require.False(t, opts.DisableEdgeAutoScroll, "edge auto-scroll stays enabled in a partial literal")
	require.Equal(t, float32(2), opts.MinDragDistance)
	require.Equal(t, float32(80), opts.AutoScrollSpeed)
}
