package hexgrid

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDisks(t *testing.T) {
	origins := parseCells(t, "8928308280fffff", "89283082993ffff", "85283473fffffff")

	for _, workers := range []int{1, 4} {
		got, err := GridDisks(context.Background(), origins, 2, DiskChecked, WithConcurrency(workers))
		require.NoError(t, err)
		require.Len(t, got, len(origins))
		for i, o := range origins {
			want, err := GridDisk(o, 2, DiskChecked)
			require.NoError(t, err)
			assert.Equal(t, want, got[i], "origin %s with %d workers", o, workers)
		}
	}
}

func TestGridDisksErrors(t *testing.T) {
	origins := parseCells(t, "8928308280fffff", "821c07fffffffff")

	_, err := GridDisks(context.Background(), origins, 1, DiskChecked)
	assert.ErrorIs(t, err, ErrPentagonDistortion)

	got, err := GridDisks(context.Background(), origins, 1, DiskUnchecked)
	require.NoError(t, err)
	assert.Len(t, got[1], 6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = GridDisks(ctx, origins, 1, DiskUnchecked)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPolygonsToCells(t *testing.T) {
	polys := []GeoPolygon{
		{Outer: box(37.70, -122.52, 37.82, -122.35)},
		{Outer: box(-0.5, 179.5, 0.5, -179.5)},
	}
	got, err := PolygonsToCells(context.Background(), polys, 6, WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, p := range polys {
		want, err := PolygonToCells(p, 6, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, got[i])
	}

	_, err = PolygonsToCells(context.Background(), append(polys, GeoPolygon{}), 6)
	assert.ErrorIs(t, err, ErrInvalidPolygon)
}

func TestBatchLogging(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelDebug)

	_, err := GridDisks(context.Background(), parseCells(t, "8928308280fffff"), 1, DiskChecked, WithLogger(log))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"op":"GridDisks"`)
	assert.Contains(t, out, `"msg":"batch complete"`)
	assert.Contains(t, out, `"mode":"checked"`)
}

func TestOptions(t *testing.T) {
	cfg := newConfig([]Option{WithConcurrency(0), WithLogger(nil)})
	assert.Equal(t, 1, cfg.Concurrency)
	assert.NotNil(t, cfg.Logger)

	cfg = newConfig(nil)
	assert.Positive(t, cfg.Concurrency)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := parseCells(t, "8928308280fffff")[0]
	NewTextLogger(&buf, slog.LevelInfo).WithOp("test").WithResolution(9).WithCell(c).Info("hello")
	line := buf.String()
	for _, want := range []string{"op=test", "res=9", "cell=8928308280fffff", "msg=hello"} {
		assert.True(t, strings.Contains(line, want), "missing %q in %q", want, line)
	}

	buf.Reset()
	NewTextLogger(&buf, slog.LevelWarn).Info("dropped")
	assert.Zero(t, buf.Len())

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestValidateGrid(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ValidateGrid(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 8)
	for _, l := range lines {
		assert.True(t, strings.HasSuffix(l, ": OK"), l)
	}
}
