package main

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jamiealquiza/tachymeter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/delaneyj/tagparty/tags"
	"github.com/delaneyj/tagparty/tracked"
)

func newTestGraph(t *testing.T, w, h int) *graph {
	sys := tracked.NewSystem(tracked.WithClock(tags.NewClock()))
	g, err := newGraph(sys, w, h)
	require.NoError(t, err)
	return g
}

func TestGraphRender(t *testing.T) {
	g := newTestGraph(t, 2, 3)
	assert.Len(t, g.nodes, 6)

	values, err := g.render()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, values)

	g.src.value.Set(10)
	values, err = g.render()
	require.NoError(t, err)
	assert.Equal(t, []int{13, 13}, values)
}

func TestGraphWithoutChains(t *testing.T) {
	g := newTestGraph(t, 0, 3)
	values, err := g.render()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, values)
}

func TestScenarios(t *testing.T) {
	tach := tachymeter.New(&tachymeter.Config{Size: 5})
	values, err := validateOnly(newTestGraph(t, 2, 3), 5, tach)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, values)
	assert.Equal(t, 5, tach.Calc().Count)

	tach = tachymeter.New(&tachymeter.Config{Size: 5})
	values, err = invalidateAndRender(newTestGraph(t, 2, 3), 5, tach)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 9}, values)

	tach = tachymeter.New(&tachymeter.Config{Size: 5})
	values, err = memoHit(newTestGraph(t, 2, 3), 5, tach)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, values)
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, checksum([]int{1, 2}), checksum([]int{1, 2}))
	assert.NotEqual(t, checksum([]int{1, 2}), checksum([]int{12}))
}

func TestRunAllAndRender(t *testing.T) {
	results, err := runAll(zap.NewNop(), []int{1, 2}, []int{2}, 3)
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.Equal(t, "validate: 1 * 2", results[0].name)
	assert.Equal(t, "invalidate+render: 2 * 2", results[3].name)

	var pretty, ascii bytes.Buffer
	renderPretty(&pretty, results)
	renderASCII(&ascii, results)
	assert.Contains(t, pretty.String(), "validate: 2 * 2")
	assert.Contains(t, ascii.String(), "invalidate+render: 1 * 2")
	assert.Contains(t, ascii.String(), "memo hit: 2 * 2")

	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, writeHTML(path, results))
	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "invalidate+render: 2 * 2")
}

func TestSizeFlags(t *testing.T) {
	assert.NoError(t, validateSizes([]int64{0, 1, 10}))
	assert.ErrorContains(t, validateSizes([]int64{1, -1}), "negative")
	assert.Equal(t, []int{1, 10}, sizes([]int64{1, 10}))

	var widths, heights []int
	cmd := newCommand()
	cmd.Action = func(_ context.Context, cmd *cli.Command) error {
		widths = sizes(cmd.IntSlice(widthKey))
		heights = sizes(cmd.IntSlice(heightKey))
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"benchmark", "--width", "2,3"}))
	assert.Equal(t, []int{2, 3}, widths)
	assert.Equal(t, []int{1, 10, 100}, heights)

	err := newCommand().Run(context.Background(), []string{"benchmark", "--height=-1"})
	assert.ErrorContains(t, err, "size -1 is negative")
}

func TestErrorsKeepTheirCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.html")
	err := writeHTML(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating "+path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestGetLogger(t *testing.T) {
	logger, err := getLogger(logLevelNone)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))

	logger, err = getLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = getLogger("loud")
	assert.Error(t, err)
}
