package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/goldpiece/goldpiece"
	"github.com/milk9111/goldpiece/prefabs"
)

func TestRecordPrintsYaml(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"record", "-x", "96", "-y", "64", "-color", "red"}, &out))

	r, err := goldpiece.UnmarshalRecord(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, goldpiece.Record{Type: goldpiece.RecordType, PosX: 96, PosY: 64, Color: "red"}, r)
}

func TestRecordRejectsUnknownColor(t *testing.T) {
	err := run([]string{"record", "-color", "blue"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, goldpiece.ErrUnknownColor)
}

func TestInspectReadsRecordFile(t *testing.T) {
	var rec bytes.Buffer
	require.NoError(t, run([]string{"record", "-x", "32", "-y", "48", "-color", "red"}, &rec))
	path := filepath.Join(t.TempDir(), "gp.yaml")
	require.NoError(t, os.WriteFile(path, rec.Bytes(), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"inspect", "-f", path}, &out))
	assert.Equal(t, "Red Jewel at 32,48 pays 5 jewels and 100 points\n", out.String())
}

func TestInspectRejectsOtherRecords(t *testing.T) {
	err := inspect(nil, strings.NewReader("type: enemy\nposx: 1\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, goldpiece.ErrNotGoldpiece)

	err = inspect(nil, strings.NewReader("type: [\n"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestUsageErrors(t *testing.T) {
	assert.ErrorIs(t, run(nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{"dance"}, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{"simulate", "-frames", "x"}, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{"simulate", "-frames", "-3"}, &bytes.Buffer{}), errUsage)
}

func TestSimulateWalkingCollects(t *testing.T) {
	t.Cleanup(func() { prefabs.SetDir("prefabs") })

	var out bytes.Buffer
	require.NoError(t, run([]string{"simulate", "-frames", "60", "-walk", "1"}, &out))
	assert.Equal(t, "level=demo.json frames=60 jewels=2 score=10 collected=2 lost=0\n", out.String())
}

func TestSimulateUnknownLevel(t *testing.T) {
	t.Cleanup(func() { prefabs.SetDir("prefabs") })
	assert.Error(t, run([]string{"simulate", "-level", "missing.json"}, &bytes.Buffer{}))
}
