package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Save prints the estimate and writes the plot file.
func TestRun_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultOutput)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-out", path}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Estimated polynomial value at x = 1200 is 2.577429")
	assert.Contains(t, stdout.String(), "Plot saved as '"+path+"'")

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// TestRun_Stream writes PNG bytes to stdout when -save=false.
func TestRun_Stream(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-save=false", "-x", "900"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("\x89PNG")))
	assert.Contains(t, stderr.String(), "estimate")
}

// TestRun_NonFiniteX rejects an evaluation point that is not a finite number.
func TestRun_NonFiniteX(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		t.Run(v, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{"-x", v, "-out", filepath.Join(t.TempDir(), defaultOutput)}, &stdout, &stderr)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr.String(), "must be finite")
			assert.Empty(t, stdout.String())
		})
	}
}
