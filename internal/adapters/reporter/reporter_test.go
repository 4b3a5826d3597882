package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.refold.dev/refold/internal/adapters/reporter"
	"go.trai.ch/zerr"
)

func TestCollectMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "single standard error",
			err:  errors.New("simple error"),
			want: []string{"simple error"},
		},
		{
			name: "zerr single error",
			err:  zerr.New("zerr error"),
			want: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			want: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reporter.CollectMessages(tt.err))
		})
	}
}

func TestFormatErrorChain(t *testing.T) {
	got := reporter.FormatErrorChain([]string{"outer", "middle", "inner"})

	assert.Contains(t, got, "Error: outer")
	assert.Contains(t, got, "Caused by:")
	assert.Contains(t, got, "middle")
	assert.Contains(t, got, "inner")
}

func TestConsole_Channels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	c := reporter.NewWithWriter(buf)

	c.Output("evaluated project")
	c.Warn("graph skipped")
	c.Error(zerr.New("evaluation failed"))

	out := buf.String()
	assert.Contains(t, out, "evaluated project")
	assert.Contains(t, out, "graph skipped")
	assert.Contains(t, out, "Error: evaluation failed")
}

func TestConsole_VerboseFiltered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	c := reporter.NewWithWriter(buf)

	c.Verbose("hidden")
	assert.Empty(t, buf.String())

	c.SetVerbose(true)
	c.Verbose("visible")
	assert.Contains(t, buf.String(), "visible")

	c.SetVerbose(false)
	c.Verbose("hidden again")
	assert.NotContains(t, buf.String(), "hidden again")
}

func TestConsole_NilError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	c := reporter.NewWithWriter(buf)

	c.Error(nil)
	assert.Empty(t, buf.String())
}
