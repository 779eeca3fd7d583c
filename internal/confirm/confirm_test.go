package confirm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtodo/internal/confirm"
)

func TestGate_Transitions(t *testing.T) {
	t.Parallel()
	g := confirm.New("Clear All Tasks", "Sure?")
	assert.Equal(t, confirm.Closed, g.State())

	// Confirm while closed is a no-op.
	ran := false
	assert.False(t, g.Confirm(func() { ran = true }))
	assert.False(t, ran)

	require.True(t, g.Open())
	assert.False(t, g.Open(), "already open")
	g.Cancel()
	assert.Equal(t, confirm.Closed, g.State())

	g.Open()
	assert.True(t, g.Confirm(func() { ran = true }))
	assert.True(t, ran)
	assert.Equal(t, confirm.Closed, g.State())
}

func TestAsk(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantRan bool
	}{
		{name: "yes", input: "y\n", wantRan: true},
		{name: "yes word mixed case", input: "  YeS \n", wantRan: true},
		{name: "no", input: "n\n", wantRan: false},
		{name: "empty line", input: "\n", wantRan: false},
		{name: "eof", input: "", wantRan: false},
		{name: "yes without newline", input: "yes", wantRan: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := confirm.New("Clear All Tasks", "Remove all tasks?")
			var out bytes.Buffer
			ran := false

			got, err := confirm.Ask(strings.NewReader(tc.input), &out, g, func() { ran = true })
			require.NoError(t, err)
			assert.Equal(t, tc.wantRan, got)
			assert.Equal(t, tc.wantRan, ran)
			assert.False(t, g.IsOpen())
			assert.Equal(t, "Clear All Tasks\nRemove all tasks? [y/N] \n", out.String())
		})
	}
}
