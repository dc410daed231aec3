package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["send"])
}

func TestSend_RequiresFlags(t *testing.T) {
	// Arrange
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"send", "--to", "a@b.com"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	// Act
	err := rootCmd.Execute()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Contains(t, err.Error(), "subject")
}

func TestSend_Flags(t *testing.T) {
	f := sendCmd.Flags()

	for _, name := range []string{"to", "subject", "body", "template-id", "timeout"} {
		assert.NotNil(t, f.Lookup(name), name)
	}
	assert.Equal(t, "30s", f.Lookup("timeout").DefValue)
}
