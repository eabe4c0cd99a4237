package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRootCmd(t *testing.T, args ...string) (string, error) {
	log, _ := test.NewNullLogger()
	cmd := newRootCmd(log.WithField("Context", "testing"))
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func TestRootCmdPrintsBreakfastOrder(t *testing.T) {
	output, err := executeRootCmd(t)

	require.NoError(t, err)
	expected := `{"result":[{"channel":"eggs","value":"0"},{"channel":"bacon","value":"3"},` +
		`{"channel":"waffle","value":"1"},{"channel":"toast","value":"2"}],"text":"Breakfast Order"}` + "\n"
	assert.Equal(t, expected, output)
}

func TestRootCmdWithDefinition(t *testing.T) {
	definition := `
sensors:
  - text: disk check
    channels:
      - channel: free
        value: 12.5
        unit: Percent
        limitMinWarning: 15
        limitMode: true
  - error: true
    text: volume missing
`
	path := filepath.Join(t.TempDir(), "sensor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0600))

	output, err := executeRootCmd(t, "--definition", path)

	require.NoError(t, err)
	expected := `{"result":[{"channel":"free","value":"12.5","Unit":"4","limitminwarning":15,"limitmode":"1"}],"text":"disk check"}` + "\n" +
		`{"result":[],"text":"volume missing","error":"1"}` + "\n"
	assert.Equal(t, expected, output)
}

func TestRootCmdWithInvalidDefinition(t *testing.T) {
	definition := `
sensors:
  - channels:
      - channel: free
        customUnit: far too long label
`
	path := filepath.Join(t.TempDir(), "sensor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0600))

	output, err := executeRootCmd(t, "-d", path)

	assert.Error(t, err)
	assert.Empty(t, output)
}

func TestRootCmdPretty(t *testing.T) {
	output, err := executeRootCmd(t, "--pretty")

	require.NoError(t, err)
	assert.Contains(t, output, "Breakfast Order")
	assert.Contains(t, output, "\n  ")
}
