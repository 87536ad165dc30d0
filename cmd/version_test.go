package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "scoregate version")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestVersionLines(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "gooze.dev/pkg/scoregate", Version: "v1.2.0"},
	}

	assert.Equal(t, [][2]string{
		{"scoregate version", "v1.2.0"},
		{"go version", "go1.25.1"},
		{"module", "gooze.dev/pkg/scoregate"},
	}, versionLines(info))

	info.Settings = []debug.BuildSetting{{Key: "vcs", Value: "git"}, {Key: "vcs.revision", Value: "abc123"}}

	lines := versionLines(info)
	assert.Equal(t, [2]string{"revision", "abc123"}, lines[len(lines)-1])
}
