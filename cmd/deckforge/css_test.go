package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const cliTheme = `name: midnight
tokens:
  colors:
    primary: "#1d4ed8"
layouts:
  - name: hero
    zones:
      - name: main
    customStyles: |
      [data-layout="hero"] { display: grid; }
`

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSSCommandPrintsStylesheet(t *testing.T) {
	path := writeThemeFile(t, cliTheme)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"css", path})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, ":root {")
	require.Contains(t, output, "--color-primary: #1d4ed8;")
	require.Contains(t, output, `[data-layout="hero"]`)
	require.Contains(t, output, `[data-layout="title"]`, "built-in layouts present by default")
}

func TestCSSCommandNoBuiltins(t *testing.T) {
	path := writeThemeFile(t, cliTheme)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"css", "--no-builtins", path})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, `[data-layout="hero"]`)
	require.NotContains(t, output, `[data-layout="title"]`)
}

func TestCSSCommandMissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"css", filepath.Join(t.TempDir(), "absent.yaml")})

	require.Error(t, root.Execute())
}
