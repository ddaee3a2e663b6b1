package manifest

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	deckerrors "github.com/deckforge/deckforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTheme loads a theme manifest from disk, validates it, and returns the
// resulting model.
func ParseTheme(path string) (*ThemeManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, deckerrors.NewParseError(path, 0, err)
	}
	return ParseThemeBytes(data, path)
}

// ParseThemeBytes parses and validates a theme manifest from raw bytes. The
// path is used only for error reporting.
func ParseThemeBytes(data []byte, path string) (*ThemeManifest, error) {
	var m ThemeManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, deckerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateTheme(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// ParseDeck loads a deck manifest from disk, validates it, and returns the
// resulting model.
func ParseDeck(path string) (*DeckManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, deckerrors.NewParseError(path, 0, err)
	}
	return ParseDeckBytes(data, path)
}

// ParseDeckBytes parses and validates a deck manifest from raw bytes.
func ParseDeckBytes(data []byte, path string) (*DeckManifest, error) {
	var m DeckManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, deckerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDeck(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
