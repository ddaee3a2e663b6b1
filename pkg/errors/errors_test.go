package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("deck.yaml", 0, fmt.Errorf("mapping expected"))
	require.Contains(t, err.Error(), "deck.yaml: mapping expected")
	require.NotContains(t, err.Error(), "deck.yaml:0")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("layouts[0].zones", "zone list must not be empty", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "layouts[0].zones", validationErr.Field)
	require.Contains(t, err.Error(), "layouts[0].zones")
}

func TestNotInitializedErrorNamesRegistry(t *testing.T) {
	t.Parallel()

	err := NewNotInitializedError("token")

	var notInit *NotInitializedError
	require.ErrorAs(t, err, &notInit)
	require.Equal(t, "token", notInit.Registry)
	require.Contains(t, err.Error(), "token registry is not initialized")
}

func TestRendererNotFoundErrorNamesType(t *testing.T) {
	t.Parallel()

	err := NewRendererNotFoundError("diagram")

	var notFound *RendererNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "diagram", notFound.Type)
	require.Contains(t, err.Error(), `"diagram"`)
}

func TestDuplicateZoneErrorNamesLayoutAndZone(t *testing.T) {
	t.Parallel()

	err := NewDuplicateZoneError("split-view", "sidebar")

	var dup *DuplicateZoneError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "split-view", dup.Layout)
	require.Equal(t, "sidebar", dup.Zone)
	require.Contains(t, err.Error(), `"sidebar"`)
}
