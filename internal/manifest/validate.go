package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	deckerrors "github.com/deckforge/deckforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Names for themes, layouts and zones: lowercase slug, hyphen/underscore
	// separated, matching how selectors reference them.
	tokenKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used across
// the manifest package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("token_key", func(fl validator.FieldLevel) bool {
			return tokenKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTheme performs structural and cross-field validation on a theme
// manifest.
func ValidateTheme(m *ThemeManifest) error {
	if m == nil {
		return deckerrors.NewValidationError("theme", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	for i := range m.Layouts {
		if err := validateLayout(&m.Layouts[i], fmt.Sprintf("layouts[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

// ValidateDeck performs structural validation on a deck manifest.
func ValidateDeck(m *DeckManifest) error {
	if m == nil {
		return deckerrors.NewValidationError("deck", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// validateLayout enforces the cross-field rules the core builder deliberately
// leaves to authored input: unique zone names, and grid-template-areas
// strings that only place declared zones.
func validateLayout(m *LayoutManifest, field string) error {
	areas := make(map[string]struct{}, len(m.Zones))
	seen := make(map[string]struct{}, len(m.Zones))
	for _, z := range m.Zones {
		if _, dup := seen[z.Name]; dup {
			return deckerrors.NewValidationError(
				field+".zones",
				fmt.Sprintf("duplicate zone name %q", z.Name),
				deckerrors.NewDuplicateZoneError(m.Name, z.Name),
			)
		}
		seen[z.Name] = struct{}{}

		gridArea := z.GridArea
		if gridArea == "" {
			gridArea = z.Name
		}
		areas[gridArea] = struct{}{}
	}

	for _, area := range gridAreaNames(m.GridTemplateAreas) {
		if _, ok := areas[area]; !ok {
			return deckerrors.NewValidationError(
				field+".gridTemplateAreas",
				fmt.Sprintf("area %q does not match any declared zone", area),
				nil,
			)
		}
	}

	return nil
}

// gridAreaNames extracts area tokens from a grid-template-areas string.
// Quoted rows are unwrapped and the "." null-cell token is ignored.
func gridAreaNames(value string) []string {
	cleaned := strings.NewReplacer(`"`, " ", "'", " ").Replace(value)

	var names []string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if token == "." {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		names = append(names, token)
	}
	return names
}

// convertValidationError maps the first validator failure onto the package's
// ValidationError shape.
func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return deckerrors.NewValidationError(
			fe.Namespace(),
			fmt.Sprintf("failed %q validation", fe.Tag()),
			err,
		)
	}
	return deckerrors.NewValidationError("", err.Error(), err)
}
