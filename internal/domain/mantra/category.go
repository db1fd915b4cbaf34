package mantra

import (
	"fmt"
	"strings"
)

// AllowedCategories is the closed set of mantra categories. Input is matched
// case-insensitively; the stored form is upper-cased and trimmed.
var AllowedCategories = []string{
	"LALITA DEVI",
	"TITHINITYA DEVI",
	"BALA TRIPURA SUNDARI",
	"KALI",
	"LAKSHMI",
	"SARASWATHI",
}

// NormalizeCategory trims and upper-cases the input and checks membership in
// the allowed set.
func NormalizeCategory(in string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(in))
	if c == "" {
		return "", ErrCategoryRequired
	}
	for _, allowed := range AllowedCategories {
		if c == allowed {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w, allowed: %s", ErrInvalidCategory, strings.Join(AllowedCategories, ", "))
}
