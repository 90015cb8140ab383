package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/socialgraph/friendsdb/internal/types"
)

const (
	minAge = 1
	maxAge = 149

	minHobbyNameLen = 2
	maxHobbyNameLen = 100
)

// Display names are restricted to word characters so they survive URLs and
// fixtures untouched.
var userNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,50}$`)

// validateUserName checks the display name constraints: 2-50 characters,
// alphanumeric or underscore only.
func validateUserName(name string) error {
	if !userNamePattern.MatchString(name) {
		return types.ValidationFailed("name",
			"must be 2-50 characters of letters, digits or underscore")
	}
	return nil
}

// validateAge checks the inclusive 1-149 age range.
func validateAge(age int) error {
	if age < minAge || age > maxAge {
		return types.ValidationFailed("age",
			fmt.Sprintf("must be between %d and %d", minAge, maxAge))
	}
	return nil
}

// validateHobbyName checks the hobby name constraints: 2-100 characters
// after trimming surrounding whitespace.
func validateHobbyName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minHobbyNameLen || len(trimmed) > maxHobbyNameLen {
		return types.ValidationFailed("hobby",
			fmt.Sprintf("must be %d-%d characters", minHobbyNameLen, maxHobbyNameLen))
	}
	return nil
}
