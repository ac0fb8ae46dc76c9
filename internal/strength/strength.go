// Package strength scores password composition heuristically and maps
// scores to qualitative labels. Scoring is deterministic and total over
// all inputs; it is a composition heuristic, not an entropy estimate.
package strength

import (
	"strings"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// punctuation is the 32 ASCII punctuation characters. Kept local so the
// evaluator stays independent of the generator package.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Label describes a score bracket.
type Label string

const (
	VeryWeak Label = "Very Weak"
	Weak     Label = "Weak"
	Moderate Label = "Moderate"
	Strong   Label = "Strong"
)

// Score computes the heuristic strength score in [0, 100] from a
// password's length and character-class composition. The length tier
// awards +5 even to an empty string; that quirk of the heuristic is
// preserved deliberately.
func Score(password string) int {
	score := 0

	// Length counts characters, not bytes, so multibyte input does not
	// jump length tiers.
	switch length := utf8.RuneCountInString(password); {
	case length >= 12:
		score += 25
	case length >= 8:
		score += 15
	default:
		score += 5
	}

	var hasLower, hasUpper, hasDigit, hasPunct bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(punctuation, c):
			hasPunct = true
		}
	}

	if hasLower {
		score += 15
	}
	if hasUpper {
		score += 20
	}
	if hasDigit {
		score += 20
	}
	if hasPunct {
		score += 20
	}

	// The maximum raw sum is exactly 100, so this can only bind there.
	if score > 100 {
		score = 100
	}
	return score
}

// LabelFor maps a score to its label, first match wins in descending
// order. Total over all ints: anything below 40 (including negative
// scores) is Very Weak.
func LabelFor(score int) Label {
	switch {
	case score >= 80:
		return Strong
	case score >= 60:
		return Moderate
	case score >= 40:
		return Weak
	default:
		return VeryWeak
	}
}

// Estimate returns an advisory zxcvbn score in [0, 4]. It supplements the
// heuristic with pattern-aware estimation and never replaces it.
func Estimate(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}
