// Package caption validates and normalizes the text a cat is asked to say.
package caption

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	apperrors "github.com/dbmrq/catsays/internal/errors"
)

// User-facing validation messages.
const (
	MessageDisallowedScript = "You can't type in Korean."
	MessageEmpty            = "You can't make a meme with an empty value."
)

// Validation errors. Both carry the ErrValidation kind.
var (
	ErrDisallowedScript = apperrors.New(apperrors.ErrValidation, MessageDisallowedScript)
	ErrEmpty            = apperrors.New(apperrors.ErrValidation, MessageEmpty)
)

// ContainsDisallowedScript reports whether s has any Korean letter or
// syllable. The text is composed to NFC first so decomposed input is judged
// the same as what the user sees. unicode.Hangul also covers conjoining and
// halfwidth jamo that survive composition.
func ContainsDisallowedScript(s string) bool {
	return strings.IndexFunc(norm.NFC.String(s), func(r rune) bool {
		return unicode.Is(unicode.Hangul, r)
	}) >= 0
}

// Normalize returns the upper-case form of s using full Unicode case mapping,
// so "ß" becomes "SS".
func Normalize(s string) string {
	// A Caser holds state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(s)
}

// CheckKeystroke runs the checks that apply while the user is still typing.
// The normalized text is returned even when err is ErrDisallowedScript so the
// field keeps showing what was typed.
func CheckKeystroke(raw string) (string, error) {
	normalized := Normalize(raw)
	if ContainsDisallowedScript(raw) {
		return normalized, ErrDisallowedScript
	}
	return normalized, nil
}

// Validate runs the submission-time checks and returns the normalized caption.
func Validate(raw string) (string, error) {
	if ContainsDisallowedScript(raw) {
		return "", ErrDisallowedScript
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmpty
	}
	return Normalize(raw), nil
}

// Message returns the inline message for a validation error, or "" for nil
// and for errors that are not validation errors.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case apperrors.Is(err, ErrDisallowedScript):
		return MessageDisallowedScript
	case apperrors.Is(err, ErrEmpty):
		return MessageEmpty
	default:
		return ""
	}
}
