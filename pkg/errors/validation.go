package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits bounds the size of graphs accepted from untrusted input. A zero
// field disables that check.
type Limits struct {
	MaxNodes       int
	MaxEdges       int
	MaxLabelLength int
}

// DefaultLimits are applied by the HTTP service.
var DefaultLimits = Limits{
	MaxNodes:       5000,
	MaxEdges:       20000,
	MaxLabelLength: 256,
}

// ValidateGraphSize checks node and edge counts against the limits.
func (l Limits) ValidateGraphSize(nodes, edges int) error {
	if l.MaxNodes > 0 && nodes > l.MaxNodes {
		return New(ErrCodeTooLarge, "too many nodes: %d (max %d)", nodes, l.MaxNodes)
	}
	if l.MaxEdges > 0 && edges > l.MaxEdges {
		return New(ErrCodeTooLarge, "too many edges: %d (max %d)", edges, l.MaxEdges)
	}
	return nil
}

// ValidateLabel checks a node label for safety. Labels are printed on a
// single line, so control characters (newlines included) are rejected. The
// empty label is valid: it renders as a placeholder.
func (l Limits) ValidateLabel(label string) error {
	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidInput, "label is not valid UTF-8")
	}
	if l.MaxLabelLength > 0 && utf8.RuneCountInString(label) > l.MaxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", l.MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains control characters: %q", label)
		}
	}
	return nil
}

// ValidatePath validates a local input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateRedisURL validates a Redis connection URL.
// It ensures the URL uses one of the schemes go-redis understands.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "redis URL cannot be empty")
	}
	for _, scheme := range []string{"redis://", "rediss://", "unix://"} {
		if strings.HasPrefix(rawURL, scheme) {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "redis URL must use redis, rediss or unix scheme")
}
