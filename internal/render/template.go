package render

import (
	"fmt"
	"strconv"
	"strings"

	"taskgen/internal/domain"
)

// Template holds the instruction and solution texts of one problem kind.
// Placeholders use the form @name; "@@" renders a literal "@". The "@"
// delimiter is chosen over "$" because the texts frequently contain LaTeX.
type Template struct {
	Instruction string
	Solution    string
}

// Text is one rendered subproblem.
type Text struct {
	Instruction string `json:"instruction"`
	Solution    string `json:"solution"`
}

// Render substitutes every placeholder in the template with the matching
// value from data. Keys present in data but absent from the template are
// ignored. A placeholder without a matching key fails with a
// MISSING_PLACEHOLDER domain error.
func Render(tpl Template, data map[string]any) (Text, error) {
	instruction, err := substitute(tpl.Instruction, data)
	if err != nil {
		return Text{}, err
	}
	solution, err := substitute(tpl.Solution, data)
	if err != nil {
		return Text{}, err
	}
	return Text{Instruction: instruction, Solution: solution}, nil
}

// RenderAll renders one Text per datum, preserving subproblem order.
func RenderAll(tpl Template, data []map[string]any) ([]Text, error) {
	texts := make([]Text, 0, len(data))
	for _, datum := range data {
		text, err := Render(tpl, datum)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func substitute(s string, data map[string]any) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '@' {
			b.WriteByte(c)
			i++
			continue
		}
		// "@@" escapes a literal "@".
		if i+1 < len(s) && s[i+1] == '@' {
			b.WriteByte('@')
			i += 2
			continue
		}
		name := scanIdentifier(s[i+1:])
		if name == "" {
			// A lone "@" not followed by an identifier passes through.
			b.WriteByte('@')
			i++
			continue
		}
		value, ok := data[name]
		if !ok {
			return "", domain.NewMissingPlaceholderError(name)
		}
		b.WriteString(formatValue(value))
		i += 1 + len(name)
	}
	return b.String(), nil
}

// scanIdentifier returns the longest identifier prefix of s. Identifiers
// start with a letter or underscore and continue with letters, digits and
// underscores, matching the placeholder names generators produce.
func scanIdentifier(s string) string {
	if s == "" || !isIdentStart(s[0]) {
		return ""
	}
	end := 1
	for end < len(s) && isIdentPart(s[end]) {
		end++
	}
	return s[:end]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// formatValue turns a generated value into display text. Generators mostly
// produce pre-formatted strings; numbers and small slices are supported so
// kinds can pass raw values through.
func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case []string:
		return strings.Join(value, ", ")
	case []int:
		parts := make([]string, len(value))
		for i, n := range value {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}
