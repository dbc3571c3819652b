// Package templating resolves placeholder tokens in stored labels and rich
// text against the respondent's collected answers, before sanitization.
package templating

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// State is the read-only view of collected answers the processor resolves
// tokens against. Values are string, float64, bool or a slice of those.
type State interface {
	Value(key string) (any, bool)
}

// MapState adapts a plain response map to State.
type MapState map[string]any

func (m MapState) Value(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// fieldToken matches {{customId}} placeholders. Keys follow the customId
// slug shape: letters, digits, underscore, hyphen.
var fieldToken = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_-]+)\s*\}\}`)

// variationToken matches the numbered tokens @1 @2 @3 used by notification
// variations.
var variationToken = regexp.MustCompile(`@([1-3])\b`)

// Process substitutes {{customId}} tokens with collected values. Unresolved
// tokens render as empty string: the processor never fails and never leaks
// internal field names into respondent-facing output. Text containing no
// recognized tokens passes through unchanged, so the call is idempotent.
func Process(text string, state State) string {
	if text == "" || !strings.Contains(text, "{{") {
		return text
	}
	return fieldToken.ReplaceAllStringFunc(text, func(match string) string {
		key := fieldToken.FindStringSubmatch(match)[1]
		if state == nil {
			return ""
		}
		value, ok := state.Value(key)
		if !ok {
			return ""
		}
		return formatValue(value)
	})
}

// ProcessHTML substitutes tokens inside stored rich text. Substituted
// values are plain text; the result still goes through the sanitizer.
func ProcessHTML(html string, state State) string {
	return Process(html, state)
}

// ProcessVariations resolves the numbered tokens @1..@3 against the
// configured variation texts. Missing variations resolve to empty string.
func ProcessVariations(text string, variations []string) string {
	if text == "" || !strings.Contains(text, "@") {
		return text
	}
	return variationToken.ReplaceAllStringFunc(text, func(match string) string {
		idx, err := strconv.Atoi(strings.TrimPrefix(match, "@"))
		if err != nil || idx < 1 || idx > len(variations) {
			return ""
		}
		return variations[idx-1]
	})
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		// Multi-select answers decode as []any after a JSON round trip.
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", v)
	}
}
