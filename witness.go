package quickcheck

import (
	"fmt"
	"strconv"
	"strings"
)

// render formats a single property argument for inclusion in a witness.
// Strings and runes are quoted so they're unambiguous next to numbers;
// everything else uses its default formatting. rune is an alias for
// int32, so int32 arguments are rendered as quoted runes too.
func render(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case rune:
		return strconv.QuoteRune(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// renderTuple formats a property's argument list as "(a, b, c)", the
// witness shown next to a failure.
func renderTuple(vs ...any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = render(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
