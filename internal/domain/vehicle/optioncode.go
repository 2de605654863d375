package vehicle

import (
	"strings"
	"unicode"

	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
)

// ParseOptionCodes splits a raw manufacturer option-code string into an
// ordered sequence of logical tokens. Parentheses express package/child
// relationships: a code immediately followed by a parenthesized group is one
// logical unit, e.g. "337 ( 1G6 223 ) 5AC" parses to
// ["337 ( 1G6 223 )", "5AC"].
//
// Outside parentheses, runs of whitespace separate tokens. Inside, whitespace
// is part of the accumulating group; the group closes when nesting returns to
// depth zero. Unbalanced parentheses are rejected rather than silently
// consumed. The function is pure and idempotent over its output.
func ParseOptionCodes(raw string) ([]string, error) {
	var flat []string
	var cur strings.Builder
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			flat = append(flat, cur.String())
			cur.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, ierr.NewError("unbalanced closing parenthesis in option codes").
					WithHint("Option code string has a ')' without a matching '('").
					WithReportableDetails(map[string]any{
						"raw": raw,
					}).
					Mark(ierr.ErrParse)
			}
			cur.WriteRune(r)
			if depth == 0 {
				flush()
			}
		case unicode.IsSpace(r) && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}

	if depth > 0 {
		return nil, ierr.NewError("unterminated parenthesis group in option codes").
			WithHint("Option code string has a '(' that is never closed").
			WithReportableDetails(map[string]any{
				"raw": raw,
			}).
			Mark(ierr.ErrParse)
	}
	flush()

	// Second pass: a code followed by a parenthesized group is one token.
	tokens := make([]string, 0, len(flat))
	for i := 0; i < len(flat); i++ {
		tok := flat[i]
		if i+1 < len(flat) && isGroup(flat[i+1]) && !isGroup(tok) {
			tokens = append(tokens, tok+" "+flat[i+1])
			i++
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func isGroup(tok string) bool {
	return strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")")
}
