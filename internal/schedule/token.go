package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// Token is the parsed form of one comma-separated scheme element: a repeat
// count and the phase kind it applies to. Count is always >= 1.
type Token struct {
	Count int
	Kind  Kind
}

// rawToken is a tokenized scheme element before its phase letter has been
// resolved against the notation alphabet.
type rawToken struct {
	count int
	code  byte
}

// tokenRegex matches one scheme element: decimal digits followed by exactly
// one letter. Whitespace anywhere in the element is a syntax error.
var tokenRegex = regexp.MustCompile(`^([0-9]+)([a-zA-Z])$`)

// tokenize splits a scheme string on commas and parses each element into a
// rawToken. It is a pure function of its input: no mapping or expansion
// happens here. An empty scheme yields zero tokens and no error; empty
// elements (doubled, leading or trailing commas) and elements that do not
// match the token shape fail with MalformedTokenError.
func tokenize(scheme string) ([]rawToken, error) {
	if scheme == "" {
		return nil, nil
	}

	elements := strings.Split(scheme, ",")
	tokens := make([]rawToken, 0, len(elements))
	for _, elem := range elements {
		matches := tokenRegex.FindStringSubmatch(elem)
		if matches == nil {
			return nil, &MalformedTokenError{Token: elem}
		}

		count, err := strconv.Atoi(matches[1])
		if err != nil || count < 1 {
			// Zero is never a valid repeat count, and a digit run too long
			// for an int is no better.
			return nil, &MalformedTokenError{Token: elem}
		}

		tokens = append(tokens, rawToken{count: count, code: matches[2][0]})
	}
	return tokens, nil
}
