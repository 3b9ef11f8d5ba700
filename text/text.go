package text

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ar90n/primext"
	"github.com/cockroachdb/errors"
)

// wordChar is the Unicode word class: letters, marks, digits and connector
// punctuation such as '_'.
const wordChar = `\p{L}\p{M}\p{N}\p{Pc}`

var emailPattern = regexp.MustCompile(`^[` + wordChar + `.-]+@([` + wordChar + `-]+\.)+[` + wordChar + `-]{2,4}$`)

// IsValidEmailAddress reports whether s looks like local@domain.tld. It only
// checks the shape of the address.
func IsValidEmailAddress(s string) bool {
	return emailPattern.MatchString(s)
}

// WordCount returns the number of runs of non-space characters in s, where
// space is anything unicode.IsSpace accepts.
func WordCount(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, errors.Wrapf(primext.ErrMalformedText, "invalid utf-8 at byte %d", invalidOffset(s))
	}
	return len(strings.Fields(s)), nil
}

func invalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return len(s)
}
