package password

import (
	"errors"
	"strings"
)

// Character classes. Special and ambiguous sets match the original
// SecurePassGen definitions; the ambiguous set spans multiple classes.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SpecialChars   = "!@#$%^&*"
	AmbiguousChars = "lI1O0"
)

var ErrEmptyCharset = errors.New("character set is empty")

// Classes selects which character classes participate in generation.
type Classes struct {
	Lower   bool
	Upper   bool
	Digit   bool
	Special bool
}

// Count returns the number of selected classes.
func (c Classes) Count() int {
	n := 0
	for _, set := range []bool{c.Lower, c.Upper, c.Digit, c.Special} {
		if set {
			n++
		}
	}
	return n
}

// None reports whether no class is selected.
func (c Classes) None() bool { return c.Count() == 0 }

// BuildCharset composes the active alphabet as the ordered union
// lower, upper, digit, special of the selected classes. When
// avoidAmbiguous is set the ambiguous characters are removed from every
// class. Returns ErrEmptyCharset if nothing remains.
func BuildCharset(c Classes, avoidAmbiguous bool) (string, error) {
	var b strings.Builder
	if c.Lower {
		b.WriteString(classCharset(LowercaseChars, avoidAmbiguous))
	}
	if c.Upper {
		b.WriteString(classCharset(UppercaseChars, avoidAmbiguous))
	}
	if c.Digit {
		b.WriteString(classCharset(DigitChars, avoidAmbiguous))
	}
	if c.Special {
		b.WriteString(classCharset(SpecialChars, avoidAmbiguous))
	}

	charset := b.String()
	if charset == "" {
		return "", ErrEmptyCharset
	}
	return charset, nil
}

// classCharset returns a single class alphabet, optionally stripped of
// ambiguous characters.
func classCharset(class string, avoidAmbiguous bool) string {
	if !avoidAmbiguous {
		return class
	}
	var b strings.Builder
	for i := 0; i < len(class); i++ {
		if !strings.ContainsRune(AmbiguousChars, rune(class[i])) {
			b.WriteByte(class[i])
		}
	}
	return b.String()
}

// containsClass reports whether s contains at least one character of class.
func containsClass(s []byte, class string) bool {
	for _, ch := range s {
		if strings.IndexByte(class, ch) >= 0 {
			return true
		}
	}
	return false
}

// countClass counts the characters of s belonging to class.
func countClass(s []byte, class string) int {
	n := 0
	for _, ch := range s {
		if strings.IndexByte(class, ch) >= 0 {
			n++
		}
	}
	return n
}
