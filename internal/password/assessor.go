package password

import (
	"fmt"
	"math"
	"strings"
)

// Strength is a coarse 0-5 band derived from the composite score.
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Fair
	Good
	Strong
	VeryStrong
)

func (s Strength) String() string {
	switch s {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// DefaultGuessesPerSecond models an attacker with GPU-class hardware.
const DefaultGuessesPerSecond = 1e9

// weakPatterns are literal substrings that immediately flag a password.
var weakPatterns = []string{
	"123", "abc", "qwerty", "password", "admin", "letmein", "welcome",
	"monkey", "dragon", "baseball", "football", "mustang", "master",
	"hello", "secret", "asdf", "zxcv", "111", "aaa", "000",
}

// dictionaryWords is a curated common-password list, matched as lowercase
// substrings before and after leet normalization.
var dictionaryWords = []string{
	"password", "123456", "12345678", "1234", "qwerty",
	"12345", "dragon", "pussy", "baseball", "football",
	"letmein", "monkey", "696969", "abc123", "mustang",
	"michael", "shadow", "master", "jennifer", "111111",
	"2000", "jordan", "superman", "harley", "1234567",
	"fuckme", "hunter", "fuckyou", "trustno1", "ranger",
	"buster", "thomas", "tigger", "robert", "soccer",
	"fuck", "batman", "test", "pass", "killer",
	"hockey", "george", "charlie", "andrew", "michelle",
	"love", "sunshine", "jessica", "pepper", "daniel",
	"access", "123456789", "654321", "joshua", "maggie",
	"starwars", "silver", "william", "dallas", "yankees",
	"123123", "ashley", "666666", "hello", "amanda",
	"orange", "biteme", "freedom", "computer", "sexy",
	"thunder", "nicole", "ginger", "heather", "hammer",
	"summer", "corvette", "taylor", "fucker", "austin",
	"1111", "merlin", "matthew", "121212", "golfer",
	"cheese", "princess", "martin", "chelsea", "patrick",
	"richard", "diamond", "yellow", "bigdog", "secret",
	"asdfgh", "sparky", "cowboy",
}

var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// leetReplacer undoes the common digit/symbol look-alike substitutions
// before dictionary matching.
var leetReplacer = strings.NewReplacer(
	"4", "a", "3", "e", "0", "o", "1", "i", "5", "s", "7", "t",
	"@", "a", "$", "s", "!", "i",
)

// History supplies previously seen passwords for duplicate detection. The
// assessor itself retains no state across calls.
type History interface {
	Contains(password string) bool
}

// Assessment is the result of a single security evaluation.
type Assessment struct {
	Score             int
	Strength          Strength
	Entropy           float64
	CrackTimeSeconds  float64
	HasWeakPattern    bool
	HasDictionaryWord bool
	IsDuplicate       bool
}

// Assessor scores passwords for weak patterns, dictionary proximity and
// estimated brute-force cost.
type Assessor struct {
	// GuessesPerSecond is the assumed attack rate for crack-time
	// estimation. Zero means DefaultGuessesPerSecond.
	GuessesPerSecond float64
}

// NewAssessor creates an Assessor with the default attack rate.
func NewAssessor() *Assessor {
	return &Assessor{GuessesPerSecond: DefaultGuessesPerSecond}
}

// Assess evaluates text without duplicate detection.
func (a *Assessor) Assess(text string) Assessment {
	return a.AssessWithHistory(text, nil)
}

// AssessWithHistory evaluates text, additionally checking it against a
// caller-supplied history. A nil history leaves IsDuplicate false.
func (a *Assessor) AssessWithHistory(text string, history History) Assessment {
	var as Assessment
	if text == "" {
		return as
	}

	score := StrengthScore(text)
	as.Entropy = observedEntropy(text)
	as.HasWeakPattern = HasWeakPattern(text)
	as.HasDictionaryWord = HasDictionaryWord(text)

	// Penalties apply multiplicatively, in this order, clamping after each.
	if as.HasWeakPattern {
		score = clampScore(score * 70 / 100)
	}
	if as.HasDictionaryWord {
		score = clampScore(score * 60 / 100)
	}

	as.Score = score
	as.Strength = categoryFor(score)

	gps := a.GuessesPerSecond
	if gps <= 0 {
		gps = DefaultGuessesPerSecond
	}
	as.CrackTimeSeconds = CrackTime(as.Entropy, gps)

	if history != nil {
		as.IsDuplicate = history.Contains(text)
	}

	return as
}

// StrengthScore computes the raw 0-100 composite score before penalties.
func StrengthScore(text string) int {
	if text == "" {
		return 0
	}

	length := len(text)
	score := 0

	switch {
	case length >= 12:
		score += 40
	case length >= 10:
		score += 30
	case length >= 8:
		score += 20
	default:
		score += 10
	}

	classes := classesPresent(text)
	score += classes.Count() * 10

	// Non-alphabetic character strictly between the first and last position.
	for i := 1; i < length-1; i++ {
		if !isAlpha(text[i]) {
			score += 10
			break
		}
	}

	if length >= 8 && classes.Lower && classes.Upper && classes.Digit {
		score += 10
	}

	return clampScore(score)
}

// HasWeakPattern reports whether text contains a known weak substring, a
// three-character ascending or descending run (numeric, or alphabetic
// case-insensitively), three identical characters in a row, or a
// three-character keyboard-row fragment in either direction.
func HasWeakPattern(text string) bool {
	for _, p := range weakPatterns {
		if strings.Contains(text, p) {
			return true
		}
	}

	for i := 0; i+2 < len(text); i++ {
		c1, c2, c3 := text[i], text[i+1], text[i+2]

		if isDigit(c1) && isDigit(c2) && isDigit(c3) {
			if (c1+1 == c2 && c2+1 == c3) || (c1-1 == c2 && c2-1 == c3) {
				return true
			}
		}

		if isAlpha(c1) && isAlpha(c2) && isAlpha(c3) {
			l1, l2, l3 := lower(c1), lower(c2), lower(c3)
			if (l1+1 == l2 && l2+1 == l3) || (l1-1 == l2 && l2-1 == l3) {
				return true
			}
		}

		if c1 == c2 && c2 == c3 {
			return true
		}
	}

	for _, row := range keyboardRows {
		for i := 0; i+3 <= len(row); i++ {
			gram := row[i : i+3]
			if strings.Contains(text, gram) {
				return true
			}
			reversed := string([]byte{gram[2], gram[1], gram[0]})
			if strings.Contains(text, reversed) {
				return true
			}
		}
	}

	return false
}

// HasDictionaryWord reports whether the lowercased text contains a common
// password, directly or after leet normalization.
func HasDictionaryWord(text string) bool {
	lowered := strings.ToLower(text)
	for _, w := range dictionaryWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}

	normalized := leetReplacer.Replace(lowered)
	for _, w := range dictionaryWords {
		if strings.Contains(normalized, w) {
			return true
		}
	}

	return false
}

// CrackTime estimates brute-force duration in seconds for the given
// search-space size under the assumed attack rate.
func CrackTime(entropyBits, guessesPerSecond float64) float64 {
	if entropyBits <= 0 || guessesPerSecond <= 0 {
		return 0
	}
	return math.Pow(2, entropyBits) / guessesPerSecond
}

// FormatCrackTime renders a crack-time estimate with a readable unit.
func FormatCrackTime(seconds float64) string {
	switch {
	case seconds > 31536000:
		return fmt.Sprintf("%.1f years", seconds/31536000)
	case seconds > 86400:
		return fmt.Sprintf("%.1f days", seconds/86400)
	case seconds > 3600:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	case seconds > 60:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	default:
		return fmt.Sprintf("%.1f seconds", seconds)
	}
}

// Similarity returns the fraction of matching positions between two
// equal-length passwords, and 0 for differing lengths.
func Similarity(a, b string) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	matches := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}

// observedEntropy estimates entropy from the character classes actually
// present in text, using nominal pool sizes (26/26/10/32).
func observedEntropy(text string) float64 {
	classes := classesPresent(text)

	pool := 0
	if classes.Lower {
		pool += 26
	}
	if classes.Upper {
		pool += 26
	}
	if classes.Digit {
		pool += 10
	}
	if classes.Special {
		pool += 32
	}

	return Entropy(pool, len(text))
}

func classesPresent(text string) Classes {
	var c Classes
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; {
		case ch >= 'a' && ch <= 'z':
			c.Lower = true
		case ch >= 'A' && ch <= 'Z':
			c.Upper = true
		case ch >= '0' && ch <= '9':
			c.Digit = true
		default:
			c.Special = true
		}
	}
	return c
}

func categoryFor(score int) Strength {
	category := Strength(score / 20)
	if category > VeryStrong {
		category = VeryStrong
	}
	return category
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
