package password

import (
	"errors"
	"fmt"
)

const (
	MinLength = 8
	MaxLength = 128

	// DefaultLength is the password length used when none is requested.
	DefaultLength = 16
)

var (
	ErrLengthTooShort          = errors.New("password length must be at least 8")
	ErrLengthTooLong           = errors.New("password length must be at most 128")
	ErrNoCharacterTypes        = errors.New("at least one character type must be selected")
	ErrLengthInsufficient      = errors.New("password length must be at least equal to the number of selected character types")
	ErrInvalidMinimum          = errors.New("minimum counts must not be negative")
	ErrMinDigitsImpossible     = errors.New("minimum digit count requires the digit class to be selected")
	ErrMinSpecialImpossible    = errors.New("minimum special count requires the special class to be selected")
	ErrMinimumsExceedLength    = errors.New("combined minimum counts exceed password length")
	ErrConstraintUnsatisfiable = errors.New("no position left to satisfy a minimum requirement")
	ErrEmptyPattern            = errors.New("pattern must not be empty")
)

// PatternError reports an unrecognized class code in a generation pattern.
type PatternError struct {
	Code     byte
	Position int
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern code %q at position %d", string(e.Code), e.Position)
}

// Options configures password generation. Validated once before use and
// treated as immutable afterwards.
type Options struct {
	Length         int
	Lowercase      bool
	Uppercase      bool
	Digits         bool
	Special        bool
	AvoidAmbiguous bool

	// RequireAllTypes forces at least one character of every selected class.
	RequireAllTypes bool
	MinDigits       int
	MinSpecial      int
}

// DefaultOptions returns the stock configuration: 16 characters, all
// classes, every selected class represented, at least one digit and one
// special character.
func DefaultOptions() Options {
	return Options{
		Length:          DefaultLength,
		Lowercase:       true,
		Uppercase:       true,
		Digits:          true,
		Special:         true,
		RequireAllTypes: true,
		MinDigits:       1,
		MinSpecial:      1,
	}
}

func (o Options) classes() Classes {
	return Classes{Lower: o.Lowercase, Upper: o.Uppercase, Digit: o.Digits, Special: o.Special}
}

// Validate checks the option invariants. The class-coverage invariant is
// checked before the length bounds so that a length too short to even
// represent every selected class reports the more specific error.
func (o Options) Validate() error {
	classes := o.classes()
	if classes.None() {
		return ErrNoCharacterTypes
	}
	if o.RequireAllTypes && o.Length < classes.Count() {
		return ErrLengthInsufficient
	}

	if o.Length < MinLength {
		return ErrLengthTooShort
	}
	if o.Length > MaxLength {
		return ErrLengthTooLong
	}

	if o.MinDigits < 0 || o.MinSpecial < 0 {
		return ErrInvalidMinimum
	}
	if o.MinDigits > 0 && !o.Digits {
		return ErrMinDigitsImpossible
	}
	if o.MinSpecial > 0 && !o.Special {
		return ErrMinSpecialImpossible
	}
	if o.MinDigits+o.MinSpecial > o.Length {
		return ErrMinimumsExceedLength
	}

	return nil
}

// Password is a generated password with its strength metadata. The owner
// must call Wipe before releasing it.
type Password struct {
	Chars    []byte
	Length   int
	Entropy  float64
	Score    int
	Strength Strength
}

func (p *Password) String() string { return string(p.Chars) }

// Wipe overwrites the password bytes with zeros.
func (p *Password) Wipe() {
	for i := range p.Chars {
		p.Chars[i] = 0
	}
}

// Generator produces passwords from an injected random source, which makes
// generation reproducible under test with a deterministic source.
type Generator struct {
	src      Source
	assessor *Assessor
}

// NewGenerator creates a Generator drawing from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src, assessor: NewAssessor()}
}

// Generate creates one password according to opts.
func (g *Generator) Generate(opts Options) (*Password, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	charset, err := BuildCharset(opts.classes(), opts.AvoidAmbiguous)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, opts.Length)
	for i := range buf {
		ch, err := randChar(g.src, charset)
		if err != nil {
			return nil, err
		}
		buf[i] = ch
	}

	if err := g.applyRequirements(buf, opts); err != nil {
		return nil, err
	}

	return g.finish(buf, Entropy(len(charset), opts.Length))
}

// applyRequirements patches minimum-requirement violations in place.
// Patched positions are tracked per call and never overwritten twice, so
// one requirement cannot undo another.
func (g *Generator) applyRequirements(buf []byte, opts Options) error {
	patched := make([]bool, len(buf))

	if opts.RequireAllTypes {
		for _, class := range []struct {
			selected bool
			chars    string
		}{
			{opts.Lowercase, LowercaseChars},
			{opts.Uppercase, UppercaseChars},
			{opts.Digits, DigitChars},
			{opts.Special, SpecialChars},
		} {
			if !class.selected {
				continue
			}
			cs := classCharset(class.chars, opts.AvoidAmbiguous)
			if containsClass(buf, cs) {
				continue
			}
			if err := g.patchOne(buf, patched, cs); err != nil {
				return err
			}
		}
	}

	digitSet := classCharset(DigitChars, opts.AvoidAmbiguous)
	for countClass(buf, digitSet) < opts.MinDigits {
		if err := g.patchOne(buf, patched, digitSet); err != nil {
			return err
		}
	}

	specialSet := classCharset(SpecialChars, opts.AvoidAmbiguous)
	for countClass(buf, specialSet) < opts.MinSpecial {
		if err := g.patchOne(buf, patched, specialSet); err != nil {
			return err
		}
	}

	return nil
}

// patchOne overwrites the lowest-index unpatched position with a uniform
// draw from class and marks it patched.
func (g *Generator) patchOne(buf []byte, patched []bool, class string) error {
	for i := range buf {
		if patched[i] {
			continue
		}
		ch, err := randChar(g.src, class)
		if err != nil {
			return err
		}
		buf[i] = ch
		patched[i] = true
		return nil
	}
	// Unreachable when Validate passed; left as a hard error rather than a
	// silent truncation of the requirement.
	return ErrConstraintUnsatisfiable
}

// GenerateFromPattern creates a password whose per-position class follows
// pattern. Codes: 'l' lowercase, 'U' uppercase, 'n' digit, 's' special.
// The pattern itself is the constraint: no ambiguous filtering and no
// patching happen here.
func (g *Generator) GenerateFromPattern(pattern string) (*Password, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	var classes Classes
	buf := make([]byte, len(pattern))
	for i := 0; i < len(pattern); i++ {
		var class string
		switch pattern[i] {
		case 'l':
			class = LowercaseChars
			classes.Lower = true
		case 'U':
			class = UppercaseChars
			classes.Upper = true
		case 'n':
			class = DigitChars
			classes.Digit = true
		case 's':
			class = SpecialChars
			classes.Special = true
		default:
			return nil, &PatternError{Code: pattern[i], Position: i}
		}

		ch, err := randChar(g.src, class)
		if err != nil {
			return nil, err
		}
		buf[i] = ch
	}

	charset, err := BuildCharset(classes, false)
	if err != nil {
		return nil, err
	}

	return g.finish(buf, Entropy(len(charset), len(buf)))
}

// finish attaches strength metadata to a generated buffer.
func (g *Generator) finish(buf []byte, entropy float64) (*Password, error) {
	assessment := g.assessor.Assess(string(buf))
	return &Password{
		Chars:    buf,
		Length:   len(buf),
		Entropy:  entropy,
		Score:    assessment.Score,
		Strength: assessment.Strength,
	}, nil
}
