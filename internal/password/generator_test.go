package password

import (
	"errors"
	"strings"
	"testing"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	src, err := NewCryptoSource()
	if err != nil {
		t.Fatalf("NewCryptoSource() unexpected error: %v", err)
	}
	return NewGenerator(src)
}

func TestOptionsValidate(t *testing.T) {
	allClasses := Options{
		Length: 16, Lowercase: true, Uppercase: true, Digits: true, Special: true,
	}

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(o *Options) { *o = DefaultOptions() },
			wantErr: nil,
		},
		{
			name:    "length too short",
			mutate:  func(o *Options) { o.Length = 4 },
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			mutate:  func(o *Options) { o.Length = 200 },
			wantErr: ErrLengthTooLong,
		},
		{
			name: "no character types",
			mutate: func(o *Options) {
				o.Lowercase, o.Uppercase, o.Digits, o.Special = false, false, false, false
			},
			wantErr: ErrNoCharacterTypes,
		},
		{
			name: "length below selected class count",
			mutate: func(o *Options) {
				o.Length = 3
				o.RequireAllTypes = true
			},
			wantErr: ErrLengthInsufficient,
		},
		{
			name: "length four clears the class-coverage invariant",
			mutate: func(o *Options) {
				o.Length = 4
				o.RequireAllTypes = true
			},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "negative minimum",
			mutate:  func(o *Options) { o.MinDigits = -1 },
			wantErr: ErrInvalidMinimum,
		},
		{
			name: "min digits without digit class",
			mutate: func(o *Options) {
				o.Digits = false
				o.MinDigits = 1
			},
			wantErr: ErrMinDigitsImpossible,
		},
		{
			name: "min special without special class",
			mutate: func(o *Options) {
				o.Special = false
				o.MinSpecial = 1
			},
			wantErr: ErrMinSpecialImpossible,
		},
		{
			name: "combined minimums exceed length",
			mutate: func(o *Options) {
				o.MinDigits = 10
				o.MinSpecial = 7
			},
			wantErr: ErrMinimumsExceedLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := allClasses
			tt.mutate(&opts)
			if err := opts.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateLength(t *testing.T) {
	gen := newTestGenerator(t)

	for _, length := range []int{MinLength, 12, 16, 32, MaxLength} {
		opts := DefaultOptions()
		opts.Length = length

		pw, err := gen.Generate(opts)
		if err != nil {
			t.Fatalf("Generate(length=%d) unexpected error: %v", length, err)
		}
		if pw.Length != length || len(pw.Chars) != length {
			t.Errorf("Generate(length=%d) produced %d characters", length, len(pw.Chars))
		}
		pw.Wipe()
	}
}

func TestGenerateRequiresAllSelectedClasses(t *testing.T) {
	gen := newTestGenerator(t)
	opts := Options{
		Length: 8, Lowercase: true, Uppercase: true, Digits: true, Special: true,
		RequireAllTypes: true,
	}

	// Run repeatedly: with length 8 the unconstrained miss probability is
	// high enough that patching must be doing the work.
	for i := 0; i < 100; i++ {
		pw, err := gen.Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		s := pw.String()
		if !strings.ContainsAny(s, LowercaseChars) {
			t.Errorf("password %q missing lowercase character", s)
		}
		if !strings.ContainsAny(s, UppercaseChars) {
			t.Errorf("password %q missing uppercase character", s)
		}
		if !strings.ContainsAny(s, DigitChars) {
			t.Errorf("password %q missing digit", s)
		}
		if !strings.ContainsAny(s, SpecialChars) {
			t.Errorf("password %q missing special character", s)
		}
		pw.Wipe()
	}
}

func TestGenerateMinimumCounts(t *testing.T) {
	gen := newTestGenerator(t)
	opts := Options{
		Length: 10, Lowercase: true, Uppercase: true, Digits: true, Special: true,
		MinDigits: 3, MinSpecial: 2,
	}

	for i := 0; i < 100; i++ {
		pw, err := gen.Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if n := countClass(pw.Chars, DigitChars); n < 3 {
			t.Errorf("password %q has %d digits, want >= 3", pw.String(), n)
		}
		if n := countClass(pw.Chars, SpecialChars); n < 2 {
			t.Errorf("password %q has %d special characters, want >= 2", pw.String(), n)
		}
		pw.Wipe()
	}
}

func TestGenerateAvoidAmbiguous(t *testing.T) {
	gen := newTestGenerator(t)
	opts := DefaultOptions()
	opts.AvoidAmbiguous = true

	for i := 0; i < 50; i++ {
		pw, err := gen.Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if strings.ContainsAny(pw.String(), AmbiguousChars) {
			t.Errorf("password %q contains an ambiguous character", pw.String())
		}
		pw.Wipe()
	}
}

func TestGenerateSingleClassOnly(t *testing.T) {
	gen := newTestGenerator(t)

	tests := []struct {
		name    string
		opts    Options
		charset string
	}{
		{"lowercase only", Options{Length: 32, Lowercase: true}, LowercaseChars},
		{"uppercase only", Options{Length: 32, Uppercase: true}, UppercaseChars},
		{"digits only", Options{Length: 32, Digits: true}, DigitChars},
		{"special only", Options{Length: 32, Special: true}, SpecialChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := gen.Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range pw.String() {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("unexpected character %q outside class %q", string(ch), tt.charset)
				}
			}
			pw.Wipe()
		})
	}
}

func TestGenerateDeterministicWithInjectedSource(t *testing.T) {
	seq := []int{13, 2, 41, 7, 0, 29, 55, 18, 3, 61, 44, 9}
	opts := DefaultOptions()

	first, err := NewGenerator(&seqSource{seq: seq}).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	second, err := NewGenerator(&seqSource{seq: seq}).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("identical sources produced %q and %q", first.String(), second.String())
	}
	if first.Entropy != second.Entropy || first.Score != second.Score {
		t.Error("identical sources produced differing metadata")
	}
}

func TestGeneratePatchingOrder(t *testing.T) {
	// An all-zero source samples 'a' everywhere, forcing the patcher to
	// fix upper, digit and special at the lowest unpatched positions in
	// class order.
	gen := NewGenerator(&seqSource{seq: []int{0}})
	opts := Options{
		Length: 8, Lowercase: true, Uppercase: true, Digits: true, Special: true,
		RequireAllTypes: true, MinDigits: 1, MinSpecial: 1,
	}

	pw, err := gen.Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if got := pw.String(); got != "A0!aaaaa" {
		t.Errorf("Generate() = %q, want %q", got, "A0!aaaaa")
	}
}

func TestGenerateUnique(t *testing.T) {
	gen := newTestGenerator(t)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		pw, err := gen.Generate(DefaultOptions())
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[pw.String()] {
			t.Errorf("duplicate password generated: %q", pw.String())
		}
		seen[pw.String()] = true
	}
}

func TestGenerateFromPattern(t *testing.T) {
	gen := newTestGenerator(t)

	pw, err := gen.GenerateFromPattern("llUnss")
	if err != nil {
		t.Fatalf("GenerateFromPattern() unexpected error: %v", err)
	}
	if pw.Length != 6 {
		t.Fatalf("GenerateFromPattern() length = %d, want 6", pw.Length)
	}

	classFor := map[byte]string{
		'l': LowercaseChars, 'U': UppercaseChars, 'n': DigitChars, 's': SpecialChars,
	}
	pattern := "llUnss"
	for i := 0; i < len(pattern); i++ {
		class := classFor[pattern[i]]
		if !strings.ContainsRune(class, rune(pw.Chars[i])) {
			t.Errorf("position %d: %q not in class %q", i, string(pw.Chars[i]), pattern[i])
		}
	}
	pw.Wipe()
}

func TestGenerateFromPatternInvalidCode(t *testing.T) {
	gen := newTestGenerator(t)

	pw, err := gen.GenerateFromPattern("llx")
	if pw != nil {
		t.Error("expected no partial result for an invalid pattern")
	}

	var patternErr *PatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("GenerateFromPattern() error = %v, want *PatternError", err)
	}
	if patternErr.Code != 'x' || patternErr.Position != 2 {
		t.Errorf("PatternError = %+v, want code 'x' at position 2", patternErr)
	}
}

func TestGenerateFromPatternEmpty(t *testing.T) {
	gen := newTestGenerator(t)
	if _, err := gen.GenerateFromPattern(""); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("GenerateFromPattern(\"\") error = %v, want ErrEmptyPattern", err)
	}
}

func TestPasswordWipe(t *testing.T) {
	gen := newTestGenerator(t)
	pw, err := gen.Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	pw.Wipe()
	for i, b := range pw.Chars {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after Wipe", i)
		}
	}
}
