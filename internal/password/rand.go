package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	ErrRandomUnavailable = errors.New("secure random source unavailable")
	ErrInvalidRange      = errors.New("invalid random range")
)

// Source yields uniformly distributed integers. Implementations must not
// introduce modulo bias. A Source must be safe for concurrent use when
// bulk generation is parallelized.
type Source interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// CryptoSource draws from the operating system's CSPRNG via crypto/rand.
// The zero value is usable, but NewCryptoSource should be preferred since
// it verifies the entropy source is actually reachable.
type CryptoSource struct{}

// NewCryptoSource probes crypto/rand and returns a source backed by it.
// A failing probe is fatal: there is no fallback to a weaker generator.
func NewCryptoSource() (*CryptoSource, error) {
	var probe [1]byte
	if _, err := io.ReadFull(rand.Reader, probe[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}
	return &CryptoSource{}, nil
}

// IntN returns a uniform value in [0, n). crypto/rand.Int performs
// rejection sampling internally, so small ranges stay unbiased.
func (s *CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidRange
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}
	return int(v.Int64()), nil
}

// IntInRange returns a uniform value in [min, max] inclusive.
func IntInRange(src Source, min, max int) (int, error) {
	if min > max {
		return 0, ErrInvalidRange
	}
	v, err := src.IntN(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + v, nil
}

// randChar picks one character from charset using src.
func randChar(src Source, charset string) (byte, error) {
	if len(charset) == 0 {
		return 0, ErrEmptyCharset
	}
	i, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
