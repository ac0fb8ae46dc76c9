// Package generator assembles a character pool from enabled character
// classes and samples passwords from it uniformly at random.
package generator

import (
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"
	mathrand "math/rand/v2"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	// The 32 ASCII punctuation characters.
	specialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// MinLength is the smallest password length Generate accepts.
	MinLength = 4

	// DefaultLength is used when a caller does not request a length.
	DefaultLength = 12
)

// ErrInvalidLength is returned when a requested length is below MinLength.
var ErrInvalidLength = errors.New("password length must be at least 4 characters")

// Options configures a generation request. Lowercase letters are always
// part of the pool and have no toggle.
type Options struct {
	Length    int
	Uppercase bool
	Digits    bool
	Special   bool
}

// DefaultOptions returns the standard options: 12 characters with
// uppercase and digits enabled, special characters disabled.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Digits:    true,
	}
}

// Source is a stream of uniform random integers. IntN must return a value
// in [0, n) for n > 0. *math/rand/v2.Rand satisfies it directly, which is
// how tests inject deterministic draws.
type Source interface {
	IntN(n int) int
}

// cryptoSource draws from crypto/rand, falling back to math/rand/v2 only
// if the system source fails.
type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		slog.Warn("crypto random source failed, falling back to math/rand", "error", err)
		return mathrand.IntN(n)
	}
	return int(v.Int64())
}

// Generator produces passwords from a random source.
type Generator struct {
	src Source
}

// New creates a Generator backed by src. A nil src selects the
// crypto/rand-backed default.
func New(src Source) *Generator {
	if src == nil {
		src = cryptoSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = New(nil)

// Generate produces a password with the default random source.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Generate(opts)
}

// GenerateBatch produces count passwords with the default random source.
func GenerateBatch(count int, opts Options) ([]string, error) {
	return defaultGenerator.GenerateBatch(count, opts)
}

// Generate produces a password of exactly opts.Length characters, each an
// independent uniform draw from the assembled pool. Sampling is with
// replacement: characters may repeat, and no single output is guaranteed
// to contain every enabled class.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrInvalidLength
	}

	pool := lowercaseChars
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Digits {
		pool += digitChars
	}
	if opts.Special {
		pool += specialChars
	}

	result := make([]byte, opts.Length)
	for i := range result {
		result[i] = pool[g.src.IntN(len(pool))]
	}

	return string(result), nil
}

// GenerateBatch produces count passwords, each from an independent
// Generate call. Outputs are not deduplicated. The count itself is not
// validated here; bounding it is a front-end concern.
func (g *Generator) GenerateBatch(count int, opts Options) ([]string, error) {
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}
