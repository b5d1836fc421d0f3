// Package generator produces random passwords that contain at least one
// lowercase letter, uppercase letter, digit and symbol.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/helmcode/pwcheck/pkg/rules"
)

const (
	DefaultLength = 16

	// MinLength is one character per required category.
	MinLength = 4

	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
)

var (
	ErrInvalidLength  = errors.New("invalid password length")
	ErrInvalidSymbols = errors.New("invalid symbol set")
)

// Settings for password generation.
type Settings struct {
	// Length of generated passwords. Must be at least MinLength.
	Length int

	// Symbols to draw from. Every symbol must belong to rules.Symbols.
	// Empty means rules.Symbols.
	Symbols string

	// Rand is the randomness source. Nil means crypto/rand.Reader.
	Rand io.Reader
}

// Default password generation settings.
var Default = Settings{
	Length:  DefaultLength,
	Symbols: rules.Symbols,
}

// Generate a password of the given length with the default symbol set.
func Generate(length int) (string, error) {
	s := Default
	s.Length = length
	return s.Generate()
}

// Validate checks length and symbol set without generating anything.
func (s Settings) Validate() error {
	if s.Length < MinLength {
		return fmt.Errorf("%w: got %d, need at least %d", ErrInvalidLength, s.Length, MinLength)
	}
	if s.Symbols == "" {
		return nil
	}
	for _, r := range s.Symbols {
		if !strings.ContainsRune(rules.Symbols, r) {
			return fmt.Errorf("%w: %q is not a recognized special character", ErrInvalidSymbols, r)
		}
	}
	return nil
}

// Generate a password.
func (s Settings) Generate() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	symbols := s.Symbols
	if symbols == "" {
		symbols = rules.Symbols
	}
	reader := s.Rand
	if reader == nil {
		reader = rand.Reader
	}

	categories := []string{Lowercase, Uppercase, Digits, symbols}
	all := strings.Join(categories, "")

	pw := make([]rune, 0, s.Length)
	for _, set := range categories {
		r, err := pick(reader, set)
		if err != nil {
			return "", err
		}
		pw = append(pw, r)
	}
	for len(pw) < s.Length {
		r, err := pick(reader, all)
		if err != nil {
			return "", err
		}
		pw = append(pw, r)
	}

	if err := shuffle(reader, pw); err != nil {
		return "", err
	}
	return string(pw), nil
}

func pick(reader io.Reader, set string) (rune, error) {
	runes := []rune(set)
	n, err := randInt(reader, len(runes))
	if err != nil {
		return 0, err
	}
	return runes[n], nil
}

// shuffle is a Fisher-Yates shuffle driven by reader.
func shuffle(reader io.Reader, pw []rune) error {
	for i := len(pw) - 1; i > 0; i-- {
		j, err := randInt(reader, i+1)
		if err != nil {
			return err
		}
		pw[i], pw[j] = pw[j], pw[i]
	}
	return nil
}

func randInt(reader io.Reader, max int) (int, error) {
	n, err := rand.Int(reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(n.Int64()), nil
}
