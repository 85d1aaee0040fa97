// Package shuangpin converts Mandarin pinyin syllables to shuangpin codes.
//
// A shuangpin scheme assigns one key to every pinyin initial and one key to
// every final, so each syllable is typed with exactly two keystrokes.
// Conversion works on toneless pinyin: tone marks, tone digits and case are
// normalized away first, and ü is written as v.
//
// All functions are safe for concurrent use by multiple goroutines.
package shuangpin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnknownSyllable is returned for input that is not a pinyin syllable
	// the scheme can encode.
	ErrUnknownSyllable = errors.New("unknown pinyin syllable")
	// ErrUnknownScheme is returned by Lookup for an unregistered scheme name.
	ErrUnknownScheme = errors.New("unknown shuangpin scheme")
)

// Converter maps a pinyin syllable to its shuangpin code.
type Converter interface {
	Convert(pinyin string) (string, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(pinyin string) (string, error)

// Convert calls f(pinyin).
func (f ConverterFunc) Convert(pinyin string) (string, error) { return f(pinyin) }

// diaeresis spells a decomposed ü as v.
var diaeresis = strings.NewReplacer("u\u0308", "v", "U\u0308", "v")

// Toneless strips tone information from a pinyin syllable.
// "mā" and "ma1" both become "ma", "lǜ" and "lü4" become "lv".
func Toneless(pinyin string) string {
	s := diaeresis.Replace(norm.NFD.String(strings.TrimSpace(pinyin)))
	s, _, _ = transform.String(runes.Remove(runes.In(unicode.Mn)), s) // cannot fail
	s = strings.ToLower(s)
	return strings.TrimRight(s, "012345")
}

// initials is ordered so that two-letter initials match first.
var initials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "r", "z", "c", "s", "y", "w",
}

var jqxy = map[string]bool{"j": true, "q": true, "x": true, "y": true}

// Split separates a toneless syllable into its initial and final.
// Syllables with no initial (a, er, ang) return an empty initial.
func Split(syllable string) (initial, final string) {
	for _, ini := range initials {
		if strings.HasPrefix(syllable, ini) {
			return ini, syllable[len(ini):]
		}
	}
	return "", syllable
}

// Scheme is a table-driven shuangpin layout.
type Scheme struct {
	Name     string
	initials map[string]string
	finals   map[string]string
	zero     map[string]bool // finals allowed without an initial
}

func newScheme(name string, initialKeys, finalKeys []keyEntry, zero []string) *Scheme {
	s := &Scheme{
		Name:     name,
		initials: make(map[string]string, len(initialKeys)),
		finals:   make(map[string]string, len(finalKeys)),
		zero:     make(map[string]bool, len(zero)),
	}
	for _, e := range initialKeys {
		s.initials[e.pinyin] = e.key
	}
	for _, e := range finalKeys {
		s.finals[e.pinyin] = e.key
	}
	for _, f := range zero {
		s.zero[f] = true
	}
	return s
}

type keyEntry struct {
	pinyin string
	key    string
}

// Convert returns the shuangpin code of a pinyin syllable.
// Tones are ignored.
func (s *Scheme) Convert(pinyin string) (string, error) {
	py := Toneless(pinyin)
	if py == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownSyllable, pinyin)
	}
	initial, final := Split(py)
	if jqxy[initial] && strings.HasPrefix(final, "v") {
		// ü after j, q, x, y is written u
		final = "u" + final[1:]
	}

	if initial == "" {
		if !s.zero[final] {
			return "", fmt.Errorf("%w: %q", ErrUnknownSyllable, pinyin)
		}
		switch len(final) {
		case 1:
			return final + final, nil
		case 2:
			return final, nil
		default:
			fk, ok := s.finals[final]
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownSyllable, pinyin)
			}
			return final[:1] + fk, nil
		}
	}

	ik, ok := s.initials[initial]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSyllable, pinyin)
	}
	fk, ok := s.finals[final]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSyllable, pinyin)
	}
	return ik + fk, nil
}

var schemes = map[string]*Scheme{}

func register(s *Scheme) { schemes[s.Name] = s }

// Lookup returns the registered scheme with the given name.
func Lookup(name string) (*Scheme, error) {
	s, ok := schemes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Schemes returns the names of all registered schemes.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
