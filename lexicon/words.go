package lexicon

import (
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r belongs to a word: letters, number
// characters and underscore. Everything else separates words.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Words splits a line into maximal runs of word characters.
func Words(line string) []string {
	var words []string
	start := -1
	for i, r := range line {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, line[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, line[start:])
	}
	return words
}

// WordSet groups unique words by their length in characters.
type WordSet struct {
	groups map[int]map[string]struct{}
	n      int
}

// NewWordSet creates an empty word set.
func NewWordSet() *WordSet {
	return &WordSet{
		groups: make(map[int]map[string]struct{}),
	}
}

// Add records a word. Adding a word twice is a no-op.
func (s *WordSet) Add(word string) {
	if word == "" {
		return
	}
	n := utf8.RuneCountInString(word)
	g, ok := s.groups[n]
	if !ok {
		g = make(map[string]struct{})
		s.groups[n] = g
	}
	if _, dup := g[word]; dup {
		return
	}
	g[word] = struct{}{}
	s.n++
}

// Len returns the number of unique words.
func (s *WordSet) Len() int { return s.n }

// Lengths returns the word lengths present, ascending.
func (s *WordSet) Lengths() []int {
	lengths := make([]int, 0, len(s.groups))
	for n := range s.groups {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	return lengths
}

// Group returns the words of length n in ascending order.
func (s *WordSet) Group(n int) []string {
	g := s.groups[n]
	words := make([]string, 0, len(g))
	for w := range g {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// CollectWords reads r line by line and records every word it contains.
func CollectWords(r io.Reader) (*WordSet, error) {
	s := NewWordSet()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		for _, w := range Words(line) {
			s.Add(w)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WriteTo writes every word, one per line, grouped by ascending length
// and sorted within each group.
func (s *WordSet) WriteTo(w io.Writer) (int64, error) {
	return s.WriteRange(w, 0, 0)
}

// WriteRange is like WriteTo but only writes groups with minLen <= length <= maxLen.
// A zero bound is unbounded.
func (s *WordSet) WriteRange(w io.Writer, minLen, maxLen int) (int64, error) {
	var b strings.Builder
	var total int64
	for _, n := range s.Lengths() {
		if (minLen > 0 && n < minLen) || (maxLen > 0 && n > maxLen) {
			continue
		}
		b.Reset()
		for _, word := range s.Group(n) {
			b.WriteString(word)
			b.WriteByte('\n')
		}
		k, err := io.WriteString(w, b.String())
		total += int64(k)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
