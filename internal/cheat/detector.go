// Package cheat decides whether a description gives away the word it describes.
package cheat

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// similarityThreshold is the edit-distance similarity above which a token counts as the word itself.
const similarityThreshold = 0.8

type Detector struct {
	synonyms map[string][]string
}

// NewDetector builds a detector over a synonym table. A nil table uses the built-in one.
func NewDetector(synonyms map[string][]string) *Detector {
	if synonyms == nil {
		synonyms = defaultSynonyms
	}
	table := make(map[string][]string, len(synonyms))
	for word, syns := range synonyms {
		key := Normalize(word)
		for _, s := range syns {
			if n := Normalize(s); n != "" {
				table[key] = append(table[key], n)
			}
		}
	}
	return &Detector{synonyms: table}
}

// IsCheat reports whether description contains target, one of its synonyms, or a near spelling of it.
func (d *Detector) IsCheat(target, description string) bool {
	word := Normalize(target)
	desc := Normalize(description)
	if word == "" || desc == "" {
		return false
	}

	if strings.Contains(desc, word) {
		return true
	}

	for _, syn := range d.synonyms[word] {
		if strings.Contains(desc, syn) {
			return true
		}
	}

	// a word mentioned in the description whose synonym group contains the target
	for key, syns := range d.synonyms {
		if !mentions(desc, key, syns) {
			continue
		}
		if key == word || contains(syns, word) {
			return true
		}
	}

	for _, token := range tokens(desc) {
		if Similarity(word, token) > similarityThreshold {
			return true
		}
	}
	return false
}

func mentions(desc, key string, syns []string) bool {
	if strings.Contains(desc, key) {
		return true
	}
	for _, s := range syns {
		if strings.Contains(desc, s) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Normalize folds full-width forms, lower-cases Latin letters and drops punctuation.
func Normalize(text string) string {
	folded, _, err := transform.String(transform.Chain(width.Fold, norm.NFC), text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Han, r) || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			return r
		}
		return -1
	}, folded))
}

// tokens splits text into runs of Han characters and runs of Latin letters.
func tokens(text string) []string {
	var out []string
	var cur []rune
	kind := 0 // 1 han, 2 latin
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
		kind = 0
	}
	for _, r := range text {
		k := 0
		switch {
		case unicode.Is(unicode.Han, r):
			k = 1
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			k = 2
		}
		if k == 0 {
			flush()
			continue
		}
		if k != kind {
			flush()
			kind = k
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

// Similarity is 1 minus the edit distance over the longer length, computed on runes.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 1
	}
	return float64(longer-editDistance(ra, rb)) / float64(longer)
}

func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j-1], cur[j-1], prev[j])
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
