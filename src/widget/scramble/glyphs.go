// Package scramble animates text by cycling its characters through random
// glyphs before settling on the real ones.
//
// A Reveal plays once, the first time its text comes into view. A Field
// keeps the text scrambled everywhere except around the pointer.
package scramble

import (
	"math/rand"
	"sync"
	"time"
	"unicode"
)

const (
	Letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alphabet = Letters + "0123456789!@#$%^&*()"
)

// glyphSource hands out random glyphs, safe for concurrent use
type glyphSource struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

func newGlyphSource(r *rand.Rand) *glyphSource {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &glyphSource{rand: r}
}

func (g *glyphSource) pick(set string) rune {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return rune(set[g.rand.Intn(len(set))])
}

// chance reports true with probability p
func (g *glyphSource) chance(p float64) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.rand.Float64() < p
}

func isBlank(char rune) bool {
	return unicode.IsSpace(char)
}
