// Package scoreguard keeps a score together with a digest of its value so
// that edits made outside Increment are detected on the next read.
package scoreguard

import (
	"errors"
	"math"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/rand"
)

// ErrTampered is returned when the stored score no longer matches its digest.
var ErrTampered = errors.New("scoreguard: score digest mismatch")

// Guard is a digest-verified score counter. The zero value is not usable;
// construct one with New.
type Guard struct {
	score  int64
	offset int64
	hashed [blake2b.Size256]byte
}

// New returns a guard whose raw score and offset both start at baseline,
// so the displayed score is zero.
func New(baseline int64) *Guard {
	g := &Guard{score: baseline, offset: baseline}
	g.hashed = digest(g.score)
	return g
}

// RandomBaseline returns an unpredictable non-negative baseline.
func RandomBaseline() int64 {
	src := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	return src.Int63n(math.MaxInt32)
}

func digest(score int64) [blake2b.Size256]byte {
	return blake2b.Sum256([]byte(strconv.FormatInt(score<<8, 10)))
}

// Increment adds one point and refreshes the digest.
func (g *Guard) Increment() {
	next := g.score + 1
	g.score = next
	g.hashed = digest(next)
}

// Verify checks the score against its digest.
func (g *Guard) Verify() error {
	if digest(g.score) != g.hashed {
		return ErrTampered
	}
	return nil
}

// Display returns the score relative to the baseline after verifying it.
func (g *Guard) Display() (int, error) {
	if err := g.Verify(); err != nil {
		return 0, err
	}
	return int(g.score - g.offset), nil
}

// Peek returns the displayed score without verifying it. Use it only where a
// tampered value may be shown but must not be trusted.
func (g *Guard) Peek() int {
	return int(g.score - g.offset)
}
