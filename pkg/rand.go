package pkg

import (
	"math/rand"
	"time"
)

const charset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789" // no lookalike characters

var seeded = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandString generates a join code of length n.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[seeded.Intn(len(charset))]
	}
	return string(b)
}
