package test

import (
	"math/rand/v2"
	"strings"
)

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomPassword returns a pseudo-random alphanumeric password of length n.
func RandomPassword(n int) string {
	if n <= 0 {
		n = 1
	}
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(credentialAlphabet[rand.IntN(len(credentialAlphabet))])
	}
	return b.String()
}

// RandomEmail returns an operator address on the shop.io domain.
func RandomEmail() string {
	return strings.ToLower(RandomPassword(8)) + "@shop.io"
}
