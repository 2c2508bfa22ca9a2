package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// UsernameAlphabet holds every character a valid username may contain.
const UsernameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomUsername returns a pseudo-random string drawn from UsernameAlphabet.
// When maxLen equals minLen the result always has that exact length.
func RandomUsername(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = UsernameAlphabet[randomIntn(len(UsernameAlphabet))]
	}
	return string(buf)
}

// RandomAmount returns a positive amount in cents precision, at most maxCents/100.
func RandomAmount(maxCents int) decimal.Decimal {
	if maxCents <= 0 {
		maxCents = 1
	}
	return decimal.New(int64(randomIntn(maxCents)+1), -2)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
