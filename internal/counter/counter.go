// Package counter builds ascending counting strings ("1 2 ... n").
package counter

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNonPositive is returned for n < 1, which has no counting string.
var ErrNonPositive = errors.New("n must be a positive integer")

// Count returns the integers 1 through n joined by single spaces.
func Count(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("count %d: %w", n, ErrNonPositive)
	}
	return count(n), nil
}

// count recurses once per integer; callers guarantee n >= 1.
func count(n int) string {
	if n == 1 {
		return "1"
	}
	return count(n-1) + " " + strconv.Itoa(n)
}

// Len reports the length of Count(n) without building it: the digits of
// 1..n plus n-1 separating spaces. It returns 0 for n < 1.
func Len(n int) int {
	if n < 1 {
		return 0
	}
	total := n - 1
	width := 1
	for lo := 1; lo <= n; lo *= 10 {
		hi := lo*10 - 1
		if hi > n || hi < lo {
			hi = n
		}
		total += (hi - lo + 1) * width
		width++
		if hi == n {
			break
		}
	}
	return total
}
