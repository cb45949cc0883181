// Package mathx provides small integer algorithms: gcd/lcm and a
// minimum-coin-count dynamic program.
package mathx

import "math"

// GCD returns the greatest common divisor of a and b by Euclid's
// remainder loop, operating on absolute values. GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 when either
// input is 0. The result is always non-negative.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}
	return l
}

const unreachable = math.MaxInt

// MinCoins returns the minimum number of coins from denoms needed to sum
// to amount, computed bottom-up over every sub-amount. Non-positive
// denominations are ignored. The second result is false when the amount
// cannot be reached (or amount is negative), in which case the count is
// meaningless.
func MinCoins(amount int, denoms []int) (int, bool) {
	if amount < 0 {
		return 0, false
	}
	if amount == 0 {
		return 0, true
	}

	var usable []int
	for _, d := range denoms {
		if d > 0 {
			usable = append(usable, d)
		}
	}
	if len(usable) == 0 {
		return 0, false
	}

	f := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		best := unreachable
		for _, d := range usable {
			if i-d >= 0 && f[i-d] != unreachable && f[i-d]+1 < best {
				best = f[i-d] + 1
			}
		}
		f[i] = best
	}
	if f[amount] == unreachable {
		return 0, false
	}
	return f[amount], true
}
