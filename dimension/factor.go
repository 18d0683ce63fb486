// SPDX-License-Identifier: MIT

package dimension

import "fmt"

// factor is a positive rational num/den in lowest terms. Tile factors pick up
// a ½ when a mask was built over a doubled (two-pass) coordinate sequence.
type factor struct {
	num, den int
}

func newFactor(num, den int) factor {
	g := gcd(num, den)
	return factor{num: num / g, den: den / g}
}

// scale multiplies f by the integer k.
func (f factor) scale(k int) factor {
	return newFactor(f.num*k, f.den)
}

// integer returns f as an int when it is whole.
func (f factor) integer() (int, bool) {
	return f.num, f.den == 1
}

// times returns n·f when that product is whole.
func (f factor) times(n int) (int, bool) {
	if (n*f.num)%f.den != 0 {
		return 0, false
	}
	return n * f.num / f.den, true
}

func (f factor) String() string {
	if f.den == 1 {
		return fmt.Sprintf("%d", f.num)
	}
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
