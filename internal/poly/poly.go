// Package poly implements the per-byte polynomial encode/decode that
// underlies the column-wise Shamir scheme: Encode evaluates a random
// degree-(k-1) polynomial at x=1..n for one secret byte, Decode recovers
// the constant term via Lagrange interpolation at x=0.
package poly

import "github.com/mrz1836/shamir-merkle/internal/gf256"

// Encode evaluates p(x) = constant + coeffs[0]*x + coeffs[1]*x^2 + ...
// at x = 1..n using Horner's method, returning one byte per share index.
// len(coeffs) must equal k-1 for a threshold-k scheme; Encode itself is
// agnostic to k and simply uses len(coeffs)+1 as the polynomial degree+1.
func Encode(constant byte, coeffs []byte, n int) []byte {
	out := make([]byte, n)
	for x := 1; x <= n; x++ {
		out[x-1] = eval(constant, coeffs, byte(x))
	}
	return out
}

// eval evaluates the polynomial at a single point using Horner's method:
// p(x) = constant + x*(coeffs[0] + x*(coeffs[1] + ...)).
func eval(constant byte, coeffs []byte, x byte) byte {
	var acc byte
	for j := len(coeffs) - 1; j >= 0; j-- {
		acc = gf256.Add(gf256.Mul(acc, x), coeffs[j])
	}
	return gf256.Add(constant, gf256.Mul(acc, x))
}

// Point is one (x, y) sample used as interpolation input.
type Point struct {
	X byte
	Y byte
}

// Decode recovers p(0) via Lagrange interpolation over GF(2^8) given k
// points with distinct, nonzero X values. Callers (the reconstructor, by
// way of the validator) must guarantee distinctness and non-zeroness;
// Decode does not re-check them.
func Decode(points []Point) byte {
	var secret byte
	for j, pj := range points {
		weight := byte(1)
		for m, pm := range points {
			if m == j {
				continue
			}
			// weight *= x_m / (x_m - x_j)
			numerator := pm.X
			denominator := gf256.Sub(pm.X, pj.X)
			weight = gf256.Mul(weight, gf256.Div(numerator, denominator))
		}
		secret = gf256.Add(secret, gf256.Mul(pj.Y, weight))
	}
	return secret
}
