package backend

import "math"

// The data service speaks decimal currency amounts on the wire; the
// console works in integer cents (two fraction digits).

func centsFromAmount(v float64) int64 {
	return int64(math.Round(v * 100))
}

func amountFromCents(c int64) float64 {
	return float64(c) / 100
}
