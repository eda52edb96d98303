package testhelper

import (
	"math"
	"math/rand"
)

// RandomKLines builds n synthetic klines from a seeded random walk, so
// tests can run the kernels over long series without fixtures.
func RandomKLines(n int, seed int64) KLines {
	rnd := rand.New(rand.NewSource(seed))

	k := KLines{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
	}

	price := 100.0
	for i := 0; i < n; i++ {
		open := price
		price = math.Max(1, price+rnd.NormFloat64())
		k.Open[i] = open
		k.Close[i] = price
		k.High[i] = math.Max(open, price) + rnd.Float64()
		k.Low[i] = math.Min(open, price) - rnd.Float64()
		k.Volume[i] = 100 + rnd.Float64()*900
	}

	return k
}

// ToFloat32 converts s to float32.
func ToFloat32(s []float64) []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}
