package ta

import (
	"github.com/c9s/tacore/pkg/datatype/floats"
)

// CheckPeriod returns InvalidParameter when period is below min.
// Parameter checks run regardless of Config: they guard slice indexing.
func CheckPeriod(name string, period, min int) error {
	if period < min {
		return reject(InvalidParameter, "%s %d must be >= %d", name, period, min)
	}
	return nil
}

// CheckFastSlow validates a fast/slow period pair: both at least 2 and fast < slow.
func CheckFastSlow(fast, slow int) error {
	if err := CheckPeriod("fast period", fast, 2); err != nil {
		return err
	}
	if err := CheckPeriod("slow period", slow, 2); err != nil {
		return err
	}
	if fast >= slow {
		return reject(InvalidParameter, "fast period %d must be less than slow period %d", fast, slow)
	}
	return nil
}

// CheckSeries runs the structural checks of a batch call. input is the
// series that defines the length; others (remaining inputs and every
// output) must match it. The checks run in a fixed order: empty input,
// insufficient data, then length mismatch.
func CheckSeries[T Float](cfg Config, lookback int, input []T, others ...[]T) error {
	if !cfg.CheckStructure {
		return nil
	}

	n := len(input)
	if n == 0 {
		return reject(InvalidData, "input series is empty")
	}

	if n <= lookback {
		return reject(InsufficientData, "input length %d must be greater than lookback %d", n, lookback)
	}

	for i, s := range others {
		if len(s) != n {
			return reject(LengthMismatch, "series #%d has length %d, want %d", i+1, len(s), n)
		}
	}

	return nil
}

// CheckOptional checks output series the caller may omit. A nil series is
// skipped; any other series must have length n.
func CheckOptional[T Float](cfg Config, n int, series ...[]T) error {
	if !cfg.CheckStructure {
		return nil
	}

	for i, s := range series {
		if s != nil && len(s) != n {
			return reject(LengthMismatch, "optional series #%d has length %d, want %d", i+1, len(s), n)
		}
	}

	return nil
}

// CheckNaN scans every series for NaN.
func CheckNaN[T Float](cfg Config, series ...[]T) error {
	if !cfg.CheckNaN {
		return nil
	}

	for i, s := range series {
		if idx := floats.IndexNaN(s); idx >= 0 {
			return reject(NaNDetected, "series #%d has NaN at index %d", i, idx)
		}
	}

	return nil
}

// CheckNaNValues checks the scalar arguments of an incremental call,
// previous state included.
func CheckNaNValues[T Float](cfg Config, values ...T) error {
	if !cfg.CheckNaN {
		return nil
	}

	for i, v := range values {
		if IsNaN(v) {
			return reject(NaNDetected, "argument #%d is NaN", i)
		}
	}

	return nil
}

// FillInvalid applies the pre-lookback policy: with FillNaN every output
// gets NaN in [0, lookback), otherwise the region is left untouched.
func FillInvalid[T Float](cfg Config, lookback int, outputs ...[]T) {
	if !cfg.FillNaN {
		return
	}

	nan := NaN[T]()
	for _, out := range outputs {
		end := lookback
		if end > len(out) {
			end = len(out)
		}
		floats.Fill(out[:end], nan)
	}
}

// Ready reports whether n samples are enough to produce a valid output.
// Batch kernels use it to bail out quietly when structural checks are
// disabled and the input is too short.
func Ready(n, lookback int) bool {
	return n > lookback
}
