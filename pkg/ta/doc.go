// Package ta holds the pieces shared by every indicator kernel: the
// numeric constraint, the error kinds, the validation configuration and the
// validation helpers.
//
// Every indicator in the sub packages exposes three calls:
//
//	XLookback(params...) (int, error)
//	X(cfg, inputs..., params..., outputs...) error
//	XInc(cfg, newSamples..., [oldSamples...,] prevState..., params...) (output, state, error)
//
// The batch kernel X writes its first valid output at index lookback. The
// incremental kernel XInc reproduces X's output at index i from the state X
// held at i-1 in O(1). Kernels keep no state of their own; everything a
// streaming caller needs to carry is returned explicitly.
//
// Before the lookback index, outputs hold NaN when Config.FillNaN is set
// and are left untouched otherwise. A call rejected by validation writes
// nothing. With Config.CheckStructure disabled the caller guarantees equal
// lengths; an input no longer than the lookback then produces no valid output.
package ta
