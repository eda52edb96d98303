package momentum

import (
	"github.com/c9s/tacore/pkg/ta"
)

// ROCLookback returns period. The period must be at least 1.
func ROCLookback(period int) (int, error) {
	if err := ta.CheckPeriod("period", period, 1); err != nil {
		return 0, err
	}

	return period, nil
}

// ROCPLookback returns period. The period must be at least 1.
func ROCPLookback(period int) (int, error) {
	return ROCLookback(period)
}

// changeRatio is (input - base) / base, or 0 when base is 0.
func changeRatio[T ta.Float](input, base T) T {
	if base == 0 {
		return 0
	}

	return (input - base) / base
}

func rateOfChange[T ta.Float](cfg ta.Config, input []T, period int, scale T, output []T) error {
	lookback, err := ROCLookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, input, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, input); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, output)

	for i := lookback; i < len(input); i++ {
		output[i] = changeRatio(input[i], input[i-period]) * scale
	}

	return nil
}

// ROC computes the rate of change in percent:
//
//	ROC = (input - input[i-period]) / input[i-period] * 100
//
// A zero base yields 0.
func ROC[T ta.Float](cfg ta.Config, input []T, period int, output []T) error {
	return rateOfChange(cfg, input, period, 100, output)
}

// ROCP computes the rate of change as a fraction, ROC / 100.
func ROCP[T ta.Float](cfg ta.Config, input []T, period int, output []T) error {
	return rateOfChange(cfg, input, period, 1, output)
}

// ROCInc returns the ROC of input against the sample period bars back.
func ROCInc[T ta.Float](cfg ta.Config, input, prevInput T) (T, error) {
	if err := ta.CheckNaNValues(cfg, input, prevInput); err != nil {
		return 0, err
	}

	return changeRatio(input, prevInput) * 100, nil
}

// ROCPInc returns the ROCP of input against the sample period bars back.
func ROCPInc[T ta.Float](cfg ta.Config, input, prevInput T) (T, error) {
	if err := ta.CheckNaNValues(cfg, input, prevInput); err != nil {
		return 0, err
	}

	return changeRatio(input, prevInput), nil
}
