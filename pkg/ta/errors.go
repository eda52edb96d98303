package ta

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrorKind classifies every error returned by a kernel.
// The kinds themselves implement error, so kernels wrap them with context
// and callers match them with errors.Is.
type ErrorKind int

const (
	// InvalidData means a required series is empty.
	InvalidData ErrorKind = iota + 1

	// LengthMismatch means two series that must co-vary in length do not.
	LengthMismatch

	// InsufficientData means the input is not longer than the lookback.
	InsufficientData

	// InvalidParameter means a parameter is outside its valid domain.
	InvalidParameter

	// NaNDetected means a NaN reached a point where the configuration forbids it.
	NaNDetected
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidData:
		return "InvalidData"
	case LengthMismatch:
		return "LengthMismatch"
	case InsufficientData:
		return "InsufficientData"
	case InvalidParameter:
		return "InvalidParameter"
	case NaNDetected:
		return "NaNDetected"
	}

	return "Unknown"
}

func (k ErrorKind) Error() string {
	switch k {
	case InvalidData:
		return "invalid data: empty input"
	case LengthMismatch:
		return "length mismatch"
	case InsufficientData:
		return "insufficient data"
	case InvalidParameter:
		return "invalid parameter"
	case NaNDetected:
		return "nan detected"
	}

	return "unknown error"
}

// KindOf returns the ErrorKind carried by err, or 0 when err does not carry one.
func KindOf(err error) ErrorKind {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}

	return 0
}

// reject wraps kind with a formatted message and logs the rejection at debug level.
func reject(kind ErrorKind, format string, args ...interface{}) error {
	err := errors.Wrapf(kind, format, args...)
	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.WithField("kind", kind.String()).Debug(err.Error())
	}
	return err
}

// Errorf wraps kind with a formatted message. Indicator packages use it for
// parameter domains the shared validators do not cover.
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	return reject(kind, format, args...)
}
