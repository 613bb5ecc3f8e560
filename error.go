package lirs

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New].
const ErrInvalidCapacity = constError("invalid capacity")

// ErrInvalidHIRRatio may be returned from [New].
const ErrInvalidHIRRatio = constError("invalid HIR ratio")

func (errStr constError) Error() string { return string(errStr) }

func invalidCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >0 but %d was requested",
		ErrInvalidCapacity, capacity)
}

func invalidHIRRatioError(ratio float64) error {
	return fmt.Errorf(
		"%w: must be in the open interval (0,1) but %v was requested",
		ErrInvalidHIRRatio, ratio)
}
