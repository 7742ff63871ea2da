package piston_fourier

import "fmt"

// DomainError reports an input outside the mathematical domain of the
// series computation: a non-positive period or a negative harmonic order.
type DomainError struct {
	Detail string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s", e.Detail)
}

func domainErrorf(format string, args ...interface{}) error {
	return &DomainError{Detail: fmt.Sprintf(format, args...)}
}

// InputShapeError reports a segment list that cannot describe one period
// of a piecewise constant function.
type InputShapeError struct {
	Detail string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("input shape error: %s", e.Detail)
}

func shapeErrorf(format string, args ...interface{}) error {
	return &InputShapeError{Detail: fmt.Sprintf(format, args...)}
}
