package duration

import "github.com/mailru/timeext/internal/pkg/arerror"

var (
	// ErrOverflow is returned when a result does not fit its target width.
	ErrOverflow = arerror.ErrOverflow
	// ErrDivideByZero is returned when dividing by a zero scalar.
	ErrDivideByZero = arerror.ErrDivideByZero
	// ErrNegative is returned when converting a negative time.Duration.
	ErrNegative = arerror.ErrNegative
)

// OpError describes a failed operation on a Duration.
type OpError struct {
	Op       string
	Duration Duration    `format:"%+v"`
	Operand  interface{} `format:"%v"`
	Err      error
}

func (e *OpError) Error() string {
	return arerror.ErrorBase(e)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (d Duration) opError(op string, operand interface{}, err error) *OpError {
	return &OpError{Op: op, Duration: d, Operand: operand, Err: err}
}
