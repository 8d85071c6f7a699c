package arerror

import "errors"

var ErrOverflow = errors.New("arithmetic overflow")
var ErrDivideByZero = errors.New("division by zero")
var ErrNegative = errors.New("negative duration")
