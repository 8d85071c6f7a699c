package arerror

import "errors"

var ErrUnknownOp = errors.New("unknown operation")
var ErrBadArgs = errors.New("bad arguments")
var ErrConfigType = errors.New("config param has unexpected type")
var ErrConfigDecode = errors.New("config decode")

// Описание ошибки обработки строки пакетного запроса
type ErrBatchLine struct {
	Line  int    `format:"%d"`
	Input string `format:"%q"`
	Err   error
}

func (e *ErrBatchLine) Error() string {
	return ErrorBase(e)
}

func (e *ErrBatchLine) Unwrap() error {
	return e.Err
}

// Описание ошибки разбора запроса
type ErrParseRequest struct {
	Op  string
	Arg string
	Err error
}

func (e *ErrParseRequest) Error() string {
	return ErrorBase(e)
}

func (e *ErrParseRequest) Unwrap() error {
	return e.Err
}
