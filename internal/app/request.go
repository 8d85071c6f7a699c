package app

import (
	"strconv"
	"strings"

	"github.com/mailru/timeext/internal/pkg/arerror"
	"github.com/mailru/timeext/pkg/duration"
	"github.com/mailru/timeext/pkg/systime"
)

// Op is an operation name accepted by durcalc.
type Op string

const (
	OpMillis     Op = "millis"
	OpMul        Op = "mul"
	OpDiv        Op = "div"
	OpAdd        Op = "add"
	OpSub        Op = "sub"
	OpUnixMillis Op = "unixmillis"
)

// opArity is the number of arguments each operation takes.
var opArity = map[Op]int{
	OpMillis:     2,
	OpMul:        3,
	OpDiv:        3,
	OpAdd:        4,
	OpSub:        4,
	OpUnixMillis: 2,
}

// Request is a single parsed durcalc request.
//
// Grammar:
//
//	millis     <secs> <nanos>
//	mul|div    <secs> <nanos> <scalar>
//	add|sub    <secs> <nanos> <secs> <nanos>
//	unixmillis <unix secs> <nanos>
type Request struct {
	Op      Op
	Left    duration.Duration
	Right   duration.Duration
	Scalar  uint64
	Instant systime.Timestamp
}

// ParseRequest parses a request line.
func ParseRequest(line string) (Request, error) {
	return ParseFields(strings.Fields(line))
}

// ParseFields parses a request split into words.
func ParseFields(fields []string) (Request, error) {
	if len(fields) == 0 {
		return Request{}, &arerror.ErrParseRequest{Err: arerror.ErrBadArgs}
	}

	req := Request{Op: Op(fields[0])}
	args := fields[1:]

	arity, ok := opArity[req.Op]
	if !ok {
		return Request{}, &arerror.ErrParseRequest{Op: fields[0], Err: arerror.ErrUnknownOp}
	}

	if len(args) != arity {
		return Request{}, &arerror.ErrParseRequest{Op: fields[0], Arg: strings.Join(args, " "), Err: arerror.ErrBadArgs}
	}

	var err error

	switch req.Op {
	case OpUnixMillis:
		var sec, nsec int64

		if sec, err = parseInt(req.Op, args[0]); err != nil {
			return Request{}, err
		}

		if nsec, err = parseInt(req.Op, args[1]); err != nil {
			return Request{}, err
		}

		if req.Instant, err = systime.UnixChecked(sec, nsec); err != nil {
			return Request{}, &arerror.ErrParseRequest{Op: string(req.Op), Arg: args[0] + " " + args[1], Err: err}
		}

		return req, nil
	default:
		if req.Left, err = parseDuration(req.Op, args[0], args[1]); err != nil {
			return Request{}, err
		}
	}

	switch req.Op {
	case OpMul, OpDiv:
		req.Scalar, err = parseUint(req.Op, args[2], 64)
	case OpAdd, OpSub:
		req.Right, err = parseDuration(req.Op, args[2], args[3])
	}

	if err != nil {
		return Request{}, err
	}

	return req, nil
}

func parseUint(op Op, arg string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, bitSize)
	if err != nil {
		return 0, &arerror.ErrParseRequest{Op: string(op), Arg: arg, Err: arerror.ErrBadArgs}
	}

	return v, nil
}

func parseInt(op Op, arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &arerror.ErrParseRequest{Op: string(op), Arg: arg, Err: arerror.ErrBadArgs}
	}

	return v, nil
}

func parseDuration(op Op, secsArg, nanosArg string) (duration.Duration, error) {
	secs, err := parseUint(op, secsArg, 64)
	if err != nil {
		return duration.Duration{}, err
	}

	nanos, err := parseUint(op, nanosArg, 32)
	if err != nil {
		return duration.Duration{}, err
	}

	d, err := duration.New(secs, uint32(nanos))
	if err != nil {
		return duration.Duration{}, &arerror.ErrParseRequest{Op: string(op), Arg: secsArg + " " + nanosArg, Err: err}
	}

	return d, nil
}
