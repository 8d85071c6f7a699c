// Package logger contains a leveled logger which takes extra fields from
// context.Context.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

type ctxKey uint8
type ValueLogPrefix map[string]interface{}

const (
	PanicLoggerLevel uint32 = iota
	FatalLoggerLevel
	ErrorLoggerLevel
	WarnLoggerLevel
	InfoLoggerLevel
	DebugLoggerLevel
	TraceLoggerLevel
)

const (
	ContextLogprefix ctxKey = iota
)

const (
	ValueContextErrorField = "context"
)

type LoggerInterface interface {
	SetLoggerValueToContext(ctx context.Context, addVal ValueLogPrefix) context.Context

	SetLogLevel(level uint32)
	Fatal(ctx context.Context, args ...interface{})
	Error(ctx context.Context, args ...interface{})
	Warn(ctx context.Context, args ...interface{})
	Info(ctx context.Context, args ...interface{})
	Debug(ctx context.Context, args ...interface{})
	Trace(ctx context.Context, args ...interface{})
}

type DefaultLogger struct {
	level  uint32
	out    *log.Logger
	exit   func(code int)
	Fields ValueLogPrefix
}

var _ LoggerInterface = (*DefaultLogger)(nil)

func NewLogger() *DefaultLogger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates logger writing to w.
func NewLoggerTo(w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level:  InfoLoggerLevel,
		out:    log.New(w, "", log.LstdFlags),
		exit:   os.Exit,
		Fields: ValueLogPrefix{"app": "durcalc"},
	}
}

func (l *DefaultLogger) SetLoggerValueToContext(ctx context.Context, val ValueLogPrefix) context.Context {
	ctxVal := ctx.Value(ContextLogprefix)
	if ctxVal != nil {
		lprefix, ok := ctxVal.(ValueLogPrefix)
		if !ok {
			val["logger.context.error"] = ValueContextErrorField
			val["logger.context.valueType"] = fmt.Sprintf("%T", ctxVal)
		} else {
			for k, v := range lprefix {
				if _, ok := val[k]; !ok {
					val[k] = v
				}
			}
		}
	}

	return context.WithValue(ctx, ContextLogprefix, val)
}

func (l *DefaultLogger) getLoggerFromContext(ctx context.Context) *DefaultLogger {
	nl := &DefaultLogger{
		level:  l.level,
		out:    l.out,
		exit:   l.exit,
		Fields: make(ValueLogPrefix, len(l.Fields)),
	}

	for k, v := range l.Fields {
		nl.Fields[k] = v
	}

	ctxVal := ctx.Value(ContextLogprefix)
	if ctxVal == nil {
		return nl
	}

	lprefix, ok := ctxVal.(ValueLogPrefix)
	if !ok {
		nl.Fields["logger.context.error"] = ValueContextErrorField
		nl.Fields["logger.context.valueType"] = fmt.Sprintf("%T", ctxVal)

		return nl
	}

	for k, v := range lprefix {
		nl.Fields[k] = v
	}

	return nl
}

func (l *DefaultLogger) SetLogLevel(level uint32) {
	l.level = level
}

func (l *DefaultLogger) loggerPrint(level uint32, lprefix string, args ...interface{}) {
	if l.level < level {
		return
	}

	l.out.Print(lprefix, l.Fields, " ", fmt.Sprint(args...))
}

func (l *DefaultLogger) Trace(ctx context.Context, args ...interface{}) {
	l.getLoggerFromContext(ctx).loggerPrint(TraceLoggerLevel, "TRACE: ", args...)
}

func (l *DefaultLogger) Debug(ctx context.Context, args ...interface{}) {
	l.getLoggerFromContext(ctx).loggerPrint(DebugLoggerLevel, "DEBUG: ", args...)
}

func (l *DefaultLogger) Info(ctx context.Context, args ...interface{}) {
	l.getLoggerFromContext(ctx).loggerPrint(InfoLoggerLevel, "INFO: ", args...)
}

func (l *DefaultLogger) Warn(ctx context.Context, args ...interface{}) {
	l.getLoggerFromContext(ctx).loggerPrint(WarnLoggerLevel, "WARN: ", args...)
}

func (l *DefaultLogger) Error(ctx context.Context, args ...interface{}) {
	l.getLoggerFromContext(ctx).loggerPrint(ErrorLoggerLevel, "ERROR: ", args...)
}

func (l *DefaultLogger) Fatal(ctx context.Context, args ...interface{}) {
	nl := l.getLoggerFromContext(ctx)
	nl.out.Print("FATAL: ", nl.Fields, " ", fmt.Sprint(args...))
	nl.exit(1)
}
