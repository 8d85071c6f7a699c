package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

func TestDefaultLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level uint32
		log   func(l *DefaultLogger, ctx context.Context)
		want  string
	}{
		{
			name:  "info on info level",
			level: InfoLoggerLevel,
			log:   func(l *DefaultLogger, ctx context.Context) { l.Info(ctx, "evaluated ", 3, " requests") },
			want:  "INFO: map[app:durcalc] evaluated 3 requests",
		},
		{
			name:  "debug skipped on info level",
			level: InfoLoggerLevel,
			log:   func(l *DefaultLogger, ctx context.Context) { l.Debug(ctx, "skipped") },
			want:  "",
		},
		{
			name:  "trace on trace level",
			level: TraceLoggerLevel,
			log:   func(l *DefaultLogger, ctx context.Context) { l.Trace(ctx, "tick") },
			want:  "TRACE: map[app:durcalc] tick",
		},
		{
			name:  "error on warn level",
			level: WarnLoggerLevel,
			log:   func(l *DefaultLogger, ctx context.Context) { l.Error(ctx, "failed") },
			want:  "ERROR: map[app:durcalc] failed",
		},
		{
			name:  "warn skipped on error level",
			level: ErrorLoggerLevel,
			log:   func(l *DefaultLogger, ctx context.Context) { l.Warn(ctx, "skipped") },
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := NewLoggerTo(buf)
			l.SetLogLevel(tt.level)

			tt.log(l, context.Background())

			if tt.want == "" {
				assert.Equal(t, buf.Len(), 0)
				return
			}

			assert.Assert(t, cmp.Contains(buf.String(), tt.want))
		})
	}
}

func TestDefaultLoggerContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerTo(buf)

	ctx := l.SetLoggerValueToContext(context.Background(), ValueLogPrefix{"line": 1})
	ctx = l.SetLoggerValueToContext(ctx, ValueLogPrefix{"op": "div"})

	l.Warn(ctx, "division by zero")

	assert.Assert(t, cmp.Contains(buf.String(), "WARN: map[app:durcalc line:1 op:div] division by zero"))

	// The base logger fields are not changed by context values.
	assert.DeepEqual(t, l.Fields, ValueLogPrefix{"app": "durcalc"})
}

func TestDefaultLoggerBadContextValue(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerTo(buf)

	ctx := context.WithValue(context.Background(), ContextLogprefix, "broken")
	l.Info(ctx, "message")

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "logger.context.error:context"), out)
	assert.Assert(t, strings.Contains(out, "logger.context.valueType:string"), out)
}

func TestDefaultLoggerFatal(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerTo(buf)
	l.SetLogLevel(PanicLoggerLevel)

	exitCode := -1
	l.exit = func(code int) { exitCode = code }

	ctx := l.SetLoggerValueToContext(context.Background(), ValueLogPrefix{"op": "div"})
	l.Fatal(ctx, "can't load config")

	assert.Equal(t, exitCode, 1)
	assert.Assert(t, cmp.Contains(buf.String(), "FATAL: map[app:durcalc op:div] can't load config"))
}
