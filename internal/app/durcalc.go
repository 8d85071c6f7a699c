// Пакет app - основной пакет приложения durcalc.
//
// Приложение вычисляет операции над длительностями:
// перевод в миллисекунды, умножение и деление на скаляр,
// сложение, вычитание и миллисекунды от эпохи.
// Запросы принимаются по одному из аргументов командной строки
// или пачкой из stdin, пачка обрабатывается параллельно.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mailru/timeext/internal/pkg/arerror"
	"github.com/mailru/timeext/internal/pkg/config"
	"github.com/mailru/timeext/internal/pkg/ds"
	"github.com/mailru/timeext/internal/pkg/logger"
	"github.com/mailru/timeext/pkg/duration"
	"github.com/mailru/timeext/pkg/systime"
)

const (
	DefaultWorkers = 4
	DefaultTimeout = 30 * time.Second
)

// Точка отсчёта для unixmillis, читается из секции epoch конфига
type Epoch struct {
	Sec  int64 `mapstructure:"sec"`
	Nsec int64 `mapstructure:"nsec"`
}

// Результат запроса. Заполнено только поле, соответствующее Op
type Result struct {
	Op       Op
	Duration duration.Duration
	Millis   uint64
	Signed   int64
}

// Структура приложения
// workers - количество параллельно вычисляемых запросов пачки
// timeout - ограничение времени на обработку всей пачки
// human - вывод чисел с разделителями разрядов
// epoch - точка отсчёта для unixmillis
type DurCalc struct {
	ctx     context.Context
	appInfo *ds.AppInfo
	logger  logger.LoggerInterface
	workers int
	timeout time.Duration
	human   bool
	epoch   systime.Timestamp
	printer *message.Printer
}

// Инициализация приложения
func Init(ctx context.Context, appInfo *ds.AppInfo, cfg config.ConfigInterface, l logger.LoggerInterface) (*DurCalc, error) {
	workers := cfg.GetInt(ctx, "workers", DefaultWorkers)
	if workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", arerror.ErrBadArgs, workers)
	}

	epoch := Epoch{}

	if _, err := cfg.GetStruct(ctx, "epoch", &epoch); err != nil {
		return nil, errors.Wrap(err, "can't read epoch")
	}

	epochTS, err := systime.UnixChecked(epoch.Sec, epoch.Nsec)
	if err != nil {
		return nil, errors.Wrap(err, "invalid epoch")
	}

	dc := &DurCalc{
		ctx:     ctx,
		appInfo: appInfo,
		logger:  l,
		workers: workers,
		timeout: cfg.GetDuration(ctx, "timeout", DefaultTimeout),
		human:   cfg.GetBool(ctx, "human", false),
		epoch:   epochTS,
		printer: message.NewPrinter(language.English),
	}

	l.Debug(ctx, fmt.Sprintf("%s started at %s: workers=%d timeout=%s human=%t", appInfo, appInfo.StartTime(), dc.workers, dc.timeout, dc.human))

	return dc, nil
}

// Вычисление одного запроса
func (a *DurCalc) Eval(req Request) (Result, error) {
	res := Result{Op: req.Op}

	var err error

	switch req.Op {
	case OpMillis:
		res.Millis, err = req.Left.AsMillis()
	case OpMul:
		res.Duration, err = req.Left.Mul(req.Scalar)
	case OpDiv:
		res.Duration, err = req.Left.Div(req.Scalar)
	case OpAdd:
		res.Duration, err = req.Left.Add(req.Right)
	case OpSub:
		res.Duration, err = req.Left.Sub(req.Right)
	case OpUnixMillis:
		res.Signed, err = systime.MillisSince(req.Instant, a.epoch)
	default:
		err = &arerror.ErrParseRequest{Op: string(req.Op), Err: arerror.ErrUnknownOp}
	}

	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// Представление результата одной строкой
func (a *DurCalc) Format(res Result) string {
	switch res.Op {
	case OpMillis:
		if a.human {
			return a.printer.Sprintf("%d ms", res.Millis)
		}

		return strconv.FormatUint(res.Millis, 10)
	case OpUnixMillis:
		if a.human {
			return a.printer.Sprintf("%d ms", res.Signed)
		}

		return strconv.FormatInt(res.Signed, 10)
	default:
		if a.human {
			return a.printer.Sprintf("%d s %d ns", res.Duration.Secs(), res.Duration.SubsecNanos())
		}

		return fmt.Sprintf("%d %d", res.Duration.Secs(), res.Duration.SubsecNanos())
	}
}

// Вычисляет запрос и пишет результат в w
func (a *DurCalc) Run(w io.Writer, req Request) error {
	ctx := a.logger.SetLoggerValueToContext(a.ctx, logger.ValueLogPrefix{"op": string(req.Op)})
	a.logger.Debug(ctx, fmt.Sprintf("evaluate %+v", req))

	res, err := a.Eval(req)
	if err != nil {
		return errors.Wrapf(err, "can't evaluate %s", req.Op)
	}

	_, err = fmt.Fprintln(w, a.Format(res))

	return errors.Wrap(err, "can't write result")
}

type batchTask struct {
	line  int
	input string
}

// Пакетная обработка. Из r читается по одному запросу на строку,
// пустые строки и строки начинающиеся с # пропускаются.
// В w пишется по одной строке результата на запрос в порядке входа.
// Ошибка отдельного запроса выводится строкой "err <причина>" и не
// прерывает пачку. Пачку прерывают ошибки ввода-вывода и завершение
// контекста, в том числе по timeout.
func (a *DurCalc) RunBatch(r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
	defer cancel()

	tasks := []batchTask{}
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		tasks = append(tasks, batchTask{line: line, input: input})
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "can't read batch")
	}

	out := make([]string, len(tasks))

	var failed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, task := range tasks {
		i, task := i, task

		g.Go(func() error {
			if err := batchAlive(gctx); err != nil {
				return err
			}

			res, err := a.evalLine(task.input)
			if err != nil {
				atomic.AddInt64(&failed, 1)

				lineErr := &arerror.ErrBatchLine{Line: task.line, Input: task.input, Err: err}
				lctx := a.logger.SetLoggerValueToContext(gctx, logger.ValueLogPrefix{"line": task.line})
				a.logger.Warn(lctx, lineErr.Error())

				out[i] = "err " + reason(err)

				return nil
			}

			out[i] = "ok " + a.Format(res)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(ctx, fmt.Sprintf("batch interrupted after %d requests: %s", len(tasks), err))

		return errors.Wrap(err, "batch interrupted")
	}

	bw := bufio.NewWriter(w)

	for _, line := range out {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return errors.Wrap(err, "can't write batch result")
		}
	}

	a.logger.Info(ctx, fmt.Sprintf("batch done: %d requests, %d failed", len(tasks), atomic.LoadInt64(&failed)))

	return errors.Wrap(bw.Flush(), "can't write batch result")
}

// Контекст с истёкшим дедлайном считается отменённым сразу,
// не дожидаясь срабатывания таймера
func batchAlive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok && !time.Now().Before(deadline) {
		return context.DeadlineExceeded
	}

	return nil
}

func (a *DurCalc) evalLine(input string) (Result, error) {
	req, err := ParseRequest(input)
	if err != nil {
		return Result{}, err
	}

	return a.Eval(req)
}

// Короткое описание ошибки для вывода в одну строку
var knownReasons = []error{
	arerror.ErrOverflow,
	arerror.ErrDivideByZero,
	arerror.ErrNegative,
	arerror.ErrUnknownOp,
	arerror.ErrBadArgs,
}

func reason(err error) string {
	for _, known := range knownReasons {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}
