package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	durcalc "github.com/mailru/timeext/internal/app"
	"github.com/mailru/timeext/internal/pkg/config"
	"github.com/mailru/timeext/internal/pkg/ds"
	"github.com/mailru/timeext/internal/pkg/logger"
)

// ldflags
var (
	Version     string
	BuildTime   string
	BuildOS     string
	BuildCommit string
)

var logLevels = map[string]uint32{
	"error": logger.ErrorLoggerLevel,
	"warn":  logger.WarnLoggerLevel,
	"info":  logger.InfoLoggerLevel,
	"debug": logger.DebugLoggerLevel,
	"trace": logger.TraceLoggerLevel,
}

func getAppInfo() *ds.AppInfo {
	return ds.NewAppInfo().
		WithVersion(Version).
		WithBuildTime(BuildTime).
		WithBuildOS(BuildOS).
		WithBuildCommit(BuildCommit)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] <op> <args...>

Operations:
  millis     <secs> <nanos>
  mul        <secs> <nanos> <scalar>
  div        <secs> <nanos> <scalar>
  add        <secs> <nanos> <secs> <nanos>
  sub        <secs> <nanos> <secs> <nanos>
  unixmillis <unix secs> <nanos>

With -batch requests are read from stdin, one per line.

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	ctx := context.Background()
	configPath := flag.String("config", "", "Path to yaml config")
	batch := flag.Bool("batch", false, "read requests from stdin")
	version := flag.Bool("version", false, "print version")
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("Version %s; BuildCommit: %s\n", Version, BuildCommit)
		os.Exit(0)
	}

	l := logger.NewLogger()

	var cfg config.ConfigInterface = config.NewDefaultConfig(l)

	if *configPath != "" {
		fileCfg, err := config.LoadFile(*configPath, l)
		if err != nil {
			l.Fatal(ctx, fmt.Sprintf("error load config: %s", err))
		}

		cfg = fileCfg
	}

	if levelName, ok := cfg.GetStringIfExists(ctx, "log_level"); ok {
		level, ok := logLevels[levelName]
		if !ok {
			l.Fatal(ctx, fmt.Sprintf("unknown log_level %q", levelName))
		}

		l.SetLogLevel(level)
	}

	calc, err := durcalc.Init(ctx, getAppInfo(), cfg, l)
	if err != nil {
		l.Fatal(ctx, fmt.Sprintf("error initialization: %s", err))
	}

	if *batch {
		if err := calc.RunBatch(os.Stdin, os.Stdout); err != nil {
			l.Fatal(ctx, fmt.Sprintf("error run batch: %s", err))
		}

		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	req, err := durcalc.ParseFields(flag.Args())
	if err != nil {
		l.Fatal(ctx, fmt.Sprintf("error parse request: %s", err))
	}

	if err := calc.Run(os.Stdout, req); err != nil {
		l.Fatal(ctx, fmt.Sprintf("error: %s", err))
	}
}
