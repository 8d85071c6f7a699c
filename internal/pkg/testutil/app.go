package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/mailru/timeext/internal/pkg/config"
	"github.com/mailru/timeext/internal/pkg/ds"
	"github.com/mailru/timeext/internal/pkg/logger"
)

var TestAppInfo = *ds.NewAppInfo().
	WithBuildOS(runtime.GOOS).
	WithBuildTime(time.Now().String()).
	WithVersion("1.0").
	WithBuildCommit("nocommit")

type Tmps struct {
	dirs []string
}

func InitTmps() *Tmps {
	return &Tmps{
		dirs: []string{},
	}
}

func (tmp *Tmps) AddTempDir(basepath ...string) (string, error) {
	rootTmpDir := os.TempDir()
	if len(basepath) > 0 {
		rootTmpDir = basepath[0]
	}

	newTempDir, err := os.MkdirTemp(rootTmpDir, "durcalc_testdir*")
	if err != nil {
		return "", fmt.Errorf("can't create temp dir for test: %s", err)
	}

	tmp.dirs = append(tmp.dirs, newTempDir)

	return newTempDir, nil
}

// WriteConfig stores yaml config into a new temp dir and returns its path.
func (tmp *Tmps) WriteConfig(content string) (string, error) {
	dir, err := tmp.AddTempDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "durcalc.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("can't write test config: %w", err)
	}

	return path, nil
}

func (tmp *Tmps) Defer() {
	for _, dir := range tmp.dirs {
		os.RemoveAll(dir)
	}
}

// NewTestLogger returns a logger writing into the returned buffer at the
// given level.
func NewTestLogger(level uint32) (*logger.DefaultLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logger.NewLoggerTo(buf)
	l.SetLogLevel(level)

	return l, buf
}

// NewTestConfig loads yaml config content through a temp file.
func NewTestConfig(tmp *Tmps, content string, l logger.LoggerInterface) (*config.DefaultConfig, error) {
	path, err := tmp.WriteConfig(content)
	if err != nil {
		return nil, err
	}

	return config.LoadFile(path, l)
}
