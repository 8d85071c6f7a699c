// Package config provides map-backed configuration loaded from YAML files.
//
// Nested keys are addressed with slash separated paths, e.g. "epoch/sec".
package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mailru/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/mailru/timeext/internal/pkg/arerror"
	"github.com/mailru/timeext/internal/pkg/logger"
)

const pathSeparator = "/"

type ConfigInterface interface {
	GetBool(ctx context.Context, confPath string, dfl ...bool) bool
	GetBoolIfExists(ctx context.Context, confPath string) (value bool, ok bool)
	GetInt(ctx context.Context, confPath string, dfl ...int) int
	GetIntIfExists(ctx context.Context, confPath string) (int, bool)
	GetDuration(ctx context.Context, confPath string, dfl ...time.Duration) time.Duration
	GetDurationIfExists(ctx context.Context, confPath string) (time.Duration, bool)
	GetString(ctx context.Context, confPath string, dfl ...string) string
	GetStringIfExists(ctx context.Context, confPath string) (string, bool)
	GetStruct(ctx context.Context, confPath string, valuePtr interface{}) (bool, error)
	GetLastUpdateTime() time.Time
}

type DefaultConfig struct {
	cfg     map[string]interface{}
	created time.Time
	logger  logger.LoggerInterface
}

var _ ConfigInterface = (*DefaultConfig)(nil)

func NewDefaultConfig(l logger.LoggerInterface) *DefaultConfig {
	return NewDefaultConfigFromMap(make(map[string]interface{}), l)
}

func NewDefaultConfigFromMap(cfg map[string]interface{}, l logger.LoggerInterface) *DefaultConfig {
	return &DefaultConfig{
		cfg:     cfg,
		created: time.Now(),
		logger:  l,
	}
}

// LoadFile reads YAML configuration from path.
func LoadFile(path string, l logger.LoggerInterface) (*DefaultConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config %s: %w", path, err)
	}

	return Load(data, l)
}

// Load parses YAML configuration.
func Load(data []byte, l logger.LoggerInterface) (*DefaultConfig, error) {
	cfg := make(map[string]interface{})

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", arerror.ErrConfigDecode, err)
	}

	return NewDefaultConfigFromMap(cfg, l), nil
}

func (dc *DefaultConfig) GetLastUpdateTime() time.Time {
	return dc.created
}

func (dc *DefaultConfig) lookup(confPath string) (interface{}, bool) {
	var cur interface{} = dc.cfg

	for _, key := range strings.Split(confPath, pathSeparator) {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}

		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}

	return cur, true
}

func (dc *DefaultConfig) warnType(ctx context.Context, confPath string, param interface{}, want string) {
	dc.logger.Warn(ctx, fmt.Sprintf("%s: param %s has type %T, want %s", arerror.ErrConfigType, confPath, param, want))
}

func (dc *DefaultConfig) GetBool(ctx context.Context, confPath string, dfl ...bool) bool {
	if ret, ok := dc.GetBoolIfExists(ctx, confPath); ok {
		return ret
	}

	if len(dfl) != 0 {
		return dfl[0]
	}

	return false
}

func (dc *DefaultConfig) GetBoolIfExists(ctx context.Context, confPath string) (value bool, ok bool) {
	if param, ex := dc.lookup(confPath); ex {
		if ret, ok := param.(bool); ok {
			return ret, true
		}

		dc.warnType(ctx, confPath, param, "bool")
	}

	return false, false
}

func (dc *DefaultConfig) GetInt(ctx context.Context, confPath string, dfl ...int) int {
	if ret, ok := dc.GetIntIfExists(ctx, confPath); ok {
		return ret
	}

	if len(dfl) != 0 {
		return dfl[0]
	}

	return 0
}

func (dc *DefaultConfig) GetIntIfExists(ctx context.Context, confPath string) (int, bool) {
	if param, ex := dc.lookup(confPath); ex {
		if ret, ok := param.(int); ok {
			return ret, true
		}

		dc.warnType(ctx, confPath, param, "int")
	}

	return 0, false
}

func (dc *DefaultConfig) GetDuration(ctx context.Context, confPath string, dfl ...time.Duration) time.Duration {
	if ret, ok := dc.GetDurationIfExists(ctx, confPath); ok {
		return ret
	}

	if len(dfl) != 0 {
		return dfl[0]
	}

	return 0
}

// GetDurationIfExists accepts time.Duration values and strings in
// time.ParseDuration format.
func (dc *DefaultConfig) GetDurationIfExists(ctx context.Context, confPath string) (time.Duration, bool) {
	if param, ex := dc.lookup(confPath); ex {
		switch ret := param.(type) {
		case time.Duration:
			return ret, true
		case string:
			d, err := time.ParseDuration(ret)
			if err == nil {
				return d, true
			}

			dc.logger.Warn(ctx, fmt.Sprintf("param %s: %s", confPath, err))

			return 0, false
		}

		dc.warnType(ctx, confPath, param, "time.Duration")
	}

	return 0, false
}

func (dc *DefaultConfig) GetString(ctx context.Context, confPath string, dfl ...string) string {
	if ret, ok := dc.GetStringIfExists(ctx, confPath); ok {
		return ret
	}

	if len(dfl) != 0 {
		return dfl[0]
	}

	return ""
}

func (dc *DefaultConfig) GetStringIfExists(ctx context.Context, confPath string) (string, bool) {
	if param, ex := dc.lookup(confPath); ex {
		if ret, ok := param.(string); ok {
			return ret, true
		}

		dc.warnType(ctx, confPath, param, "string")
	}

	return "", false
}

// GetStruct decodes the value at confPath into valuePtr. It returns false if
// the path does not exist.
func (dc *DefaultConfig) GetStruct(ctx context.Context, confPath string, valuePtr interface{}) (bool, error) {
	param, ex := dc.lookup(confPath)
	if !ex {
		return false, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// Неиспользованные при декодировании поля считаются ошибкой
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           valuePtr,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", arerror.ErrConfigDecode, err)
	}

	if err = decoder.Decode(param); err != nil {
		return false, fmt.Errorf("%w: %s: %v", arerror.ErrConfigDecode, confPath, err)
	}

	return true, nil
}
