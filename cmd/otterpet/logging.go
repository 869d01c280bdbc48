package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/otterpet/config"
)

const logFileName = "otterpet.log"

// setupLogging builds the file logger; tcell owns the terminal so nothing goes to stdout
// Debug disabled returns a no-op logger
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", cfg.Dir, err)
	}
	logPath := filepath.Join(cfg.Dir, logFileName)
	if err := rotateLog(logPath, int64(cfg.MaxSizeMB)<<20); err != nil {
		return nil, err
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}

	return zapCfg.Build()
}

// rotateLog moves a log larger than maxSize to <path>.old, replacing any previous one
// maxSize 0 disables rotation
func rotateLog(path string, maxSize int64) error {
	if maxSize <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log %s: %w", path, err)
	}
	if info.Size() <= maxSize {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return fmt.Errorf("rotate log %s: %w", path, err)
	}
	return nil
}
