package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level           string `yaml:"level"`
	Pretty          bool   `yaml:"pretty"`
	TargetDirectory string `yaml:"target_directory"`
	FileName        string `yaml:"file_name"`
	MaxSizeInMB     int    `yaml:"max_size_in_mb"`
	MaxBackups      int    `yaml:"max_backups"`
	MaxAgeInDays    int    `yaml:"max_age_in_days"`
	Compress        bool   `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
	file   *lumberjack.Logger
)

// InitGlobalLogger replaces the process-wide logger. Output goes to stderr and,
// when a target directory is configured, to a rotated file in it as well.
func InitGlobalLogger(cfg *Config) error {
	var writers []io.Writer

	if cfg.Pretty {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		writers = append(writers, os.Stderr)
	}

	var rotated *lumberjack.Logger
	if cfg.TargetDirectory != "" {
		name := cfg.FileName
		if name == "" {
			name = "prana.log"
		}

		if err := os.MkdirAll(cfg.TargetDirectory, 0o755); err != nil {
			return fmt.Errorf("logger: create target directory: %w", err)
		}

		rotated = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.TargetDirectory, name),
			MaxSize:    cfg.MaxSizeInMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeInDays,
			Compress:   cfg.Compress,
		}

		// An empty write opens the file, appending to an existing one.
		if _, err := rotated.Write(nil); err != nil {
			return fmt.Errorf("logger: open log file: %w", err)
		}

		writers = append(writers, rotated)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	mu.Lock()
	previous := file
	global, file = l, rotated
	mu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}

	return nil
}

// Close releases the log file, if any. Later calls log to stderr only.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	global = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if file == nil {
		return nil
	}

	err := file.Close()
	file = nil

	return err
}

func Debug(msg string, args ...any) {
	log(zerolog.DebugLevel, msg, args)
}

func Info(msg string, args ...any) {
	log(zerolog.InfoLevel, msg, args)
}

func Warn(msg string, args ...any) {
	log(zerolog.WarnLevel, msg, args)
}

func Error(msg string, args ...any) {
	log(zerolog.ErrorLevel, msg, args)
}

// log emits msg with args read as alternating key/value pairs.
func log(level zerolog.Level, msg string, args []any) {
	mu.RLock()
	l := global
	mu.RUnlock()

	e := l.WithLevel(level)
	if len(args) > 0 {
		e = e.Fields(args)
	}

	e.Msg(msg)
}
