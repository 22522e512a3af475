// Package config 负责加载 solloc 的配置：默认值、配置文件、环境变量。
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"solloc/internal/classifier"
)

// 默认配置值。
const (
	DefaultRoot      = "."
	DefaultExtension = ".sol"
	DefaultFormat    = "text"
	DefaultWorkers   = 1
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

var (
	validFormats    = []string{"text", "table", "json", "yaml"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Config 是 solloc 的完整配置。
type Config struct {
	Root          string            `mapstructure:"root"`
	Extensions    []string          `mapstructure:"extensions"`
	Format        string            `mapstructure:"format"`
	Output        string            `mapstructure:"output"`
	Workers       int               `mapstructure:"workers"`
	AbsolutePaths bool              `mapstructure:"absolute_paths"`
	NoColor       bool              `mapstructure:"no_color"`
	Syntax        classifier.Syntax `mapstructure:"syntax"`
	Log           LogConfig         `mapstructure:"log"`
}

// LogConfig 控制诊断日志（输出到 stderr）。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate 检查配置取值。
func (c *Config) Validate() error {
	var errs []error

	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("extensions must not be empty"))
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, errors.New("extensions must not contain empty values"))
			break
		}
	}

	if !slices.Contains(validFormats, strings.ToLower(c.Format)) {
		errs = append(errs, fmt.Errorf("unsupported format %q, allowed values: %s", c.Format, strings.Join(validFormats, ", ")))
	}

	if c.Workers <= 0 {
		errs = append(errs, errors.New("workers must be greater than 0"))
	}

	if err := c.Syntax.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("syntax: %w", err))
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("unsupported log level %q", c.Log.Level))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("unsupported log format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
