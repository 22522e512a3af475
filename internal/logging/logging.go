// Package logging 构建 solloc 的诊断日志 logger。
// 日志写入 stderr，扫描结果写入 stdout，两者互不干扰。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New 根据级别和格式创建 slog.Logger。
// level 取值 debug/info/warn/error，format 取值 text/json。
func New(writer io.Writer, level string, format string) (*slog.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	handlerOpts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case "text", "":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return slog.New(handler).With("service", "solloc"), nil
}
