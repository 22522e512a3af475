package report

import (
	"fmt"
	"io"
	"strings"

	"solloc/internal/scanner"
)

// Formats 是支持的输出格式。
var Formats = []string{"text", "table", "json", "yaml"}

// NewSink 根据格式名创建 sink。
func NewSink(format string, writer io.Writer, colorize bool) (scanner.Sink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return NewTextSink(writer, colorize), nil
	case "table":
		return NewTableSink(writer), nil
	case "json":
		return NewJSONSink(writer), nil
	case "yaml":
		return NewYAMLSink(writer), nil
	default:
		return nil, fmt.Errorf("unsupported format %q, allowed values: %s", format, strings.Join(Formats, ", "))
	}
}
