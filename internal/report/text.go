// Package report 提供 solloc 的输出能力。
// text 格式逐文件流式输出，table/json/yaml 在扫描结束后一次性输出。
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"solloc/internal/model"
)

// TextSink 逐行输出每个文件的统计结果，最后输出总计。
type TextSink struct {
	writer     io.Writer
	pathColor  *color.Color
	countColor *color.Color
	totalColor *color.Color
}

// NewTextSink 创建文本 sink。colorize 为 false 时输出纯文本。
func NewTextSink(writer io.Writer, colorize bool) *TextSink {
	sink := &TextSink{
		writer:     writer,
		pathColor:  color.New(color.FgCyan),
		countColor: color.New(color.FgGreen),
		totalColor: color.New(color.FgYellow, color.Bold),
	}

	for _, c := range []*color.Color{sink.pathColor, sink.countColor, sink.totalColor} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return sink
}

// File 输出 "File: <path>, Lines of code: <count>"。
func (s *TextSink) File(item model.FileCount) error {
	_, err := fmt.Fprintf(
		s.writer,
		"File: %s, Lines of code: %s\n",
		s.pathColor.Sprint(item.Path),
		s.countColor.Sprint(item.Lines),
	)
	return err
}

// Total 输出 "Total lines of code: <total>"。
func (s *TextSink) Total(report model.Report) error {
	_, err := fmt.Fprintf(s.writer, "Total lines of code: %s\n", s.totalColor.Sprint(report.Total))
	return err
}
