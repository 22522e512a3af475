package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"solloc/internal/model"
)

// TableSink 在扫描结束时以表格形式输出全部结果。
// 表格需要统一列宽，因此 File 阶段不输出。
type TableSink struct {
	writer io.Writer
}

// NewTableSink 创建表格 sink。
func NewTableSink(writer io.Writer) *TableSink {
	return &TableSink{writer: writer}
}

// File 不做任何输出，表格在 Total 中一次性渲染。
func (s *TableSink) File(model.FileCount) error {
	return nil
}

// Total 渲染表格。
// 扫描路径单独输出在表格上方，避免被表格宽度折行。
func (s *TableSink) Total(report model.Report) error {
	tw := table.NewWriter()
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"FILE", "LINES OF CODE"})
	for _, item := range report.Files {
		tw.AppendRow(table.Row{item.Path, formatCount(item.Lines)})
	}
	tw.AppendFooter(table.Row{
		"TOTAL (" + strings.Join(report.Extensions, ", ") + ")",
		formatCount(report.Total),
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	if _, err := fmt.Fprintf(s.writer, "SCANNED PATH: %s\n", report.ScannedPath); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.writer, tw.Render())
	return err
}

// formatCount 把行数格式化为带千分位的字符串，例如 12,345。
func formatCount(value int64) string {
	return humanize.Comma(value)
}
