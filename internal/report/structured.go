package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"solloc/internal/model"
)

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, report model.Report) error {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintYAML 把扫描结果按 YAML 输出到任意 writer。
func PrintYAML(writer io.Writer, report model.Report) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return encoder.Close()
}

// StructuredSink 在扫描结束时用给定编码函数输出完整结果。
type StructuredSink struct {
	writer io.Writer
	encode func(io.Writer, model.Report) error
}

// NewJSONSink 创建 JSON sink。
func NewJSONSink(writer io.Writer) *StructuredSink {
	return &StructuredSink{writer: writer, encode: PrintJSON}
}

// NewYAMLSink 创建 YAML sink。
func NewYAMLSink(writer io.Writer) *StructuredSink {
	return &StructuredSink{writer: writer, encode: PrintYAML}
}

// File 不做任何输出，结构化结果只在结束时整体写出。
func (s *StructuredSink) File(model.FileCount) error {
	return nil
}

// Total 写出完整结果。
func (s *StructuredSink) Total(report model.Report) error {
	return s.encode(s.writer, report)
}

// WriteFile 将结果导出到指定路径。
// .yaml/.yml 后缀导出 YAML，其余导出 JSON；目录不存在会自动创建。
func WriteFile(path string, report model.Report) error {
	var (
		content []byte
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		content, err = yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
	default:
		content, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
