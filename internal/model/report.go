// Package model 定义 solloc 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// FileCount 表示单文件扫描结果：路径与有效代码行数。
type FileCount struct {
	Path  string `json:"path" yaml:"path"`
	Lines int64  `json:"lines" yaml:"lines"`
}

// Report 是一次扫描的完整输出模型。
//
// 注意：
// - Files 按遍历顺序追加，不做排序
// - Total 始终等于 Files 中全部 Lines 之和，只能通过 Add 累加
type Report struct {
	ScannedPath string      `json:"scanned_path" yaml:"scanned_path"`
	Extensions  []string    `json:"extensions" yaml:"extensions"`
	Files       []FileCount `json:"files" yaml:"files"`
	Total       int64       `json:"total" yaml:"total"`
}

// Add 记录一个文件的结果并累加到总计中。
func (r *Report) Add(item FileCount) {
	r.Files = append(r.Files, item)
	r.Total += item.Lines
}

// SumFiles 重新计算全部文件行数之和，用于校验总计。
func (r Report) SumFiles() int64 {
	var sum int64
	for _, item := range r.Files {
		sum += item.Lines
	}
	return sum
}
