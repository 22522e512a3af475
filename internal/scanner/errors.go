package scanner

import (
	"errors"
	"fmt"
)

// ErrEmptyPath 表示调用方没有给出扫描路径。
var ErrEmptyPath = errors.New("scan path is empty")

// ErrNotText 表示匹配到的文件无法按 UTF-8 文本解码（或为二进制内容）。
var ErrNotText = errors.New("file is not valid UTF-8 text")

// FileError 记录导致整次扫描失败的文件及原因。
// 扫描不会跳过任何匹配文件，否则总计会失真。
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// errStopped 用于在并发扫描提前结束时中断目录遍历，不会返回给调用方。
var errStopped = errors.New("scan stopped")
