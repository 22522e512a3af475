// Package classifier 提供基于行的注释剥离与有效代码行计数。
// 该层只关心文本内容，不负责文件遍历和编码检查。
package classifier

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Classifier 按给定注释语法统计有效代码行。
// Classifier 本身无状态，可在多个 goroutine 间共享。
type Classifier struct {
	syntax Syntax
}

// New 创建分类器。
func New(syntax Syntax) *Classifier {
	return &Classifier{syntax: syntax}
}

// Syntax 返回当前使用的注释语法。
func (c *Classifier) Syntax() Syntax {
	return c.syntax
}

// CountLines 统计一组已经切分好的行。
func (c *Classifier) CountLines(lines []string) int64 {
	engine := &lineState{syntax: c.syntax}

	var count int64
	for _, line := range lines {
		if engine.significant(line) {
			count++
		}
	}
	return count
}

// Count 流式读取 reader 并统计有效代码行。
// 返回的错误只来自 reader 本身，分类过程不会失败。
func (c *Classifier) Count(reader io.Reader) (int64, error) {
	engine := &lineState{syntax: c.syntax}
	bufferedReader := bufio.NewReader(reader)

	var count int64
	for {
		chunk, err := bufferedReader.ReadString('\n')
		if errors.Is(err, io.EOF) && len(chunk) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return count, err
		}

		for _, line := range splitLines(chunk) {
			if engine.significant(line) {
				count++
			}
		}

		// 最后一行即使没有换行，也已完成统计。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return count, nil
}

// lineState 保存单个文件扫描期间的块注释状态。
// 每次 Count/CountLines 调用都会新建，不跨文件共享。
type lineState struct {
	syntax         Syntax
	inBlockComment bool
}

// significant 判断一行是否计入有效代码行，并推进块注释状态。
//
// 约束说明：
// - 块注释中的行一律丢弃，包括结束标记之后的内容
// - 以块注释开始标记开头的行进入块注释状态，即使同一行已经出现结束标记
// - 行中出现行注释标记时截断后仍计 1 行
func (e *lineState) significant(line string) bool {
	trimmed := trimLine(line)
	if trimmed == "" {
		return false
	}

	if e.inBlockComment {
		if strings.Contains(trimmed, e.syntax.BlockEnd) {
			e.inBlockComment = false
		}
		return false
	}

	if strings.HasPrefix(trimmed, e.syntax.BlockStart) {
		e.inBlockComment = true
		return false
	}

	if strings.HasPrefix(trimmed, e.syntax.LineComment) {
		return false
	}

	// 行尾注释（x = 1; // note）截断后仍计 1 行，与纯代码行相同。
	return true
}
