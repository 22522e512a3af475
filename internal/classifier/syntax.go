package classifier

import (
	"errors"
	"strings"
)

// Syntax 描述一种简单的行注释 + 块注释语法。
// 分类器只认这三个标记，不识别字符串字面量或嵌套注释。
type Syntax struct {
	LineComment string `mapstructure:"line_comment"`
	BlockStart  string `mapstructure:"block_start"`
	BlockEnd    string `mapstructure:"block_end"`
}

// DefaultSyntax 返回 Solidity/C 风格的注释标记。
func DefaultSyntax() Syntax {
	return Syntax{
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
	}
}

// Validate 校验三个标记均非空。
// 空标记会让 strings.HasPrefix / strings.Contains 对任何行都成立。
func (s Syntax) Validate() error {
	if strings.TrimSpace(s.LineComment) == "" {
		return errors.New("line comment marker is empty")
	}
	if strings.TrimSpace(s.BlockStart) == "" {
		return errors.New("block comment start marker is empty")
	}
	if strings.TrimSpace(s.BlockEnd) == "" {
		return errors.New("block comment end marker is empty")
	}
	return nil
}
