package classifier

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

// countText 是测试辅助函数，用默认语法流式统计一段文本。
func countText(t *testing.T, content string) int64 {
	t.Helper()

	count, err := New(DefaultSyntax()).Count(strings.NewReader(content))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

// TestCountLinesTrailingComment 验证空行、整行注释和行尾注释的计数。
func TestCountLinesTrailingComment(t *testing.T) {
	lines := []string{"x = 1;", "", "// comment", "y = 2; // trailing"}

	if got := New(DefaultSyntax()).CountLines(lines); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

// TestCountLinesBlockCommentDropsTail 验证块注释结束行上的代码同样被丢弃。
func TestCountLinesBlockCommentDropsTail(t *testing.T) {
	lines := []string{"/* start", "still in comment", "end */ code_here", "z = 3;"}

	if got := New(DefaultSyntax()).CountLines(lines); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

// TestCountLinesWithoutComments 验证无注释无空行时计数等于行数。
func TestCountLinesWithoutComments(t *testing.T) {
	lines := []string{
		"pragma solidity ^0.8.0;",
		"contract A {",
		"    uint256 x;",
		"}",
	}

	if got := New(DefaultSyntax()).CountLines(lines); got != int64(len(lines)) {
		t.Fatalf("expected %d, got %d", len(lines), got)
	}
}

// TestCountLinesBlankOnly 验证全空白文件计数为 0。
func TestCountLinesBlankOnly(t *testing.T) {
	lines := []string{"", "   ", "\t", " \t "}

	if got := New(DefaultSyntax()).CountLines(lines); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

// TestCountLinesUnterminatedBlock 验证未闭合块注释吞掉剩余全部行且不报错。
func TestCountLinesUnterminatedBlock(t *testing.T) {
	lines := []string{"a = 1;", "b = 2;", "/* never closed", "c = 3;", "d = 4; // x"}

	if got := New(DefaultSyntax()).CountLines(lines); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

// TestCountLinesSingleLineBlockEntersBlock 验证以 /* 开头的单行块注释同样进入块注释状态。
func TestCountLinesSingleLineBlockEntersBlock(t *testing.T) {
	lines := []string{"/** @dev note */", "uint256 a;", "uint256 b; /* tail */", "uint256 c;"}

	// uint256 a; 被当作块注释内容，uint256 b; 行包含 */ 后退出块注释。
	if got := New(DefaultSyntax()).CountLines(lines); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

// TestCountLinesSeparatorWhitespace 验证 U+001C-U+001F 与其他 Unicode 空白一样被去除。
func TestCountLinesSeparatorWhitespace(t *testing.T) {
	lines := []string{"\x1f", "\x1c  ", "\x1d\x1e", "\u00a0\u3000", "\x1c// note", "x;"}

	if got := New(DefaultSyntax()).CountLines(lines); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

// TestCountLinesInlineBlockStart 验证不在行首的 /* 不会进入块注释状态。
func TestCountLinesInlineBlockStart(t *testing.T) {
	lines := []string{"x = 1; /* note", "y = 2;"}

	if got := New(DefaultSyntax()).CountLines(lines); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

// TestCountLinesStatePerCall 验证块注释状态不会泄漏到下一次调用。
func TestCountLinesStatePerCall(t *testing.T) {
	classifier := New(DefaultSyntax())

	if got := classifier.CountLines([]string{"/* open"}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := classifier.CountLines([]string{"x = 1;"}); got != 1 {
		t.Fatalf("expected state reset, got %d", got)
	}
}

// TestCountStreamingNewlines 验证 \n、\r\n、\r 三种换行以及无结尾换行。
func TestCountStreamingNewlines(t *testing.T) {
	cases := map[string]string{
		"lf":        "a;\n// c\nb;\n",
		"crlf":      "a;\r\n// c\r\nb;",
		"cr":        "a;\r// c\rb;\r",
		"mixed":     "a;\r\n\n// c\rb;",
		"no_ending": "a;\nb;",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if got := countText(t, content); got != 2 {
				t.Fatalf("expected 2, got %d", got)
			}
		})
	}
}

// TestCountEmptyInput 验证空输入计数为 0。
func TestCountEmptyInput(t *testing.T) {
	if got := countText(t, ""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

// TestCountCustomSyntax 验证可替换的注释标记。
func TestCountCustomSyntax(t *testing.T) {
	classifier := New(Syntax{LineComment: "--", BlockStart: "{-", BlockEnd: "-}"})
	content := "{- header\n-}\nmain = 1 -- note\n-- skip\n"

	count, err := classifier.Count(strings.NewReader(content))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}

// TestCountReaderError 验证读取错误会原样返回。
func TestCountReaderError(t *testing.T) {
	readErr := errors.New("boom")

	_, err := New(DefaultSyntax()).Count(iotest.ErrReader(readErr))
	if !errors.Is(err, readErr) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

// TestSyntaxValidate 验证空标记被拒绝。
func TestSyntaxValidate(t *testing.T) {
	if err := DefaultSyntax().Validate(); err != nil {
		t.Fatalf("default syntax invalid: %v", err)
	}

	broken := DefaultSyntax()
	broken.BlockEnd = " "
	if err := broken.Validate(); err == nil {
		t.Fatalf("expected error for empty block end marker")
	}
}
