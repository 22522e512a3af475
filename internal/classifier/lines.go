package classifier

import (
	"strings"
	"unicode"
)

// splitLines 把 ReadString('\n') 读到的一段内容拆成逻辑行。
// 兼容 \n、\r\n 以及单独的 \r 换行。
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	if !strings.Contains(chunk, "\r") {
		return []string{chunk}
	}
	return strings.Split(chunk, "\r")
}

// isStripSpace 判断字符是否属于行首尾需要去除的空白。
// 除 unicode.IsSpace 外，还包括 U+001C-U+001F 四个信息分隔符。
func isStripSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// trimLine 去除行首尾空白。
func trimLine(line string) string {
	return strings.TrimFunc(line, isStripSpace)
}
