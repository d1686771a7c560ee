package node

import (
	"regexp"
	"strings"
)

// numberedPrefix 匹配行首的 "<数字>. " 编号
var numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)

// SplitNumberedLines 按行拆分模型输出：丢弃空行，去掉行首编号，去除首尾空白，保持顺序
func SplitNumberedLines(text string) []string {
	out := make([]string, 0, 8)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(numberedPrefix.ReplaceAllString(line, "")))
	}
	return out
}
