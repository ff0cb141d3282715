package util

import (
	"strconv"
)

// ParseLimit 解析分页/截断参数，非法或非正值时回退到默认值
func ParseLimit(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
