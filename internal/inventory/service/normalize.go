package service

import "strings"

// normalize — каноническая форма для всех сравнений: trim + lower.
// Пустой вход остаётся пустым.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
