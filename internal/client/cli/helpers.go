package cli

import (
	"os"
	"strings"
)

func passwordFromEnv() bool {
	return os.Getenv("BLOODLINK_PASSWORD") != ""
}

// matchesQuery - регистронезависимый поиск подстроки для фильтров списков
func matchesQuery(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}
