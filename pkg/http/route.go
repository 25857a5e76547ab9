package http

import (
	"fmt"
	"strings"
	"unicode"

	pkgstrings "github.com/klwxsrx/farm-expense-tracker/pkg/strings"
)

const (
	routeNameNotFound         = "not_found"
	routeNameMethodNotAllowed = "method_not_allowed"
)

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		if r == '{' || r == '}' {
			return -1
		}
		return '_'
	}, strings.Trim(path, "/"))
	return pkgstrings.ToSnakeCase(fmt.Sprintf("%s_%s", method, path))
}
