package router

import (
	"net/url"
	"strings"

	"github.com/vcrobe/nojs-shell/runtime"
)

// route binds a path pattern to the factory of its page component.
type route struct {
	pattern string
	factory runtime.ComponentFactory
}

// matchesPattern checks if an actual path matches a route pattern.
// The pattern can contain parameters in curly braces, e.g. "/pages/detail/{id}".
func matchesPattern(pattern, path string) bool {
	pattern, path = trimPath(pattern), trimPath(path)
	if pattern == path {
		return true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if isParam(patternParts[i]) {
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}

// extractParams parses path parameters based on the route pattern.
func extractParams(pattern, path string) map[string]string {
	patternParts := strings.Split(strings.Trim(trimPath(pattern), "/"), "/")
	pathParts := strings.Split(strings.Trim(trimPath(path), "/"), "/")

	params := make(map[string]string)
	for i := range patternParts {
		if i >= len(pathParts) {
			break
		}
		if isParam(patternParts[i]) {
			params[strings.Trim(patternParts[i], "{}")] = pathParts[i]
		}
	}
	return params
}

func isParam(part string) bool {
	return strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}")
}

func trimPath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

// target is a parsed navigation URL.
type target struct {
	path     string
	fullPath string
	query    map[string]string
}

func parseTarget(raw string) (target, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return target{}, err
	}
	t := target{
		path:  trimPath("/" + strings.TrimPrefix(u.Path, "/")),
		query: make(map[string]string),
	}
	for k, v := range u.Query() {
		if len(v) > 0 {
			t.query[k] = v[0]
		}
	}
	t.fullPath = t.path
	if u.RawQuery != "" {
		t.fullPath += "?" + u.RawQuery
	}
	return t, nil
}
