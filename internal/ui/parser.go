package ui

import (
	"fmt"
	"strings"
)

// ParseCSS parses a primitive CSS file: selectors .class or #id (comma-separated lists allowed)
// and blocks of "key: value;". No combinators, no @rules. Later rules override earlier for the
// same selector. An unterminated block is an error.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: nil}
	content = stripCSSComments(content)
	for {
		rules, rest, ok := parseOneRule(content)
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	if strings.Contains(content, "{") {
		return sheet, fmt.Errorf("css: unterminated block near %q", snippet(content))
	}
	return sheet, nil
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	return s
}

func stripCSSComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < len(s) {
				j += 2
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseOneRule finds the next "selector[, selector] { ... }" and returns one rule per valid
// selector and the rest of the string. Blocks with no valid selector are skipped. On an
// unterminated block it returns ok false and leaves s as the rest.
func parseOneRule(s string) ([]Rule, string, bool) {
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			return nil, s, false
		}
		close := findMatchingBrace(s, open)
		if close == -1 {
			return nil, s, false
		}
		var selectors []string
		for _, sel := range strings.Split(s[:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') {
				selectors = append(selectors, sel)
			}
		}
		rest := strings.TrimSpace(s[close+1:])
		if len(selectors) == 0 {
			s = rest
			continue
		}
		props := parseDeclarations(strings.TrimSpace(s[open+1 : close]))
		rules := make([]Rule, len(selectors))
		for i, sel := range selectors {
			rules[i] = Rule{Selector: sel, Props: props}
		}
		return rules, rest, true
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
