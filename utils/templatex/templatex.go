// File: templatex.go
// Title: Template Variable Substitution
// Description: Implements simple ${name} placeholder substitution in
//              strings. Placeholders with no entry in the value map are
//              left intact so templates can be filled in several passes;
//              "$$" escapes a literal dollar sign. No other template
//              syntax is supported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with variable substitution

package templatex

import (
	"strings"
)

// Substitute replaces every ${name} placeholder that has an entry in
// values; placeholders without an entry, malformed placeholders, and bare
// dollar signs are copied through unchanged. "$$" yields a literal "$".
// A nil values map leaves all placeholders intact.
func Substitute(template string, values map[string]string) string {
	if !strings.ContainsRune(template, '$') {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))
	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == '$' {
			sb.WriteByte('$')
			i += 2
			continue
		}
		name, end := placeholderAt(template, i)
		if end < 0 {
			sb.WriteByte(c)
			i++
			continue
		}
		if v, ok := values[name]; ok {
			sb.WriteString(v)
		} else {
			sb.WriteString(template[i:end])
		}
		i = end
	}
	return sb.String()
}

// Variables returns the distinct placeholder names of the template in
// order of first appearance
func Variables(template string) []string {
	var names []string
	seen := make(map[string]struct{})
	for i := 0; i < len(template); {
		if template[i] != '$' {
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == '$' {
			i += 2
			continue
		}
		name, end := placeholderAt(template, i)
		if end < 0 {
			i++
			continue
		}
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		i = end
	}
	return names
}

// HasVariables reports whether the template contains at least one
// placeholder
func HasVariables(template string) bool {
	return len(Variables(template)) > 0
}

// IsValidVariableName reports whether name is a well-formed placeholder
// name: a letter or underscore followed by letters, digits, or
// underscores
func IsValidVariableName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// placeholderAt inspects template at the '$' at position i. It returns
// the placeholder name and the index just past the closing brace, or
// ("", -1) when no well-formed placeholder starts there.
func placeholderAt(template string, i int) (string, int) {
	if i+1 >= len(template) || template[i+1] != '{' {
		return "", -1
	}
	closing := strings.IndexByte(template[i+2:], '}')
	if closing < 0 {
		return "", -1
	}
	name := template[i+2 : i+2+closing]
	if !IsValidVariableName(name) {
		return "", -1
	}
	return name, i + 2 + closing + 1
}
