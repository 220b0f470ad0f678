// Package util provides common utility functions used across the codebase.
package util

import (
	"strconv"
	"strings"
)

// ParsePorts extracts valid TCP/UDP port numbers from a free-form string.
// Tokens are separated by commas and/or whitespace; non-numeric and
// out-of-range tokens are silently discarded. Duplicates are kept in first
// appearance order only.
func ParsePorts(input string) []int {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	seen := make(map[int]bool)
	var ports []int
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 1 || n > 65535 {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		ports = append(ports, n)
	}
	return ports
}

// SplitItems splits a comma/whitespace separated list into trimmed,
// non-empty items.
func SplitItems(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	var items []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			items = append(items, f)
		}
	}
	return items
}

// JoinPorts renders a port list as "80, 443".
func JoinPorts(ports []int) string {
	strs := make([]string, len(ports))
	for i, p := range ports {
		strs[i] = strconv.Itoa(p)
	}
	return strings.Join(strs, ", ")
}

// JoinOrDefault joins strings with ", " or returns the default value for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
