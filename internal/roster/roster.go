// Package roster implements in-memory operations over the employee roster:
// an ordered list of name strings with insertion order preserved.
package roster

import "strings"

// Find returns the index of the first record that case-insensitively
// equals name, or -1 if there is no match.
func Find(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// Search returns the records whose lowercase form contains the lowercase
// query as a substring, in roster order.
func Search(names []string, query string) []string {
	queryLower := strings.ToLower(query)
	var matches []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), queryLower) {
			matches = append(matches, n)
		}
	}
	return matches
}

// Add appends name to the roster unless a case-insensitive exact
// duplicate already exists. The second return value reports whether the
// name was added.
func Add(names []string, name string) ([]string, bool) {
	if Find(names, name) >= 0 {
		return names, false
	}
	return append(names, name), true
}

// Rename replaces the first record that case-insensitively equals old
// with new, verbatim. All other records are left untouched; no duplicate
// check is made against the rest of the roster. The second return value
// reports whether a match was found.
func Rename(names []string, old, new string) ([]string, bool) {
	i := Find(names, old)
	if i < 0 {
		return names, false
	}
	renamed := make([]string, len(names))
	copy(renamed, names)
	renamed[i] = new
	return renamed, true
}
