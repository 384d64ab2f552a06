package cmdtree

import "sort"

const maxSuggestDistance = 3

// Suggestions returns the built-in and tree tokens valid at the current
// class that sit within a small edit distance of token, closest first and
// alphabetical within equal distance. Shells use it to follow an
// unknown-token report with the likely intention.
func (c *Commander[R]) Suggestions(token string) []string {
	cur := c.Current()
	var candidates []string
	for _, bi := range c.Builtins() {
		candidates = append(candidates, bi.Token)
	}
	for _, child := range cur.classes {
		candidates = append(candidates, child.name)
	}
	for _, act := range cur.actions {
		candidates = append(candidates, act.name)
	}

	type scored struct {
		name     string
		distance int
	}
	var matches []scored
	for _, cand := range candidates {
		if d := levenshtein(token, cand); d <= maxSuggestDistance {
			matches = append(matches, scored{name: cand, distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}
