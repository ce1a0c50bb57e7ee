package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggestions tracks the filenames offered while typing a load target.
type Suggestions struct {
	Full  []string
	Items []string
	Query string
}

// NewSuggestions starts with every name visible.
func NewSuggestions(names []string) *Suggestions {
	s := &Suggestions{Full: cloneNames(names)}
	s.SetQuery("")
	return s
}

// SetQuery narrows the visible names to those matching query.
func (s *Suggestions) SetQuery(query string) {
	s.Query = query
	s.Items = FilterNames(s.Full, query)
}

// Best returns the strongest match for the current query.
func (s *Suggestions) Best() (string, bool) {
	idx := BestMatchIndex(s.Items, s.Query)
	if idx < 0 {
		return "", false
	}
	return s.Items[idx], true
}

// FilterNames returns names matching the supplied query, fuzzy first and
// plain substring as a fallback.
func FilterNames(names []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneNames(names)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]string, 0, len(matches))
		for idx, name := range names {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, name)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among names.
func BestMatchIndex(names []string, query string) int {
	if len(names) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return i
		}
	}
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}

func cloneNames(names []string) []string {
	dup := make([]string, len(names))
	copy(dup, names)
	return dup
}
