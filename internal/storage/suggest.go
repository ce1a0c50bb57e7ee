package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxTypoDistance bounds the edit distance accepted for near-miss names.
const maxTypoDistance = 2

// List returns the regular file names in dir, sorted.
func List(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Suggest proposes up to limit existing files that resemble path, looking in
// the directory path points into. Results keep that directory prefix.
func Suggest(path string, limit int) []string {
	if limit <= 0 || strings.TrimSpace(path) == "" {
		return nil
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	names, err := List(dir)
	if err != nil || len(names) == 0 {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}
	seen := make(map[string]struct{}, len(names))
	candidates := make([]candidate, 0, len(names))
	add := func(name string, distance int) {
		if name == base {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		candidates = append(candidates, candidate{name: name, distance: distance})
	}

	for _, rank := range fuzzy.RankFindNormalizedFold(base, names) {
		add(rank.Target, rank.Distance)
	}
	lowerBase := strings.ToLower(base)
	for _, name := range names {
		if d := fuzzy.LevenshteinDistance(lowerBase, strings.ToLower(name)); d <= maxTypoDistance {
			add(name, d)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = filepath.Join(dir, c.name)
	}
	return out
}
