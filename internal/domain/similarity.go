package domain

import "sort"

// DefaultSimilarLimit is the number of related articles returned when the
// caller does not ask for a specific count.
const DefaultSimilarLimit = 4

// SimilarArticles ranks candidates by how many tags they share with target.
//
// Candidates are expected to be visible articles; the caller applies
// visibility filtering first. The target itself and candidates with no
// tag overlap are dropped. Shared tags are counted as set-intersection
// size: a tag contributes once no matter how often it appears.
//
// Ordering: shared-tag count descending, then publish date descending.
// The sort is stable over the input order, so fixed inputs produce an
// exact output sequence.
func SimilarArticles(target *Article, candidates []*Article, limit int) []*Article {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	if target == nil || len(target.TagIDs) == 0 {
		return []*Article{}
	}

	targetTags := make(map[string]struct{}, len(target.TagIDs))
	for _, id := range target.TagIDs {
		targetTags[id] = struct{}{}
	}

	type scored struct {
		article *Article
		shared  int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		shared := 0
		seen := make(map[string]struct{}, len(c.TagIDs))
		for _, id := range c.TagIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if _, ok := targetTags[id]; ok {
				shared++
			}
		}
		if shared == 0 {
			continue
		}
		ranked = append(ranked, scored{article: c, shared: shared})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].shared != ranked[j].shared {
			return ranked[i].shared > ranked[j].shared
		}
		return ranked[i].article.PublishedAt.After(ranked[j].article.PublishedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]*Article, len(ranked))
	for i, r := range ranked {
		result[i] = r.article
	}
	return result
}

// SharedTagCount returns the size of the tag-set intersection between two
// articles.
func SharedTagCount(a, b *Article) int {
	if a == nil || b == nil {
		return 0
	}
	set := make(map[string]struct{}, len(a.TagIDs))
	for _, id := range a.TagIDs {
		set[id] = struct{}{}
	}
	count := 0
	seen := make(map[string]struct{}, len(b.TagIDs))
	for _, id := range b.TagIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := set[id]; ok {
			count++
		}
	}
	return count
}
