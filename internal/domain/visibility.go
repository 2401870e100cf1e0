package domain

// Visible narrows a sequence of articles to the publicly visible subset,
// preserving order. It is pure and idempotent.
//
// Visibility filtering is deliberately explicit rather than baked into
// every store query: the store exposes both an all-articles entry point
// (for editorial surfaces) and published-only entry points, and callers
// pick the right one. Visible covers the cases where an all-articles
// sequence needs narrowing after the fact.
func Visible(articles []*Article) []*Article {
	visible := make([]*Article, 0, len(articles))
	for _, a := range articles {
		if a.IsVisible() {
			visible = append(visible, a)
		}
	}
	return visible
}
