package domain

import "sort"

// QueryCache maps a literal query string to its accumulated ResultPage.
//
// A QueryCache is an immutable value: MergePage and RemoveItem return a new
// cache and leave the receiver untouched. Keys are case-sensitive and never
// normalised. A query absent from the cache has never been fetched
// successfully.
type QueryCache struct {
	entries map[string]ResultPage
}

// NewQueryCache returns an empty cache.
func NewQueryCache() QueryCache {
	return QueryCache{entries: map[string]ResultPage{}}
}

// Has reports whether the query has an entry.
func (c QueryCache) Has(query string) bool {
	_, ok := c.entries[query]
	return ok
}

// Get returns a copy of the entry for query.
func (c QueryCache) Get(query string) (ResultPage, bool) {
	page, ok := c.entries[query]
	if !ok {
		return ResultPage{}, false
	}
	return page.clone(), true
}

// CurrentPage returns the last merged page for query, or -1 if the query
// has no entry.
func (c QueryCache) CurrentPage(query string) int {
	page, ok := c.entries[query]
	if !ok {
		return -1
	}
	return page.Page
}

// Len returns the number of cached queries.
func (c QueryCache) Len() int {
	return len(c.entries)
}

// Queries returns the cached query strings in lexical order.
func (c QueryCache) Queries() []string {
	queries := make([]string, 0, len(c.entries))
	for q := range c.entries {
		queries = append(queries, q)
	}
	sort.Strings(queries)
	return queries
}

// MergePage returns a cache where query's entry is replaced by the old hits
// followed by hits, with Page set to page. Hits are not de-duplicated
// against earlier pages.
func (c QueryCache) MergePage(query string, hits []Item, page int) QueryCache {
	old := c.entries[query].Hits

	merged := make([]Item, 0, len(old)+len(hits))
	merged = append(merged, old...)
	merged = append(merged, hits...)

	next := c.with()
	next.entries[query] = ResultPage{Hits: merged, Page: page}
	return next
}

// RemoveItem returns a cache where every hit with objectID is dropped from
// query's entry. A missing query or id leaves the cache unchanged.
func (c QueryCache) RemoveItem(query, objectID string) QueryCache {
	entry, ok := c.entries[query]
	if !ok {
		return c
	}

	kept := make([]Item, 0, len(entry.Hits))
	for _, item := range entry.Hits {
		if item.ObjectID != objectID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(entry.Hits) {
		return c
	}

	next := c.with()
	next.entries[query] = ResultPage{Hits: kept, Page: entry.Page}
	return next
}

// with returns a shallow copy of the cache map. ResultPage values are never
// mutated in place, so sharing them between caches is safe.
func (c QueryCache) with() QueryCache {
	entries := make(map[string]ResultPage, len(c.entries)+1)
	for q, p := range c.entries {
		entries[q] = p
	}
	return QueryCache{entries: entries}
}
