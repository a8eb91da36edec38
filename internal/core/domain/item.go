package domain

// hnItemURL is the discussion page for a story on Hacker News.
const hnItemURL = "https://news.ycombinator.com/item?id="

// Item represents a single search hit.
// Items are immutable once received from the search API.
type Item struct {
	// ObjectID uniquely identifies the hit within a ResultPage.
	ObjectID string `json:"objectID"`

	// Title is the story title. May be empty.
	Title string `json:"title"`

	// URL is the linked article. May be empty (e.g. Ask HN).
	URL string `json:"url"`

	// Author is the submitter's username.
	Author string `json:"author"`

	// NumComments is the number of comments on the story.
	NumComments int `json:"num_comments"`

	// Points is the story score.
	Points int `json:"points"`
}

// CommentsURL returns the Hacker News discussion link for the item.
func (i Item) CommentsURL() string {
	return hnItemURL + i.ObjectID
}

// ResultPage holds every hit accumulated for one query.
//
// Hits preserve arrival order: page 0's hits, then page 1's, and so on.
// Page records the highest page number successfully merged.
type ResultPage struct {
	// Hits are the accumulated search hits in arrival order.
	Hits []Item `json:"hits"`

	// Page is the last merged page number.
	Page int `json:"page"`
}

// Len returns the number of hits.
func (p ResultPage) Len() int {
	return len(p.Hits)
}

// clone returns a copy whose Hits slice does not share a backing array.
func (p ResultPage) clone() ResultPage {
	hits := make([]Item, len(p.Hits))
	copy(hits, p.Hits)
	return ResultPage{Hits: hits, Page: p.Page}
}
