// Package algolia implements driven.SearchAPI against the Hacker News
// search API hosted by Algolia (hn.algolia.com).
package algolia
