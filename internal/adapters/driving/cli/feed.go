package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/feeds"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// hnSearchPage is the public search UI for a query.
const hnSearchPage = "https://hn.algolia.com/?q="

// buildFeed renders a snapshot as a syndication feed.
func buildFeed(snap domain.Snapshot, now time.Time) *feeds.Feed {
	link := hnSearchPage + url.QueryEscape(snap.Query)

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Hacker News: %s", snap.Query),
		Description: fmt.Sprintf("Hacker News stories matching %q", snap.Query),
		Link:        &feeds.Link{Href: link, Rel: "alternate", Type: "text/html"},
		Id:          link,
		Created:     now,
		Updated:     now,
	}

	feed.Items = make([]*feeds.Item, 0, len(snap.Hits))
	for _, hit := range snap.Hits {
		itemLink := hit.URL
		if itemLink == "" {
			itemLink = hit.CommentsURL()
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:      hit.CommentsURL(),
			Title:   hit.Title,
			Link:    &feeds.Link{Href: itemLink},
			Source:  &feeds.Link{Href: hit.CommentsURL()},
			Author:  &feeds.Author{Name: hit.Author},
			Created: now,
			Description: fmt.Sprintf(`%d points, %d comments. <a href="%s">Discussion</a>`,
				hit.Points, hit.NumComments, hit.CommentsURL()),
		})
	}

	return feed
}

func outputSearchFeed(cmd *cobra.Command, snap domain.Snapshot, format string) error {
	feed := buildFeed(snap, time.Now())

	var (
		out string
		err error
	)
	if format == formatRSS {
		out, err = feed.ToRss()
	} else {
		out, err = feed.ToAtom()
	}
	if err != nil {
		return fmt.Errorf("failed to render %s feed: %w", format, err)
	}

	cmd.Println(out)
	return nil
}
