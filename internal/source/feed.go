package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// isArxivFeed reports whether u points at an arXiv listing (RSS or API query)
// rather than a single paper.
func isArxivFeed(u *url.URL) bool {
	return strings.HasPrefix(u.Host, "rss.") ||
		strings.HasPrefix(u.Path, "/rss/") ||
		strings.HasPrefix(u.Path, "/api/query")
}

// resolveFeed parses an arXiv RSS/Atom listing and returns one lazily
// downloaded document per entry, up to the configured feed limit.
func (r *implResolver) resolveFeed(ctx context.Context, feedURL string) ([]Document, error) {
	resp, err := r.fetcher.plain.Get(ctx, feedURL)
	if err != nil {
		return nil, &DownloadError{URL: feedURL, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{URL: feedURL, StatusCode: resp.StatusCode, Reason: "failed to fetch feed"}
	}

	feed, err := r.feedParser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	var docs []Document
	for _, item := range feed.Items {
		if r.cfg.FeedLimit > 0 && len(docs) >= r.cfg.FeedLimit {
			r.logger.Warn(ctx, "Feed has %d entries, keeping the first %d", len(feed.Items), r.cfg.FeedLimit)
			break
		}
		if item.Link == "" || !strings.Contains(item.Link, "/abs/") {
			continue
		}

		link := item.Link
		dest := filepath.Join(r.cfg.DownloadDir, arxivID(link)+DocumentExt)
		docs = append(docs, Document{
			Name: link,
			fetch: func(ctx context.Context) (string, error) {
				return r.fetcher.DownloadDirect(ctx, ArxivPDFURL(link), dest)
			},
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("feed %s contains no arXiv entries", feedURL)
	}

	r.logger.Info(ctx, "Found %d papers in feed %s", len(docs), feedURL)
	return docs, nil
}

// arxivID extracts the identifier from an abstract URL, e.g. "2410.01234v2".
func arxivID(absURL string) string {
	u, err := url.Parse(absURL)
	if err != nil {
		return "paper"
	}
	id := path.Base(u.Path)
	if id == "" || id == "." || id == "/" {
		return "paper"
	}
	return strings.ReplaceAll(id, "/", "_")
}
