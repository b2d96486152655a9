package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DocumentExt is the extension of processable documents. Matching is case-sensitive.
const DocumentExt = ".pdf"

type strategy int

const (
	directPDF strategy = iota
	scrapeLink
)

// publisher maps a host substring to the way its PDFs are fetched.
type publisher struct {
	host     string
	strategy strategy
	link     *regexp.Regexp
}

var publishers = []publisher{
	{host: "arxiv.org", strategy: directPDF},
	{host: "ieeexplore.ieee.org", strategy: scrapeLink, link: regexp.MustCompile(`pdf`)},
	{host: "dl.acm.org", strategy: scrapeLink, link: regexp.MustCompile(`/doi/pdf/`)},
}

// Classify determines the kind of a user-supplied reference.
func Classify(input string) Reference {
	if isURL(input) {
		return Reference{Raw: input, Kind: KindRemote}
	}

	info, err := os.Stat(input)
	switch {
	case err != nil:
		return Reference{Raw: input, Kind: KindInvalid}
	case info.IsDir():
		return Reference{Raw: input, Kind: KindDirectory}
	case info.Mode().IsRegular() && strings.HasSuffix(input, DocumentExt):
		return Reference{Raw: input, Kind: KindFile}
	default:
		return Reference{Raw: input, Kind: KindInvalid}
	}
}

func isURL(input string) bool {
	u, err := url.Parse(input)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (r *implResolver) Resolve(ctx context.Context, input string) ([]Document, error) {
	ref := Classify(input)
	r.logger.Debug(ctx, "Classified %q as %s", input, ref.Kind)

	switch ref.Kind {
	case KindDirectory:
		return r.listDirectory(ctx, input)
	case KindFile:
		return []Document{Local(input)}, nil
	case KindRemote:
		return r.ResolveRemote(ctx, input)
	default:
		return nil, &InvalidInputError{Input: input}
	}
}

// listDirectory returns the immediate PDF entries of dir in listing order.
func (r *implResolver) listDirectory(ctx context.Context, dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), DocumentExt) {
			continue
		}
		docs = append(docs, Local(filepath.Join(dir, e.Name())))
	}

	r.logger.Info(ctx, "Found %d PDF files in %s", len(docs), dir)
	return docs, nil
}

func (r *implResolver) ResolveRemote(ctx context.Context, rawURL string) ([]Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !isURL(rawURL) {
		return nil, &UnsupportedURLError{URL: rawURL}
	}

	pub, ok := matchPublisher(u.Host)
	if !ok {
		return nil, &UnsupportedURLError{URL: rawURL}
	}

	if pub.strategy == directPDF && isArxivFeed(u) {
		return r.resolveFeed(ctx, rawURL)
	}

	dest := filepath.Join(r.cfg.DownloadDir, r.cfg.DownloadPath)
	doc := Document{
		Name: rawURL,
		fetch: func(ctx context.Context) (string, error) {
			if pub.strategy == directPDF {
				return r.fetcher.DownloadDirect(ctx, ArxivPDFURL(rawURL), dest)
			}
			return r.fetcher.DownloadScraped(ctx, rawURL, pub.link, dest)
		},
	}
	return []Document{doc}, nil
}

func matchPublisher(host string) (publisher, bool) {
	for _, p := range publishers {
		if strings.Contains(host, p.host) {
			return p, true
		}
	}
	return publisher{}, false
}

// ArxivPDFURL rewrites an arXiv abstract URL into its PDF URL.
func ArxivPDFURL(absURL string) string {
	return strings.ReplaceAll(absURL, "/abs/", "/pdf/") + DocumentExt
}
