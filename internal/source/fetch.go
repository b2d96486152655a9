package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/pkg/httpclient"
)

// Fetcher downloads publisher PDFs. No retries are attempted.
type Fetcher struct {
	plain   *httpclient.Client
	browser *httpclient.Client
	logger  logger.Logger
}

// NewFetcher creates a Fetcher. plain is used for direct PDF links, browser
// for landing pages and the links found on them.
func NewFetcher(plain, browser *httpclient.Client, log logger.Logger) *Fetcher {
	return &Fetcher{plain: plain, browser: browser, logger: log}
}

// DownloadDirect fetches pdfURL into dest.
func (f *Fetcher) DownloadDirect(ctx context.Context, pdfURL, dest string) (string, error) {
	if err := f.download(ctx, f.plain, pdfURL, dest); err != nil {
		return "", err
	}
	f.logger.Info(ctx, "Downloaded PDF from %s", pdfURL)
	return dest, nil
}

// DownloadScraped fetches the landing page, follows the first link whose href
// matches pattern, and saves the linked PDF into dest.
func (f *Fetcher) DownloadScraped(ctx context.Context, pageURL string, pattern *regexp.Regexp, dest string) (string, error) {
	resp, err := f.browser.Get(ctx, pageURL)
	if err != nil {
		return "", &DownloadError{URL: pageURL, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{URL: pageURL, StatusCode: resp.StatusCode, Reason: "failed to access landing page"}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse page url: %w", err)
	}

	pdfURL, err := FindLink(resp.Body, base, pattern)
	if err != nil {
		return "", &DownloadError{URL: pageURL, StatusCode: resp.StatusCode, Reason: err.Error()}
	}
	f.logger.Debug(ctx, "Found PDF link %s on %s", pdfURL, pageURL)

	if err := f.download(ctx, f.browser, pdfURL, dest); err != nil {
		return "", err
	}
	f.logger.Info(ctx, "Downloaded PDF from %s", pdfURL)
	return dest, nil
}

// FindLink returns the first <a href> matching pattern, resolved against base.
func FindLink(r io.Reader, base *url.URL, pattern *regexp.Regexp) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var href string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		h, _ := s.Attr("href")
		if pattern.MatchString(h) {
			href = h
			return false
		}
		return true
	})

	if href == "" {
		return "", fmt.Errorf("could not find a PDF link matching %q", pattern.String())
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse pdf link %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (f *Fetcher) download(ctx context.Context, client *httpclient.Client, pdfURL, dest string) error {
	resp, err := client.Get(ctx, pdfURL)
	if err != nil {
		return &DownloadError{URL: pdfURL, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &DownloadError{URL: pdfURL, StatusCode: resp.StatusCode}
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return &DownloadError{URL: pdfURL, StatusCode: resp.StatusCode, Reason: err.Error()}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}
	return nil
}
