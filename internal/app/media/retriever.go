package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrSourceNotFound reports that the source location resolved but the media
// behind it does not exist (HTTP 404, missing object, absent file).
var ErrSourceNotFound = errors.New("source media not found")

// Retriever copies the bytes behind a video's source location into a staging
// directory owned by the caller.
type Retriever interface {
	Fetch(ctx context.Context, source string, destDir string) (string, int64, error)
}

// HTTPRetriever fetches media over http(s), with optional s3:// support when
// an ObjectStorage is attached. When an http source responds with an HTML page
// instead of media bytes, the real media URL is resolved from its
// og:video/og:audio meta tags.
type HTTPRetriever struct {
	client  *http.Client
	objects *ObjectStorage
}

// NewHTTPRetriever builds a retriever. objects may be nil; s3:// sources then
// fail with a configuration error.
func NewHTTPRetriever(objects *ObjectStorage) *HTTPRetriever {
	return &HTTPRetriever{
		client:  &http.Client{Timeout: 0}, // deadlines come from the caller's context
		objects: objects,
	}
}

// Fetch downloads source into destDir and returns the staged path and byte
// count. A partially written file is removed before any error is returned, so
// the caller never inherits a half-written artifact as staged.
func (r *HTTPRetriever) Fetch(ctx context.Context, source string, destDir string) (string, int64, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", 0, fmt.Errorf("invalid source location %q: %w", source, err)
	}

	switch u.Scheme {
	case "http", "https":
		return r.fetchHTTP(ctx, source, destDir)
	case "s3":
		if r.objects == nil {
			return "", 0, fmt.Errorf("source %q requires object storage, which is not configured", source)
		}
		destPath := filepath.Join(destDir, stagedName(u.Path))
		n, err := r.objects.Download(ctx, u.Host, strings.TrimPrefix(u.Path, "/"), destPath)
		if err != nil {
			return "", 0, err
		}
		return destPath, n, nil
	default:
		return "", 0, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

func (r *HTTPRetriever) fetchHTTP(ctx context.Context, source string, destDir string) (string, int64, error) {
	resp, err := r.get(ctx, source)
	if err != nil {
		return "", 0, err
	}

	// A hosting page rather than the media itself: resolve the real URL from
	// its open-graph meta tags and fetch again.
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		mediaURL, err := resolveMediaURL(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", 0, fmt.Errorf("resolve media url from %q: %w", source, err)
		}
		if resp, err = r.get(ctx, mediaURL); err != nil {
			return "", 0, err
		}
		source = mediaURL
	}
	defer resp.Body.Close()

	u, _ := url.Parse(source)
	destPath := filepath.Join(destDir, stagedName(u.Path))

	n, err := writeStream(destPath, resp.Body)
	if err != nil {
		return "", 0, err
	}
	return destPath, n, nil
}

func (r *HTTPRetriever) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q failed: %w", rawURL, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %q: %w", rawURL, ErrSourceNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %q failed: status %d", rawURL, resp.StatusCode)
	}
	return resp, nil
}

// resolveMediaURL extracts the media URL from a hosting page's meta tags.
func resolveMediaURL(body io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", err
	}

	for _, property := range []string{"og:video", "og:video:url", "og:audio"} {
		tag := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First()
		if content, ok := tag.Attr("content"); ok && content != "" {
			return content, nil
		}
	}
	return "", fmt.Errorf("page carries no og:video or og:audio meta tag")
}

// writeStream copies src into destPath, deleting the partial file on any
// failure.
func writeStream(destPath string, src io.Reader) (int64, error) {
	f, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("create staged file: %w", err)
	}

	n, err := io.Copy(f, src)
	if err != nil {
		f.Close()
		os.Remove(destPath)
		return 0, fmt.Errorf("write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("close staged file: %w", err)
	}
	return n, nil
}

// stagedName derives a safe file name for the staged copy. The run directory
// already namespaces the file, so only the base name matters.
func stagedName(urlPath string) string {
	name := path.Base(urlPath)
	if name == "" || name == "/" || name == "." {
		name = fmt.Sprintf("source-%d", time.Now().UnixNano())
	}
	return strings.ReplaceAll(name, "/", "-")
}
