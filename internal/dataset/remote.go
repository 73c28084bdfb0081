package dataset

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// loadRemote fetches the dataset over HTTP and parses it by URL extension,
// defaulting to CSV.
func loadRemote(source string, timeout time.Duration) (*Store, error) {
	client := resty.New()
	client.SetTimeout(timeout)

	resp, err := client.R().Get(source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch: server returned %s", resp.Status())
	}

	switch remoteExt(source) {
	case ".xlsx", ".xlsm":
		return loadXLSXBytes(resp.Body())
	case ".html", ".htm":
		return loadHTMLBytes(resp.Body())
	default:
		return loadCSVBytes(resp.Body())
	}
}

func remoteExt(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}
