package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// LinkCheckResult reports whether a resource URL answered
type LinkCheckResult struct {
	URL        string `json:"url"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code"`
	CheckedAt  string `json:"checked_at"`
}

// CheckResourceLink probes a resource URL with a HEAD request, falling back
// to GET for servers that reject HEAD.
func CheckResourceLink(url string) LinkCheckResult {
	result := LinkCheckResult{
		URL:       url,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Head(url)
	if err != nil || resp.StatusCode() == 405 {
		resp, err = client.R().Get(url)
	}
	if err != nil {
		return result
	}

	result.StatusCode = resp.StatusCode()
	result.Reachable = resp.StatusCode() >= 200 && resp.StatusCode() < 400
	return result
}

// String renders the probe outcome for logs
func (r LinkCheckResult) String() string {
	if r.Reachable {
		return fmt.Sprintf("%s reachable (%d)", r.URL, r.StatusCode)
	}
	return fmt.Sprintf("%s unreachable (%d)", r.URL, r.StatusCode)
}
