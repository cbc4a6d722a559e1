// Package metadata looks up book metadata (ISBN, cover image) from the
// Google Books volumes API. It is an untrusted collaborator: callers must
// treat every failure as "no result".
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type Result struct {
	ISBN     string `json:"isbn"`
	CoverURL string `json:"cover_url"`
}

type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
			ImageLinks struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Lookup returns the best match for title+author, or (nil, nil) when the
// catalog has nothing usable.
func (c *Client) Lookup(ctx context.Context, title, author string) (*Result, error) {
	q := url.QueryEscape(fmt.Sprintf("intitle:%s+inauthor:%s", title, author))
	u := fmt.Sprintf("%s/volumes?q=%s&maxResults=1", c.BaseURL, q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata lookup: status %d", resp.StatusCode)
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Items) == 0 {
		return nil, nil
	}
	info := body.Items[0].VolumeInfo

	var isbn string
	for _, id := range info.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			isbn = id.Identifier
			break
		}
		if isbn == "" && id.Type == "ISBN_10" {
			isbn = id.Identifier
		}
	}

	cover := info.ImageLinks.Thumbnail
	if cover == "" {
		cover = info.ImageLinks.SmallThumbnail
	}
	// the API hands out http links
	cover = strings.Replace(cover, "http://", "https://", 1)

	if isbn == "" && cover == "" {
		return nil, nil
	}
	return &Result{ISBN: isbn, CoverURL: cover}, nil
}
