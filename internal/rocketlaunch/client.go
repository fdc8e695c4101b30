// Package rocketlaunch is the client for the rocketlaunch.live "next
// launches" JSON feed.
package rocketlaunch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"launchbot/internal/dal"
)

const DefaultFeedURL = "https://fdo.rocketlaunch.live/json/launches/next/5"

type Client struct {
	feedURL  string
	loadFeed func(context.Context, string) ([]byte, error)

	log *slog.Logger
}

func NewClient(feedURL string, log *slog.Logger) *Client {
	return &Client{
		feedURL:  feedURL,
		loadFeed: loadFeed,
		log:      log.With("component", "rocketlaunch"),
	}
}

type payload struct {
	Result []dal.Launch `json:"result"`
}

// Fetch retrieves the next launches. The returned batch replaces any prior
// one wholesale; callers never merge batches.
func (c *Client) Fetch(ctx context.Context) ([]dal.Launch, error) {
	c.log.DebugContext(ctx, "fetching launches", "url", c.feedURL)

	body, err := c.loadFeed(ctx, c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	var res payload
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	c.log.DebugContext(ctx, "fetched launches", "count", len(res.Result))
	return res.Result, nil
}

func loadFeed(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for url=%s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get launches from url=%s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get launches from url=%s: status=%s", url, resp.Status)
	}

	var res bytes.Buffer
	if _, err := res.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read launches from url=%s: %w", url, err)
	}

	return res.Bytes(), nil
}
