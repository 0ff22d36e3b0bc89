// Package client provides the HTTP client for the journey catalog API. It
// covers the public catalog surface (listing, tags, stats) and the
// admin-guarded write surface behind an explicit session.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"journey-catalog-service/internal/domain"
)

// Config holds catalog client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   RetryConfig
	CB      CBConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// tagCountWorkers bounds the per-tag count fan-out.
const tagCountWorkers = 4

// Session is an authenticated admin session. Obtain one with Login and pass
// it to every admin-guarded call; there is no ambient token.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// JourneyStats is the progress summary exposed by the catalog API.
type JourneyStats struct {
	TotalVideos     int                `json:"totalVideos"`
	MaxDay          int                `json:"maxDay"`
	Level           domain.LevelInfo   `json:"level"`
	OverallProgress int                `json:"overallProgress"`
	Milestones      []domain.Milestone `json:"milestones"`
}

// VideoDraft is raw form input for a create or update. Day and Tags arrive
// as text and are parsed during normalization; EmbedURL may be left blank
// and is derived from the YouTube ID.
type VideoDraft struct {
	Title      string
	YoutubeID  string
	EmbedURL   string
	Day        string
	Date       string
	Reflection string
	Tags       string
}

// payload is the normalized wire form of a draft.
type payload struct {
	Title      string   `json:"title"`
	YoutubeID  string   `json:"youtubeId"`
	EmbedURL   string   `json:"embedUrl"`
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Reflection string   `json:"reflection"`
	Tags       []string `json:"tags"`
}

// normalize validates and converts the draft to its wire form.
func (d VideoDraft) normalize() (*payload, error) {
	day, err := domain.ParseDay(d.Day)
	if err != nil {
		return nil, err
	}

	return &payload{
		Title:      d.Title,
		YoutubeID:  d.YoutubeID,
		EmbedURL:   domain.SynthesizeEmbedURL(d.EmbedURL, d.YoutubeID),
		Day:        day,
		Date:       d.Date,
		Reflection: d.Reflection,
		Tags:       domain.ParseTags(d.Tags),
	}, nil
}

// Client is the catalog API client.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new catalog client.
func New(cfg Config, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})

	settings := gobreaker.Settings{
		Name:        "journey-catalog",
		MaxRequests: cfg.CB.MaxRequests,
		Interval:    cfg.CB.Interval,
		Timeout:     cfg.CB.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.CB.FailureRatio
		},
	}

	return &Client{
		client: rc,
		cb:     gobreaker.NewCircuitBreaker[*resty.Response](settings),
		logger: logger,
	}
}

// execute runs the request through the circuit breaker. Only transport
// errors and 5xx responses count as breaker failures; 4xx responses are
// client mistakes and pass through for decoding.
func (c *Client) execute(fn func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := fn()
		if err != nil {
			return nil, err
		}
		if r.StatusCode() >= 500 {
			return nil, fmt.Errorf("catalog API returned status %d", r.StatusCode())
		}

		return r, nil
	})
	if err != nil {
		c.logger.Warn("catalog request failed",
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return nil, err
	}

	return resp, nil
}

// decodeError maps a 4xx response to a typed error.
func decodeError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case 404:
		return ErrNotFound
	case 401, 403:
		return ErrUnauthorized
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if e, ok := resp.Error().(*APIError); ok && e != nil {
		apiErr.Detail = e.Detail
	}

	return apiErr
}

// ListVideos returns one page of videos, optionally filtered by tag. The
// "All" sentinel (or an empty tag) disables filtering.
func (c *Client) ListVideos(ctx context.Context, page, limit int, tag string) (*domain.VideoList, error) {
	params := domain.ListParams{Page: page, Limit: limit, Tag: tag}
	params.Validate()

	var result domain.VideoList
	resp, err := c.execute(func() (*resty.Response, error) {
		req := c.client.R().
			SetContext(ctx).
			SetQueryParam("page", fmt.Sprint(params.Page)).
			SetQueryParam("limit", fmt.Sprint(params.Limit)).
			SetResult(&result).
			SetError(&APIError{})
		if params.Filtered() {
			req.SetQueryParam("tag", params.Tag)
		}

		return req.Get("/api/videos")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return &result, nil
}

// GetVideo retrieves a single video by ID. Returns ErrNotFound when the ID
// does not exist.
func (c *Client) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	var result domain.Video
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetResult(&result).
			SetError(&APIError{}).
			Get("/api/videos/" + id)
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return &result, nil
}

// ListTags returns the distinct tag list with the "All" sentinel first. The
// endpoint responds with a bare JSON array.
func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	var result []string
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetResult(&result).
			SetError(&APIError{}).
			Get("/api/videos/tags/all")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return result, nil
}

// TagCounts returns the number of videos per real tag. The sentinel is never
// a key. Counts are fetched concurrently with a bounded worker fan-out; one
// failed tag fails the whole call.
func (c *Client) TagCounts(ctx context.Context) (map[string]int, error) {
	tags, err := c.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(tags))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, tagCountWorkers)

	for _, tag := range tags {
		if tag == domain.TagAll {
			continue
		}

		wg.Add(1)
		go func(tag string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			list, err := c.ListVideos(ctx, 1, 1, tag)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("counting tag %q: %w", tag, err)
				}

				return
			}
			counts[tag] = list.Pagination.TotalVideos
		}(tag)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return counts, nil
}

// Stats returns the journey progress summary.
func (c *Client) Stats(ctx context.Context) (*JourneyStats, error) {
	var result JourneyStats
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetResult(&result).
			SetError(&APIError{}).
			Get("/api/stats")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return &result, nil
}

// loginEnvelope is the login response wire format.
type loginEnvelope struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Login authenticates an admin and returns the session for subsequent
// guarded calls. Returns ErrUnauthorized on bad credentials.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var result loginEnvelope
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetBody(map[string]string{"username": username, "password": password}).
			SetResult(&result).
			SetError(&APIError{}).
			Post("/api/admin/login")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return &Session{Token: result.Token, Username: result.User.Username}, nil
}

// VerifySession reports whether the session token is still accepted by the
// server.
func (c *Client) VerifySession(ctx context.Context, session *Session) (bool, error) {
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetAuthToken(session.Token).
			SetError(&APIError{}).
			Post("/api/admin/verify")
	})
	if err != nil {
		return false, err
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return false, nil
	}
	if resp.IsError() {
		return false, decodeError(resp)
	}

	return true, nil
}

// CreateVideo normalizes the draft and creates a new video. Requires a valid
// session.
func (c *Client) CreateVideo(ctx context.Context, session *Session, draft VideoDraft) (*domain.Video, error) {
	body, err := draft.normalize()
	if err != nil {
		return nil, err
	}

	var result domain.Video
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetAuthToken(session.Token).
			SetBody(body).
			SetResult(&result).
			SetError(&APIError{}).
			Post("/api/videos")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return &result, nil
}

// UpdateVideo normalizes the draft and overwrites an existing video.
// Requires a valid session; returns ErrNotFound when the ID does not exist.
func (c *Client) UpdateVideo(ctx context.Context, session *Session, id string, draft VideoDraft) (*domain.Video, error) {
	body, err := draft.normalize()
	if err != nil {
		return nil, err
	}

	var result domain.Video
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetAuthToken(session.Token).
			SetBody(body).
			SetResult(&result).
			SetError(&APIError{}).
			Put("/api/videos/" + id)
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	return &result, nil
}

// DeleteVideo removes a video. Requires a valid session; returns ErrNotFound
// when the ID does not exist.
func (c *Client) DeleteVideo(ctx context.Context, session *Session, id string) error {
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetAuthToken(session.Token).
			SetError(&APIError{}).
			Delete("/api/videos/" + id)
	})
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}

	return nil
}

// SubmitContact sends a contact form message. No session required.
func (c *Client) SubmitContact(ctx context.Context, name, email, area, message string) error {
	resp, err := c.execute(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetBody(map[string]string{
				"name":    name,
				"email":   email,
				"area":    area,
				"message": message,
			}).
			SetError(&APIError{}).
			Post("/api/contact")
	})
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}

	return nil
}
