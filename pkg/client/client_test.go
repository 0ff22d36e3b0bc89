package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"journey-catalog-service/internal/domain"
)

const testBaseURL = "https://journey.example.com"

func newTestClient() *Client {
	cfg := Config{
		BaseURL: testBaseURL,
		Timeout: 5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			WaitTime:    100 * time.Millisecond,
			MaxWaitTime: 500 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := New(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func testSession() *Session {
	return &Session{Token: "test-token", Username: "admin"}
}

// mockPage builds one wire-format page of videos for day range [from, to],
// newest day first.
func mockPage(from, to int, page, limit, total int) domain.VideoList {
	videos := make([]*domain.Video, 0, from-to+1)
	for day := from; day >= to; day-- {
		videos = append(videos, &domain.Video{
			ID:         fmt.Sprintf("vid-%d", day),
			Title:      fmt.Sprintf("Day %d", day),
			YoutubeID:  fmt.Sprintf("yt%d", day),
			EmbedURL:   fmt.Sprintf("https://www.youtube.com/embed/yt%d", day),
			Day:        day,
			Date:       "2025-01-01",
			Reflection: "Kept going.",
			Excerpt:    "Kept going.",
			Tags:       []string{"Consistency"},
		})
	}

	return domain.VideoList{
		Videos:     videos,
		Pagination: domain.NewPagination(int64(total), page, limit),
	}
}

// TestListVideos_SecondPage tests fetching a middle page of a 20-video
// catalog with the default page size.
func TestListVideos_SecondPage(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "2", "limit": "12"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(8, 1, 2, 12, 20)))

	list, err := client.ListVideos(context.Background(), 2, 12, "")

	require.NoError(t, err)
	assert.Len(t, list.Videos, 8)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
	assert.Equal(t, 2, list.Pagination.TotalPages)
	assert.Equal(t, 20, list.Pagination.TotalVideos)
	assert.False(t, list.Pagination.HasNext)
	assert.True(t, list.Pagination.HasPrev)

	// Newest first within the page
	assert.Equal(t, 8, list.Videos[0].Day)
	assert.Equal(t, 1, list.Videos[7].Day)
}

// TestListVideos_DefaultsApplied tests that out-of-range paging input is
// corrected before the request is sent.
func TestListVideos_DefaultsApplied(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "12"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(3, 1, 1, 12, 3)))

	list, err := client.ListVideos(context.Background(), -5, 0, "")

	require.NoError(t, err)
	assert.Len(t, list.Videos, 3)
	assert.Equal(t, 1, list.Pagination.CurrentPage)
}

// TestListVideos_SentinelTagNotSent tests that the "All" sentinel disables
// filtering instead of being sent as a tag.
func TestListVideos_SentinelTagNotSent(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "12"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(2, 1, 1, 12, 2)))

	list, err := client.ListVideos(context.Background(), 1, 12, domain.TagAll)

	require.NoError(t, err)
	assert.Len(t, list.Videos, 2)
}

// TestListVideos_TagFilter tests that a real tag is passed through.
func TestListVideos_TagFilter(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "12", "tag": "Fitness"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(3, 1, 1, 12, 3)))

	list, err := client.ListVideos(context.Background(), 1, 12, "Fitness")

	require.NoError(t, err)
	assert.Equal(t, 3, list.Pagination.TotalVideos)
}

// TestGetVideo_NotFound tests the 404 mapping.
func TestGetVideo_NotFound(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/videos/missing",
		httpmock.NewJsonResponderOrPanic(404, map[string]string{"detail": "video not found"}))

	video, err := client.GetVideo(context.Background(), "missing")

	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, video)
}

// TestListTags tests the tag list with the sentinel first.
func TestListTags(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/videos/tags/all",
		httpmock.NewJsonResponderOrPanic(200, []string{"All", "Fitness", "Mindset"}))

	tags, err := client.ListTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Fitness", "Mindset"}, tags)
}

// TestTagCounts tests the concurrent per-tag count fan-out. The sentinel is
// skipped and never counted.
func TestTagCounts(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/videos/tags/all",
		httpmock.NewJsonResponderOrPanic(200, []string{"All", "Fitness", "Mindset"}))
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "1", "tag": "Fitness"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(3, 3, 1, 1, 3)))
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "1", "tag": "Mindset"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(4, 4, 1, 1, 1)))

	counts, err := client.TagCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Fitness": 3, "Mindset": 1}, counts)
}

// TestTagCounts_PartialFailure tests that one failed tag fails the call.
func TestTagCounts_PartialFailure(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/videos/tags/all",
		httpmock.NewJsonResponderOrPanic(200, []string{"All", "Fitness", "Mindset"}))
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "1", "tag": "Fitness"},
		httpmock.NewJsonResponderOrPanic(200, mockPage(3, 3, 1, 1, 3)))
	httpmock.RegisterResponderWithQuery("GET", testBaseURL+"/api/videos",
		map[string]string{"page": "1", "limit": "1", "tag": "Mindset"},
		httpmock.NewErrorResponder(fmt.Errorf("connection refused")))

	counts, err := client.TagCounts(context.Background())

	require.Error(t, err)
	assert.Nil(t, counts)
	assert.Contains(t, err.Error(), "Mindset")
}

// TestStats tests the journey progress summary decode.
func TestStats(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/stats",
		httpmock.NewJsonResponderOrPanic(200, JourneyStats{
			TotalVideos:     50,
			MaxDay:          50,
			Level:           domain.LevelInfoForDay(50),
			OverallProgress: 50,
			Milestones:      domain.Milestones(50),
		}))

	stats, err := client.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 50, stats.MaxDay)
	assert.Equal(t, 5, stats.Level.Level)
	assert.Len(t, stats.Milestones, 9)
}

// TestLogin_Success tests a successful login.
func TestLogin_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("POST", testBaseURL+"/api/admin/login",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success": true,
			"token":   "jwt-token",
			"user":    map[string]string{"username": "admin"},
		}))

	session, err := client.Login(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, "admin", session.Username)
}

// TestLogin_BadCredentials tests the 401 mapping on login.
func TestLogin_BadCredentials(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("POST", testBaseURL+"/api/admin/login",
		httpmock.NewJsonResponderOrPanic(401, map[string]string{"detail": "invalid username or password"}))

	session, err := client.Login(context.Background(), "admin", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, session)
}

// TestVerifySession tests both verification outcomes.
func TestVerifySession(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("POST", testBaseURL+"/api/admin/verify",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"valid": true,
			"user":  map[string]string{"username": "admin"},
		}))

	valid, err := client.VerifySession(context.Background(), testSession())
	require.NoError(t, err)
	assert.True(t, valid)

	httpmock.Reset()
	httpmock.RegisterResponder("POST", testBaseURL+"/api/admin/verify",
		httpmock.NewJsonResponderOrPanic(401, map[string]string{"detail": "invalid or expired token"}))

	valid, err = client.VerifySession(context.Background(), testSession())
	require.NoError(t, err)
	assert.False(t, valid)
}

// TestCreateVideo_NormalizesDraft tests that the draft is normalized before
// it goes on the wire: day parsed, tags split and trimmed, embed URL derived
// from the YouTube ID.
func TestCreateVideo_NormalizesDraft(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()

	var sent payload
	httpmock.RegisterResponder("POST", testBaseURL+"/api/videos",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&sent); err != nil {
				return nil, err
			}
			if req.Header.Get("Authorization") != "Bearer test-token" {
				return httpmock.NewJsonResponse(401, map[string]string{"detail": "missing bearer token"})
			}

			return httpmock.NewJsonResponse(201, domain.Video{
				ID:        "vid-new",
				Title:     sent.Title,
				YoutubeID: sent.YoutubeID,
				EmbedURL:  sent.EmbedURL,
				Day:       sent.Day,
				Tags:      sent.Tags,
			})
		})

	created, err := client.CreateVideo(context.Background(), testSession(), VideoDraft{
		Title:      "Day 12",
		YoutubeID:  "dQw4w9WgXcQ",
		Day:        "12",
		Date:       "2025-01-12",
		Reflection: "Kept the streak alive.",
		Tags:       "Consistency,  Fitness ,Mindset",
	})

	require.NoError(t, err)
	assert.Equal(t, "vid-new", created.ID)

	assert.Equal(t, 12, sent.Day)
	assert.Equal(t, []string{"Consistency", "Fitness", "Mindset"}, sent.Tags)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", sent.EmbedURL)
}

// TestCreateVideo_BadDay tests that a non-numeric day fails locally without
// an HTTP call.
func TestCreateVideo_BadDay(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()

	created, err := client.CreateVideo(context.Background(), testSession(), VideoDraft{
		Title:     "Day ?",
		YoutubeID: "abc",
		Day:       "twelve",
	})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "day must be a number")
	assert.Zero(t, httpmock.GetTotalCallCount())
}

// TestUpdateVideo_NotFound tests the 404 mapping on update.
func TestUpdateVideo_NotFound(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("PUT", testBaseURL+"/api/videos/missing",
		httpmock.NewJsonResponderOrPanic(404, map[string]string{"detail": "video not found"}))

	updated, err := client.UpdateVideo(context.Background(), testSession(), "missing", VideoDraft{
		Title:      "Day 1",
		YoutubeID:  "abc",
		Day:        "1",
		Date:       "2025-01-01",
		Reflection: "r",
	})

	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, updated)
}

// TestDeleteVideo_Unauthorized tests the auth mapping on delete.
func TestDeleteVideo_Unauthorized(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("DELETE", testBaseURL+"/api/videos/vid-1",
		httpmock.NewJsonResponderOrPanic(401, map[string]string{"detail": "invalid or expired token"}))

	err := client.DeleteVideo(context.Background(), &Session{Token: "expired"}, "vid-1")

	require.ErrorIs(t, err, ErrUnauthorized)
}

// TestSubmitContact tests a contact form submission.
func TestSubmitContact(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("POST", testBaseURL+"/api/contact",
		httpmock.NewJsonResponderOrPanic(201, map[string]any{"success": true, "message": "message received successfully"}))

	err := client.SubmitContact(context.Background(), "Ada", "ada@example.com", "Fitness", "Loved day 40.")

	require.NoError(t, err)
}

// TestAPIError_Detail tests that an unmapped 4xx surfaces the server detail.
func TestAPIError_Detail(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/videos/bad",
		httpmock.NewJsonResponderOrPanic(400, map[string]string{"detail": "validation failed"}))

	_, err := client.GetVideo(context.Background(), "bad")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "validation failed", apiErr.Detail)
}

// TestCircuitBreaker_Opens tests that the breaker opens after consecutive
// 5xx failures and then fails fast.
func TestCircuitBreaker_Opens(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	client := newTestClient()
	httpmock.RegisterResponder("GET", testBaseURL+"/api/videos/tags/all",
		httpmock.NewStringResponder(500, "Internal Server Error"))

	for i := 0; i < 5; i++ {
		_, err := client.ListTags(context.Background())
		require.Error(t, err)
	}

	start := time.Now()
	_, err := client.ListTags(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Less(t, elapsed.Milliseconds(), int64(100))
}
