package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journey-catalog-service/internal/domain"
	"journey-catalog-service/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.New()
}

// validPayload returns a VideoPayload that passes validation, for tests that
// focus on a single field.
func validPayload() VideoPayload {
	return VideoPayload{
		Title:      "Day 12 - Consistency",
		YoutubeID:  "dQw4w9WgXcQ",
		Day:        12,
		Date:       "2025-01-12",
		Reflection: "Kept the streak alive.",
		Tags:       []string{"Consistency"},
	}
}

// TestVideoPayload_Validation_Valid tests valid video payloads.
func TestVideoPayload_Validation_Valid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  VideoPayload
	}{
		{
			name: "full valid payload",
			req:  validPayload(),
		},
		{
			name: "no tags",
			req: VideoPayload{
				Title:      "Day 1",
				YoutubeID:  "abc123",
				Day:        1,
				Date:       "2025-01-01",
				Reflection: "Started.",
			},
		},
		{
			name: "explicit embed url",
			req: func() VideoPayload {
				p := validPayload()
				p.EmbedURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			assert.NoError(t, err)
		})
	}
}

// TestVideoPayload_Validation_Invalid tests invalid video payloads.
func TestVideoPayload_Validation_Invalid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name        string
		mutate      func(*VideoPayload)
		expectField string
		expectTag   string
	}{
		{
			name:        "missing title",
			mutate:      func(p *VideoPayload) { p.Title = "" },
			expectField: "title",
			expectTag:   "required",
		},
		{
			name:        "missing youtube id",
			mutate:      func(p *VideoPayload) { p.YoutubeID = "" },
			expectField: "youtubeId",
			expectTag:   "required",
		},
		{
			name:        "zero day",
			mutate:      func(p *VideoPayload) { p.Day = 0 },
			expectField: "day",
			expectTag:   "required",
		},
		{
			name:        "negative day",
			mutate:      func(p *VideoPayload) { p.Day = -3 },
			expectField: "day",
			expectTag:   "min",
		},
		{
			name:        "missing reflection",
			mutate:      func(p *VideoPayload) { p.Reflection = "" },
			expectField: "reflection",
			expectTag:   "required",
		},
		{
			name:        "bad embed url",
			mutate:      func(p *VideoPayload) { p.EmbedURL = "not-a-url" },
			expectField: "embedUrl",
			expectTag:   "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPayload()
			tt.mutate(&req)

			err := v.Validate(&req)
			require.Error(t, err)

			validationErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "expected ValidationErrors type")

			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.expectField {
					found = true
					assert.Equal(t, tt.expectTag, ve.Tag)
				}
			}
			assert.True(t, found, "expected error for field %s", tt.expectField)
		})
	}
}

// TestVideoPayload_ToDomain tests conversion to a domain video.
func TestVideoPayload_ToDomain(t *testing.T) {
	req := validPayload()
	video := req.ToDomain()

	assert.Equal(t, "Day 12 - Consistency", video.Title)
	assert.Equal(t, "dQw4w9WgXcQ", video.YoutubeID)
	assert.Equal(t, 12, video.Day)
	assert.Equal(t, []string{"Consistency"}, video.Tags)
	assert.Empty(t, video.ID, "IDs are server-assigned")
	assert.Empty(t, video.Excerpt, "excerpt is derived at write time")
}

func TestVideoPayload_ToDomain_NilTags(t *testing.T) {
	req := validPayload()
	req.Tags = nil

	video := req.ToDomain()
	require.NotNil(t, video.Tags)
	assert.Empty(t, video.Tags)
}

// TestListVideosRequest_ToListParams tests query parameter conversion.
func TestListVideosRequest_ToListParams(t *testing.T) {
	tests := []struct {
		name     string
		req      ListVideosRequest
		expected domain.ListParams
	}{
		{
			name:     "empty request uses defaults",
			req:      ListVideosRequest{},
			expected: domain.ListParams{Page: 1, Limit: domain.DefaultPageSize},
		},
		{
			name:     "explicit page and limit",
			req:      ListVideosRequest{Page: 3, Limit: 5},
			expected: domain.ListParams{Page: 3, Limit: 5},
		},
		{
			name:     "sentinel tag clears the filter",
			req:      ListVideosRequest{Page: 1, Limit: 12, Tag: domain.TagAll},
			expected: domain.ListParams{Page: 1, Limit: 12},
		},
		{
			name:     "real tag is kept",
			req:      ListVideosRequest{Page: 1, Limit: 12, Tag: "Fitness"},
			expected: domain.ListParams{Page: 1, Limit: 12, Tag: "Fitness"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToListParams())
		})
	}
}

// TestContactRequest_Validation tests contact form validation.
func TestContactRequest_Validation(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		req     ContactRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: ContactRequest{
				Name:    "Ada",
				Email:   "ada@example.com",
				Area:    "Fitness",
				Message: "Loved day 40.",
			},
			wantErr: false,
		},
		{
			name: "area is optional",
			req: ContactRequest{
				Name:    "Ada",
				Email:   "ada@example.com",
				Message: "Hi.",
			},
			wantErr: false,
		},
		{
			name:    "missing everything",
			req:     ContactRequest{},
			wantErr: true,
		},
		{
			name: "bad email",
			req: ContactRequest{
				Name:    "Ada",
				Email:   "not-an-email",
				Message: "Hi.",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
