// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import "journey-catalog-service/internal/domain"

// ListVideosRequest represents the query parameters for listing videos.
type ListVideosRequest struct {
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Tag   string `query:"tag" validate:"omitempty,max=100"`
}

// ToListParams converts ListVideosRequest to domain.ListParams. Out-of-range
// values are corrected to defaults rather than rejected.
func (r *ListVideosRequest) ToListParams() domain.ListParams {
	params := domain.ListParams{
		Page:  r.Page,
		Limit: r.Limit,
		Tag:   r.Tag,
	}
	params.Validate()

	return params
}

// VideoPayload represents the request body for creating or updating a video.
// Excerpt is never accepted; it is derived server-side from the reflection.
type VideoPayload struct {
	Title      string   `json:"title" validate:"required,max=200"`
	YoutubeID  string   `json:"youtubeId" validate:"required,max=50"`
	EmbedURL   string   `json:"embedUrl" validate:"omitempty,url"`
	Day        int      `json:"day" validate:"required,min=1"`
	Date       string   `json:"date" validate:"required,max=50"`
	Reflection string   `json:"reflection" validate:"required"`
	Tags       []string `json:"tags" validate:"omitempty,dive,max=100"`
}

// ToDomain converts VideoPayload to a domain.Video.
func (r *VideoPayload) ToDomain() *domain.Video {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Video{
		Title:      r.Title,
		YoutubeID:  r.YoutubeID,
		EmbedURL:   r.EmbedURL,
		Day:        r.Day,
		Date:       r.Date,
		Reflection: r.Reflection,
		Tags:       tags,
	}
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// ContactRequest represents the request body for a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Area    string `json:"area" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,max=5000"`
}
