package dto

import (
	"journey-catalog-service/internal/domain"
)

// VideoResponse represents a single video in the response.
type VideoResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	YoutubeID  string   `json:"youtubeId"`
	EmbedURL   string   `json:"embedUrl"`
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Reflection string   `json:"reflection"`
	Excerpt    string   `json:"excerpt"`
	Tags       []string `json:"tags"`
}

// FromDomainVideo converts domain.Video to VideoResponse.
func FromDomainVideo(v *domain.Video) VideoResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}

	return VideoResponse{
		ID:         v.ID,
		Title:      v.Title,
		YoutubeID:  v.YoutubeID,
		EmbedURL:   v.EmbedURL,
		Day:        v.Day,
		Date:       v.Date,
		Reflection: v.Reflection,
		Excerpt:    v.Excerpt,
		Tags:       tags,
	}
}

// VideoListResponse represents one page of videos.
type VideoListResponse struct {
	Videos     []VideoResponse   `json:"videos"`
	Pagination domain.Pagination `json:"pagination"`
}

// FromVideoList converts domain.VideoList to VideoListResponse.
func FromVideoList(list *domain.VideoList) VideoListResponse {
	videos := make([]VideoResponse, len(list.Videos))
	for i, v := range list.Videos {
		videos[i] = FromDomainVideo(v)
	}

	return VideoListResponse{
		Videos:     videos,
		Pagination: list.Pagination,
	}
}

// AdminUser is the admin identity fragment embedded in session responses.
type AdminUser struct {
	Username string `json:"username"`
}

// LoginResponse represents a successful admin login.
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    AdminUser `json:"user"`
}

// VerifyResponse represents a token verification result.
type VerifyResponse struct {
	Valid bool       `json:"valid"`
	User  *AdminUser `json:"user,omitempty"`
}

// StatusResponse represents a simple acknowledgement.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Detail is the human-readable
// failure description clients display verbatim.
type ErrorResponse struct {
	Detail string      `json:"detail"`
	Errors interface{} `json:"errors,omitempty"`
}
