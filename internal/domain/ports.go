package domain

import (
	"context"
	"time"
)

// VideoRepository defines the interface for video persistence operations.
// Implementations: internal/infra/postgres/repository.go
type VideoRepository interface {
	// List returns one page of videos matching params, newest day first.
	List(ctx context.Context, params ListParams) (*VideoList, error)

	// GetByID retrieves a single video. Returns nil, nil when not found.
	GetByID(ctx context.Context, id string) (*Video, error)

	// Create persists a new video and fills in the server-assigned fields.
	Create(ctx context.Context, video *Video) error

	// Update overwrites an existing video. Returns false when the ID does
	// not exist.
	Update(ctx context.Context, video *Video) (bool, error)

	// Delete removes a video by ID. Returns false when nothing was deleted.
	Delete(ctx context.Context, id string) (bool, error)

	// DistinctTags returns all distinct tag strings, sorted.
	DistinctTags(ctx context.Context) ([]string, error)

	// CountByTag returns the number of videos carrying the tag.
	CountByTag(ctx context.Context, tag string) (int64, error)

	// MaxDay returns the highest day across all videos, 0 when empty.
	MaxDay(ctx context.Context) (int, error)

	// Count returns the total number of videos.
	Count(ctx context.Context) (int64, error)
}

// AdminRepository defines admin account lookup for the session gate.
// Implementations: internal/infra/postgres/repository.go
type AdminRepository interface {
	// GetByUsername retrieves an admin account. Returns nil, nil when the
	// username does not exist.
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}

// ContactRepository persists contact form submissions.
// Implementations: internal/infra/postgres/repository.go
type ContactRepository interface {
	SaveContact(ctx context.Context, msg *ContactMessage) error
}

// Cache defines the interface for caching operations.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error
}

// Admin is a stored admin account. PasswordHash is a bcrypt hash and never
// leaves the repository/service boundary.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Area      string
	Message   string
	CreatedAt time.Time
}
