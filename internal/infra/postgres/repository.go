package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"journey-catalog-service/internal/domain"
)

// Repository implements the domain repositories using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns one page of videos matching params, newest day first.
func (r *Repository) List(ctx context.Context, params domain.ListParams) (*domain.VideoList, error) {
	params.Validate()

	query := r.buildListQuery(params)

	var total int64
	if err := query.WithContext(ctx).Model(&VideoModel{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting videos: %w", err)
	}

	var models []VideoModel
	err := query.WithContext(ctx).
		Order("day DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}

	videos := make([]*domain.Video, len(models))
	for i, m := range models {
		videos[i] = m.ToDomain()
	}

	return &domain.VideoList{
		Videos:     videos,
		Pagination: domain.NewPagination(total, params.Page, params.Limit),
	}, nil
}

// buildListQuery applies the tag filter shared by the count and page
// queries.
func (r *Repository) buildListQuery(params domain.ListParams) *gorm.DB {
	query := r.db
	if params.Filtered() {
		query = query.Where("tags @> ?", pq.StringArray{params.Tag})
	}

	return query
}

// GetByID retrieves a single video. Returns nil, nil when not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var model VideoModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}

		return nil, fmt.Errorf("getting video by id: %w", err)
	}

	return model.ToDomain(), nil
}

// Create persists a new video, assigning its ID.
func (r *Repository) Create(ctx context.Context, video *domain.Video) error {
	model := FromDomain(video)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating video: %w", err)
	}

	video.ID = model.ID
	video.CreatedAt = model.CreatedAt
	video.UpdatedAt = model.UpdatedAt

	return nil
}

// Update overwrites an existing video. Returns false when the ID does not
// exist.
func (r *Repository) Update(ctx context.Context, video *domain.Video) (bool, error) {
	model := FromDomain(video)

	result := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"youtube_id": model.YoutubeID,
			"embed_url":  model.EmbedURL,
			"day":        model.Day,
			"date":       model.Date,
			"reflection": model.Reflection,
			"excerpt":    model.Excerpt,
			"tags":       model.Tags,
		})
	if result.Error != nil {
		return false, fmt.Errorf("updating video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	// Re-read to pick up the refreshed updated_at
	var saved VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", model.ID).First(&saved).Error; err != nil {
		return false, fmt.Errorf("reloading updated video: %w", err)
	}
	*video = *saved.ToDomain()

	return true, nil
}

// Delete removes a video by ID. Returns false when nothing was deleted.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&VideoModel{})
	if result.Error != nil {
		return false, fmt.Errorf("deleting video: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// DistinctTags returns all distinct tag strings across all videos, sorted.
func (r *Repository) DistinctTags(ctx context.Context) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT unnest(tags) AS tag FROM videos ORDER BY tag").
		Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("listing distinct tags: %w", err)
	}

	return tags, nil
}

// CountByTag returns the number of videos carrying the tag.
func (r *Repository) CountByTag(ctx context.Context, tag string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Where("tags @> ?", pq.StringArray{tag}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting videos by tag: %w", err)
	}

	return count, nil
}

// MaxDay returns the highest day across all videos, 0 when the catalog is
// empty.
func (r *Repository) MaxDay(ctx context.Context) (int, error) {
	var maxDay int
	err := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Select("COALESCE(MAX(day), 0)").
		Scan(&maxDay).Error
	if err != nil {
		return 0, fmt.Errorf("getting max day: %w", err)
	}

	return maxDay, nil
}

// Count returns the total number of videos.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&VideoModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting videos: %w", err)
	}

	return count, nil
}

// GetByUsername retrieves an admin account. Returns nil, nil when the
// username does not exist.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var model AdminModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting admin by username: %w", err)
	}

	return model.ToDomain(), nil
}

// CreateAdmin stores a new admin account. Used by provisioning, not by the
// HTTP surface.
func (r *Repository) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	model := &AdminModel{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}

	admin.ID = model.ID
	admin.CreatedAt = model.CreatedAt

	return nil
}

// SaveContact persists a contact form submission.
func (r *Repository) SaveContact(ctx context.Context, msg *domain.ContactMessage) error {
	model := &ContactMessageModel{
		ID:      msg.ID,
		Name:    msg.Name,
		Email:   msg.Email,
		Area:    msg.Area,
		Message: msg.Message,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating contact message: %w", err)
	}

	msg.ID = model.ID
	msg.CreatedAt = model.CreatedAt

	return nil
}
