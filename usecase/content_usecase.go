package usecase

import (
	"context"
	"fmt"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/logger"
	errs "vibes-backend/pkg/errors"
)

// IContentUseCase defines the interface for catalog use case operations
type IContentUseCase interface {
	Create(ctx context.Context, req *dto.ContentRequest) (*model.Content, error)
	Update(ctx context.Context, id string, req *dto.ContentRequest) (*model.Content, error)
	Delete(ctx context.Context, id string) error
	// GetByID fetches one item and counts the view when the item is
	// published.
	GetByID(ctx context.Context, id string) (*model.Content, error)
	ListPublic(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentPage, error)
	ListAdmin(ctx context.Context, status string, page, pageSize int) (*dto.ContentPage, error)
}

// ContentUseCase manages the media catalog. View counters live in Redis and
// are attached to items on read.
type ContentUseCase struct {
	contentRepo repository.IContent
	analytics   repository.IContentAnalytics
}

// NewContentUseCase creates a new content use case instance.
func NewContentUseCase(contentRepo repository.IContent, analytics repository.IContentAnalytics) IContentUseCase {
	return &ContentUseCase{contentRepo: contentRepo, analytics: analytics}
}

// Create stores a new catalog item. New items default to draft.
func (u *ContentUseCase) Create(ctx context.Context, req *dto.ContentRequest) (*model.Content, error) {
	if err := validateContentRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	content := &model.Content{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		Status:      req.Status,
		Thumbnail:   req.Thumbnail,
		Audio:       req.Audio,
		Video:       req.Video,
		Tags:        req.Tags,
		Featured:    req.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if content.Status == "" {
		content.Status = model.ContentStatusDraft
	}
	if content.Status == model.ContentStatusPublished {
		content.PublishedAt = &now
	}

	if err := u.contentRepo.Create(ctx, content); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to create content")
		return nil, err
	}
	return content, nil
}

// Update replaces an item's editable fields. Publishing for the first time
// stamps PublishedAt.
func (u *ContentUseCase) Update(ctx context.Context, id string, req *dto.ContentRequest) (*model.Content, error) {
	if err := validateContentRequest(req); err != nil {
		return nil, err
	}

	content, err := u.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content.Title = req.Title
	content.Description = req.Description
	content.Type = req.Type
	content.Category = req.Category
	content.Thumbnail = req.Thumbnail
	content.Audio = req.Audio
	content.Video = req.Video
	content.Tags = req.Tags
	content.Featured = req.Featured
	content.UpdatedAt = time.Now()
	if req.Status != "" {
		if req.Status == model.ContentStatusPublished && content.PublishedAt == nil {
			now := time.Now()
			content.PublishedAt = &now
		}
		content.Status = req.Status
	}

	if err := u.contentRepo.Update(ctx, content); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to update content")
		return nil, err
	}
	return content, nil
}

// Delete removes an item.
func (u *ContentUseCase) Delete(ctx context.Context, id string) error {
	return u.contentRepo.Delete(ctx, id)
}

// GetByID fetches one item. Published items get their view counter bumped
// and attached; analytics failures never block the read.
func (u *ContentUseCase) GetByID(ctx context.Context, id string) (*model.Content, error) {
	content, err := u.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.analytics != nil && content.Status == model.ContentStatusPublished {
		views, err := u.analytics.IncrementViews(ctx, id)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to count content view")
		} else {
			content.Views = views
		}
	}
	return content, nil
}

// ListPublic returns a page of published items.
func (u *ContentUseCase) ListPublic(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentPage, error) {
	if req.Type != "" && !model.ValidContentType(req.Type) {
		return nil, fmt.Errorf("unknown content type %q: %w", req.Type, errs.ErrInvalidInput)
	}
	if req.Category != "" && !model.ValidContentCategory(req.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, errs.ErrInvalidInput)
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)

	filter := repository.ContentFilter{
		Type:     req.Type,
		Category: req.Category,
		Featured: req.Featured,
		Status:   model.ContentStatusPublished,
	}
	items, total, err := u.contentRepo.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	u.attachViews(ctx, items)

	return &dto.ContentPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListAdmin returns a page of items in any status.
func (u *ContentUseCase) ListAdmin(ctx context.Context, status string, page, pageSize int) (*dto.ContentPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	items, total, err := u.contentRepo.List(ctx, repository.ContentFilter{Status: status}, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	u.attachViews(ctx, items)

	return &dto.ContentPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (u *ContentUseCase) attachViews(ctx context.Context, items []model.Content) {
	if u.analytics == nil {
		return
	}
	for i := range items {
		views, err := u.analytics.GetViews(ctx, items[i].ID.Hex())
		if err != nil {
			continue
		}
		items[i].Views = views
	}
}

func validateContentRequest(req *dto.ContentRequest) error {
	if !model.ValidContentType(req.Type) {
		return fmt.Errorf("unknown content type %q: %w", req.Type, errs.ErrInvalidInput)
	}
	if !model.ValidContentCategory(req.Category) {
		return fmt.Errorf("unknown category %q: %w", req.Category, errs.ErrInvalidInput)
	}
	if req.Status != "" {
		switch req.Status {
		case model.ContentStatusDraft, model.ContentStatusPublished, model.ContentStatusArchived:
		default:
			return fmt.Errorf("unknown status %q: %w", req.Status, errs.ErrInvalidInput)
		}
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
