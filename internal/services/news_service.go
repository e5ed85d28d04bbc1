// internal/services/news_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
	"github.com/foodnetwork/cfn-backend/internal/utils"
)

type NewsService struct {
	db *gorm.DB
}

type CreateNewsRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=255"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{db: db}
}

func (s *NewsService) CreateNews(authorID uuid.UUID, req *CreateNewsRequest) (*models.News, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	news := &models.News{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		Published: req.Published,
	}

	if err := s.db.Create(news).Error; err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	s.db.Preload("Author").First(news, news.ID)

	return news, nil
}

// ListPublished returns published announcements newest-first.
func (s *NewsService) ListPublished() ([]models.News, error) {
	var items []models.News
	if err := s.db.Where("published = ?", true).
		Preload("Author").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	return items, nil
}

// ListAll returns every announcement, drafts included.
func (s *NewsService) ListAll() ([]models.News, error) {
	var items []models.News
	if err := s.db.Preload("Author").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	return items, nil
}

func (s *NewsService) UpdateNews(id uuid.UUID, req *UpdateNewsRequest) (*models.News, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var news models.News
	if err := s.db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("news: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}

	if len(updates) > 0 {
		if err := s.db.Model(&news).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update news: %w", err)
		}
	}

	s.db.Preload("Author").First(&news, id)

	return &news, nil
}

func (s *NewsService) DeleteNews(id uuid.UUID) error {
	var news models.News
	if err := s.db.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("news: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&news).Error; err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}

	return nil
}
