package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/repository/specification"
	"sadguru-seva-be/internal/repository/unitofwork"
)

type ILilaService interface {
	Create(ctx context.Context, req *dto.CreateLilaRequest, createdBy string) (*dto.CreateLilaResponse, error)
	Update(ctx context.Context, req *dto.UpdateLilaRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, page, limit int) (*dto.LilaListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.LilaDetailResponse, error)
	Search(ctx context.Context, query string, page, limit int) (*dto.LilaListResponse, error)
	CategoryStats(ctx context.Context) ([]dto.CategoryStatResponse, error)
}

type lilaService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLilaService(uowFactory unitofwork.RepositoryFactory) ILilaService {
	return &lilaService{uowFactory: uowFactory}
}

func excerptOf(req string, content string) string {
	if req != "" {
		return req
	}
	runes := []rune(content)
	if len(runes) <= 200 {
		return content
	}
	return string(runes[:200]) + "..."
}

func (s *lilaService) Create(ctx context.Context, req *dto.CreateLilaRequest, createdBy string) (*dto.CreateLilaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	lila := &entity.Lila{
		Id:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		Category:  strings.TrimSpace(req.Category),
		Content:   req.Content,
		Excerpt:   excerptOf(req.Excerpt, req.Content),
		ImageURL:  req.ImageURL,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uow.LilaRepository().Create(ctx, lila); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.CreateLilaResponse{Id: lila.Id}, nil
}

func (s *lilaService) Update(ctx context.Context, req *dto.UpdateLilaRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	lilas := uow.LilaRepository()
	lila, err := lilas.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if lila == nil {
		return ErrNotFound
	}

	lila.Title = strings.TrimSpace(req.Title)
	lila.Category = strings.TrimSpace(req.Category)
	lila.Content = req.Content
	lila.Excerpt = excerptOf(req.Excerpt, req.Content)
	lila.ImageURL = req.ImageURL
	if req.IsActive != nil {
		lila.IsActive = *req.IsActive
	}
	if err := lilas.Update(ctx, lila); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *lilaService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.LilaRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *lilaService) List(ctx context.Context, category string, page, limit int) (*dto.LilaListResponse, error) {
	return s.listWith(ctx, page, limit, func(specs []specification.Specification) []specification.Specification {
		if category != "" {
			specs = append(specs, specification.ByCategory{Category: category})
		}
		return specs
	})
}

func (s *lilaService) Search(ctx context.Context, query string, page, limit int) (*dto.LilaListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	return s.listWith(ctx, page, limit, func(specs []specification.Specification) []specification.Specification {
		return append(specs, specification.TitleOrContentSearch{Query: query})
	})
}

func (s *lilaService) listWith(ctx context.Context, page, limit int, refine func([]specification.Specification) []specification.Specification) (*dto.LilaListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 12
	}

	filterSpecs := refine([]specification.Specification{specification.ActiveOnly{}})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	lilas := uow.LilaRepository()

	total, err := lilas.Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	pageSpecs := append(filterSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit})

	rows, err := lilas.FindAll(ctx, pageSpecs...)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.LilaSummaryResponse, len(rows))
	for i, l := range rows {
		summaries[i] = dto.LilaSummaryResponse{
			Id:        l.Id,
			Title:     l.Title,
			Category:  l.Category,
			Excerpt:   l.Excerpt,
			ImageURL:  l.ImageURL,
			ViewCount: l.ViewCount,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		}
	}

	return &dto.LilaListResponse{
		Lilas: summaries,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *lilaService) Get(ctx context.Context, id uuid.UUID) (*dto.LilaDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	lilas := uow.LilaRepository()

	lila, err := lilas.FindOne(ctx, specification.ByID{ID: id}, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if lila == nil {
		return nil, ErrNotFound
	}

	// Count the view without blocking the read.
	if err := lilas.IncrementViewCount(ctx, id); err == nil {
		lila.ViewCount++
	}

	return &dto.LilaDetailResponse{
		Id:        lila.Id,
		Title:     lila.Title,
		Category:  lila.Category,
		Content:   lila.Content,
		Excerpt:   lila.Excerpt,
		ImageURL:  lila.ImageURL,
		ViewCount: lila.ViewCount,
		CreatedAt: lila.CreatedAt,
		UpdatedAt: lila.UpdatedAt,
	}, nil
}

func (s *lilaService) CategoryStats(ctx context.Context) ([]dto.CategoryStatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.LilaRepository().CategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.CategoryStatResponse, len(rows))
	for i, row := range rows {
		stats[i] = dto.CategoryStatResponse{Category: row.Category, Count: row.Count}
	}
	return stats, nil
}
