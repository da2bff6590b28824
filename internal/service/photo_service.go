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

type IPhotoService interface {
	Create(ctx context.Context, req *dto.CreatePhotoRequest, uploadedBy string) (*dto.CreatePhotoResponse, error)
	Update(ctx context.Context, req *dto.UpdatePhotoRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, limit, offset int) ([]dto.PhotoResponse, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PhotoResponse, error)
	Random(ctx context.Context) (*dto.PhotoResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*dto.PhotoStatsResponse, error)
}

type photoService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPhotoService(uowFactory unitofwork.RepositoryFactory) IPhotoService {
	return &photoService{uowFactory: uowFactory}
}

func toPhotoResponse(p *entity.Photo) *dto.PhotoResponse {
	return &dto.PhotoResponse{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		FileURL:     p.FileURL,
		Metadata:    p.Metadata,
		UploadedBy:  p.UploadedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (s *photoService) Create(ctx context.Context, req *dto.CreatePhotoRequest, uploadedBy string) (*dto.CreatePhotoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	photo := &entity.Photo{
		Id:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		FileURL:     req.FileURL,
		Metadata:    req.Metadata,
		UploadedBy:  uploadedBy,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uow.PhotoRepository().Create(ctx, photo); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.CreatePhotoResponse{Id: photo.Id}, nil
}

func (s *photoService) Update(ctx context.Context, req *dto.UpdatePhotoRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	photos := uow.PhotoRepository()
	photo, err := photos.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrNotFound
	}

	photo.Title = strings.TrimSpace(req.Title)
	photo.Description = strings.TrimSpace(req.Description)
	photo.Category = strings.TrimSpace(req.Category)
	photo.FileURL = req.FileURL
	photo.Metadata = req.Metadata
	if req.IsActive != nil {
		photo.IsActive = *req.IsActive
	}
	if err := photos.Update(ctx, photo); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *photoService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PhotoRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *photoService) List(ctx context.Context, category string, limit, offset int) ([]dto.PhotoResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}

	filterSpecs := []specification.Specification{specification.ActiveOnly{}}
	if category != "" {
		filterSpecs = append(filterSpecs, specification.ByCategory{Category: category})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	photos := uow.PhotoRepository()

	total, err := photos.Count(ctx, filterSpecs...)
	if err != nil {
		return nil, 0, err
	}

	pageSpecs := append(filterSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset})

	rows, err := photos.FindAll(ctx, pageSpecs...)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.PhotoResponse, len(rows))
	for i, p := range rows {
		resp[i] = *toPhotoResponse(p)
	}
	return resp, total, nil
}

func (s *photoService) Get(ctx context.Context, id uuid.UUID) (*dto.PhotoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	photo, err := uow.PhotoRepository().FindOne(ctx, specification.ByID{ID: id}, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrNotFound
	}
	return toPhotoResponse(photo), nil
}

func (s *photoService) Random(ctx context.Context) (*dto.PhotoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	photo, err := uow.PhotoRepository().FindOne(ctx, specification.ActiveOnly{}, specification.RandomOrder{})
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrNotFound
	}
	return toPhotoResponse(photo), nil
}

func (s *photoService) Categories(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PhotoRepository().Categories(ctx)
}

func (s *photoService) Stats(ctx context.Context) (*dto.PhotoStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	photos := uow.PhotoRepository()

	total, err := photos.Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	rows, err := photos.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make([]dto.CategoryStatResponse, len(rows))
	for i, row := range rows {
		byCategory[i] = dto.CategoryStatResponse{Category: row.Category, Count: row.Count}
	}

	return &dto.PhotoStatsResponse{Total: total, ByCategory: byCategory}, nil
}
