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

type IProgramService interface {
	Submit(ctx context.Context, req *dto.SubmitProgramRequest) (*dto.SubmitProgramResponse, error)
	Upcoming(ctx context.Context) ([]dto.ProgramResponse, error)
	Past(ctx context.Context) ([]dto.ProgramResponse, error)
}

type programService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProgramService(uowFactory unitofwork.RepositoryFactory) IProgramService {
	return &programService{uowFactory: uowFactory}
}

func (s *programService) Submit(ctx context.Context, req *dto.SubmitProgramRequest) (*dto.SubmitProgramResponse, error) {
	if req.ProgramDate.IsZero() {
		return nil, ErrInvalidInput
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	program := &entity.Program{
		Id:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		ProgramDate: req.ProgramDate,
		SubmittedBy: strings.TrimSpace(req.SubmittedBy),
		CreatedAt:   time.Now(),
	}
	if err := uow.ProgramRepository().Create(ctx, program); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &dto.SubmitProgramResponse{Id: program.Id}, nil
}

func (s *programService) Upcoming(ctx context.Context) ([]dto.ProgramResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ProgramRepository().FindAll(ctx,
		specification.ProgramsFrom{From: istToday()},
		specification.OrderBy{Field: "program_date"})
	if err != nil {
		return nil, err
	}
	return toProgramResponses(rows), nil
}

func (s *programService) Past(ctx context.Context) ([]dto.ProgramResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ProgramRepository().FindAll(ctx,
		specification.ProgramsBefore{Before: istToday()},
		specification.OrderBy{Field: "program_date", Desc: true})
	if err != nil {
		return nil, err
	}
	return toProgramResponses(rows), nil
}

func toProgramResponses(rows []*entity.Program) []dto.ProgramResponse {
	resp := make([]dto.ProgramResponse, len(rows))
	for i, p := range rows {
		resp[i] = dto.ProgramResponse{
			Id:          p.Id,
			Title:       p.Title,
			Description: p.Description,
			Location:    p.Location,
			ProgramDate: p.ProgramDate,
			SubmittedBy: p.SubmittedBy,
			CreatedAt:   p.CreatedAt,
		}
	}
	return resp
}
