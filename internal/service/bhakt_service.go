package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/pkg/mailer"
	"sadguru-seva-be/internal/repository/specification"
	"sadguru-seva-be/internal/repository/unitofwork"
)

// WelcomeMailMessage rides the in-process bus from registration to the
// consumer that sends the welcome email.
type WelcomeMailMessage struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type IBhaktService interface {
	Register(ctx context.Context, req *dto.RegisterBhaktRequest) (*dto.RegisterBhaktResponse, error)
	List(ctx context.Context, limit, offset int) ([]dto.BhaktResponse, int64, error)
	SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type bhaktService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	emailService     mailer.IEmailService
	adminEmail       string
	logger           logger.ILogger
}

func NewBhaktService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	emailService mailer.IEmailService,
	adminEmail string,
	log logger.ILogger,
) IBhaktService {
	return &bhaktService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		emailService:     emailService,
		adminEmail:       adminEmail,
		logger:           log,
	}
}

func (s *bhaktService) Register(ctx context.Context, req *dto.RegisterBhaktRequest) (*dto.RegisterBhaktResponse, error) {
	phone, err := NormalizeMobile(req.Phone)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	bhakts := uow.BhaktRepository()

	existing, err := bhakts.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	bhakt := &entity.Bhakt{
		Id:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        phone,
		City:         strings.TrimSpace(req.City),
		SevaInterest: strings.TrimSpace(req.SevaInterest),
		SubmittedAt:  time.Now(),
	}
	if err := bhakts.Create(ctx, bhakt); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Queue the welcome mail; delivery happens in the consumer.
	payload, err := json.Marshal(WelcomeMailMessage{Name: bhakt.Name, Email: bhakt.Email})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("BhaktService", "Failed to queue welcome mail", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.RegisterBhaktResponse{Id: bhakt.Id}, nil
}

func (s *bhaktService) List(ctx context.Context, limit, offset int) ([]dto.BhaktResponse, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	bhakts := uow.BhaktRepository()

	total, err := bhakts.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := bhakts.FindAll(ctx,
		specification.OrderBy{Field: "submitted_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.BhaktResponse, len(rows))
	for i, b := range rows {
		resp[i] = dto.BhaktResponse{
			Id:           b.Id,
			Name:         b.Name,
			Email:        b.Email,
			Phone:        b.Phone,
			City:         b.City,
			SevaInterest: b.SevaInterest,
			SubmittedAt:  b.SubmittedAt,
		}
	}
	return resp, total, nil
}

func (s *bhaktService) SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	msg := &entity.ContactMessage{
		Id:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	if err := uow.ContactRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.adminEmail != "" {
		go func() {
			if err := s.emailService.SendContactNotification(s.adminEmail, msg.Name, msg.Email, msg.Message); err != nil {
				s.logger.Warn("BhaktService", "Failed to forward contact message", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	return &dto.ContactResponse{Id: msg.Id}, nil
}
