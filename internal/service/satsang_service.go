package service

import (
	"context"
	"time"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/repository/specification"
	"sadguru-seva-be/internal/repository/unitofwork"
)

// satsangStartDate anchors the page arithmetic: page 1 was served on this
// IST date and the series advances one page per day.
var satsangStartDate = time.Date(2025, time.August, 17, 0, 0, 0, 0, istZone)

const satsangFallbackText = "आज का सत्संग शीघ्र ही उपलब्ध होगा। कृपया थोड़ी देर बाद पुनः पधारें।"

type ISatsangService interface {
	Page(ctx context.Context, pageOverride int) (*dto.SatsangPageResponse, error)
	ServerTime() *dto.ServerTimeResponse
}

type satsangService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSatsangService(uowFactory unitofwork.RepositoryFactory) ISatsangService {
	return &satsangService{uowFactory: uowFactory}
}

// TodayPageNumber computes which satsang page today's visitors get.
func TodayPageNumber(now time.Time) int {
	now = now.In(istZone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, istZone)
	days := int(today.Sub(satsangStartDate).Hours() / 24)
	return days + 1
}

func (s *satsangService) Page(ctx context.Context, pageOverride int) (*dto.SatsangPageResponse, error) {
	todayPage := TodayPageNumber(time.Now())
	page := todayPage
	if pageOverride > 0 {
		page = pageOverride
	}
	if page < 1 {
		page = 1
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	satsangs := uow.SatsangRepository()

	maxPage, err := satsangs.MaxPageNumber(ctx)
	if err != nil {
		return nil, err
	}

	row, err := satsangs.FindOne(ctx, specification.ByPageNumber{Page: page}, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	resp := &dto.SatsangPageResponse{
		Page:    page,
		HasPrev: page > 1,
		HasNext: page < maxPage && page < todayPage,
		IsToday: page == todayPage,
	}

	if row == nil {
		resp.Title = "सत्संग"
		resp.Content = satsangFallbackText
		resp.Fallback = true
		return resp, nil
	}

	resp.Title = row.Title
	resp.Content = row.Content
	resp.ContentEn = row.ContentEn
	resp.Author = row.Author
	return resp, nil
}

func (s *satsangService) ServerTime() *dto.ServerTimeResponse {
	now := istNow()
	return &dto.ServerTimeResponse{
		ServerTime: now.Format(time.RFC3339),
		Date:       now.Format("2006-01-02"),
		Timezone:   "IST",
	}
}
