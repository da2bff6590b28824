// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/pkg/sms"
	"sadguru-seva-be/internal/repository/specification"
	"sadguru-seva-be/internal/repository/unitofwork"
	"sadguru-seva-be/pkg/events"
	pktNats "sadguru-seva-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	otpExpiry  = 10 * time.Minute
	sessionTTL = 30 * 24 * time.Hour
	adminTTL   = 12 * time.Hour
)

var (
	nameRe      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z\s.']{1,49}$`)
	mobileRe    = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigitsRe = regexp.MustCompile(`\D`)
)

// NormalizeMobile strips everything but digits and keeps the last ten, so
// "+91 98765 43210" and "9876543210" key the same account.
func NormalizeMobile(raw string) (string, error) {
	digits := nonDigitsRe.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	if !mobileRe.MatchString(digits) {
		return "", ErrInvalidInput
	}
	return digits, nil
}

func validName(name string) bool {
	return nameRe.MatchString(strings.TrimSpace(name))
}

type IAuthService interface {
	SendOTP(ctx context.Context, req *dto.SendOTPRequest) (*dto.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error)
	ResendOTP(ctx context.Context, req *dto.ResendOTPRequest) (*dto.SendOTPResponse, error)
	HarijapLogin(ctx context.Context, req *dto.HarijapLoginRequest) (*dto.HarijapLoginResponse, error)
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	CheckSession(ctx context.Context, claims jwt.MapClaims) *dto.CheckSessionResponse
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	smsService     sms.ISMSService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	smsService sms.ISMSService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		smsService:     smsService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func (s *authService) SendOTP(ctx context.Context, req *dto.SendOTPRequest) (*dto.SendOTPResponse, error) {
	if !validName(req.Name) {
		return nil, ErrInvalidInput
	}
	mobile, err := NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(otpExpiry)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	user, err := users.FindOne(ctx, specification.ByMobile{Mobile: mobile})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Id:     uuid.New(),
			Name:   strings.TrimSpace(req.Name),
			Mobile: mobile,
			OTP:    &otpCode,
		}
		user.OTPExpiry = &expiry
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.Name = strings.TrimSpace(req.Name)
		user.OTP = &otpCode
		user.OTPExpiry = &expiry
		user.OTPVerified = false
		if err := users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.smsService.SendOTP(ctx, mobile, otpCode); err != nil {
		// The code is stored; the user can ask for a resend.
		s.logger.Error("AuthService", "OTP delivery failed", map[string]interface{}{"mobile": mobile, "error": err.Error()})
	}

	return &dto.SendOTPResponse{
		Mobile:    mobile,
		ExpiresIn: int(otpExpiry.Seconds()),
	}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	mobile, err := NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	user, err := users.FindOne(ctx, specification.ByMobile{Mobile: mobile})
	if err != nil {
		return nil, err
	}
	if user == nil || user.OTP == nil || user.OTPExpiry == nil {
		return nil, ErrUnauthorized
	}
	if *user.OTP != req.OTP || time.Now().After(*user.OTPExpiry) {
		return nil, ErrUnauthorized
	}

	now := time.Now()
	user.OTP = nil
	user.OTPExpiry = nil
	user.OTPVerified = true
	user.LastLoginAt = &now
	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	userToken := user.Id.String()
	token, err := serverutils.IssueToken(userToken, user.Name, "user", sessionTTL)
	if err != nil {
		return nil, err
	}

	s.publishLogin(userToken, user.Name, "otp")

	return &dto.VerifyOTPResponse{
		Token:     token,
		Name:      user.Name,
		Mobile:    user.Mobile,
		UserToken: userToken,
	}, nil
}

func (s *authService) ResendOTP(ctx context.Context, req *dto.ResendOTPRequest) (*dto.SendOTPResponse, error) {
	mobile, err := NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()
	user, err := users.FindOne(ctx, specification.ByMobile{Mobile: mobile})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return s.SendOTP(ctx, &dto.SendOTPRequest{Name: user.Name, Mobile: mobile})
}

// HarijapLogin skips OTP entirely: a registered bhakt proves identity with
// the same name + mobile pair used at registration.
func (s *authService) HarijapLogin(ctx context.Context, req *dto.HarijapLoginRequest) (*dto.HarijapLoginResponse, error) {
	if !validName(req.Name) {
		return nil, ErrInvalidInput
	}
	mobile, err := NormalizeMobile(req.Mobile)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	bhakt, err := uow.BhaktRepository().FindOne(ctx, specification.ByNameAndPhone{
		Name:  strings.TrimSpace(req.Name),
		Phone: mobile,
	})
	if err != nil {
		return nil, err
	}
	if bhakt == nil {
		return nil, ErrUnauthorized
	}

	// Mirror the bhakt into the users table so japa progress keys exist.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	users := uow.UserRepository()
	user, err := users.FindOne(ctx, specification.ByMobile{Mobile: mobile})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if user == nil {
		user = &entity.User{
			Id:          uuid.New(),
			Name:        bhakt.Name,
			Mobile:      mobile,
			OTPVerified: true,
			LastLoginAt: &now,
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.LastLoginAt = &now
		if err := users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	userToken := user.Id.String()
	token, err := serverutils.IssueToken(userToken, user.Name, "user", sessionTTL)
	if err != nil {
		return nil, err
	}

	s.publishLogin(userToken, user.Name, "harijap")

	return &dto.HarijapLoginResponse{
		Token:     token,
		Name:      user.Name,
		City:      bhakt.City,
		UserToken: userToken,
	}, nil
}

func (s *authService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	phone, err := NormalizeMobile(req.Phone)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByNameAndPhone{
		Name:  strings.TrimSpace(req.Name),
		Phone: phone,
	})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasscodeHash), []byte(req.Passcode)); err != nil {
		return nil, ErrUnauthorized
	}

	token, err := serverutils.IssueToken(admin.Id.String(), admin.Name, "admin", adminTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		Token: token,
		Name:  admin.Name,
	}, nil
}

func (s *authService) CheckSession(ctx context.Context, claims jwt.MapClaims) *dto.CheckSessionResponse {
	userToken, _ := claims["user_token"].(string)
	name, _ := claims["name"].(string)
	if userToken == "" {
		return &dto.CheckSessionResponse{LoggedIn: false}
	}
	return &dto.CheckSessionResponse{
		LoggedIn:  true,
		Name:      name,
		UserToken: userToken,
	}
}

func (s *authService) publishLogin(userToken, name, method string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewUserLogin(userToken, name, method)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AuthService", "Failed to publish login event", map[string]interface{}{"error": err.Error()})
		}
	}()
}
