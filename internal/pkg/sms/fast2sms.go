package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ISMSService delivers one-time passwords to Indian mobile numbers.
type ISMSService interface {
	SendOTP(ctx context.Context, mobile, otp string) error
}

// fast2smsService calls the Fast2SMS bulkV2 endpoint on its OTP route.
// There is no official Go SDK; the API is a single form POST.
type fast2smsService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFast2SMSService(apiKey string) ISMSService {
	return &fast2smsService{
		apiKey:  apiKey,
		baseURL: "https://www.fast2sms.com/dev/bulkV2",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type fast2smsResponse struct {
	Return  bool   `json:"return"`
	Message any    `json:"message"`
	Request string `json:"request_id"`
}

func (s *fast2smsService) SendOTP(ctx context.Context, mobile, otp string) error {
	form := url.Values{}
	form.Set("route", "otp")
	form.Set("variables_values", otp)
	form.Set("numbers", mobile)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fast2sms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var parsed fast2smsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("fast2sms returned unparseable body: %s", string(body))
	}
	if !parsed.Return {
		return fmt.Errorf("fast2sms rejected delivery: %v", parsed.Message)
	}
	return nil
}

// NoopService logs nothing and always succeeds. Used in development when no
// API key is configured so OTPs can be read from the application log.
type NoopService struct{}

func (NoopService) SendOTP(ctx context.Context, mobile, otp string) error {
	return nil
}
