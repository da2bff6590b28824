package dto

type SendOTPRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=50"`
	Mobile string `json:"mobile" validate:"required"`
}

type SendOTPResponse struct {
	Mobile    string `json:"mobile"`
	ExpiresIn int    `json:"expires_in"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}

type VerifyOTPResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	UserToken string `json:"user_token"`
}

type ResendOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

type HarijapLoginRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=50"`
	Mobile string `json:"mobile" validate:"required"`
}

type HarijapLoginResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	City      string `json:"city,omitempty"`
	UserToken string `json:"user_token"`
}

type AdminLoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Passcode string `json:"passcode" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type CheckSessionResponse struct {
	LoggedIn  bool   `json:"logged_in"`
	Name      string `json:"name,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	UserToken string `json:"user_token,omitempty"`
}
