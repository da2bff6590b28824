package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain ten digits", "9876543210", "9876543210", false},
		{"with country code", "+919876543210", "9876543210", false},
		{"with spaces and dashes", "+91 98765-43210", "9876543210", false},
		{"leading zero trunk prefix", "09876543210", "9876543210", false},
		{"starts below six", "5876543210", "", true},
		{"too short", "98765", "", true},
		{"letters", "98765abcde", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeMobile(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, validName("Radha Sharma"))
	assert.True(t, validName("Sh"))
	assert.False(t, validName("R"))
	assert.False(t, validName("Radha123"))
	assert.False(t, validName(""))
}

func TestGenerateOTP(t *testing.T) {
	otp, err := generateOTP()
	assert.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}
