package qrcode

import (
	"testing"

	"placebook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://placebook.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://placebook.example")

	qrBytes, err := service.GenerateShareQR("c2hhcmUtdG9rZW4")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateShareQR_EmptyToken(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateShareQR(" ")
	assert.Error(t, err)
}

func TestQRCodeService_ShareURL(t *testing.T) {
	assert.Equal(t, "https://placebook.example/shared/abc",
		NewQRCodeService(256, "M", "https://placebook.example/").ShareURL("abc"))
	assert.Equal(t, "/shared/abc", NewQRCodeService(256, "M", "").ShareURL("abc"))
}

func TestQRCodeService_ParseShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://placebook.example")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "absolute link", data: "https://placebook.example/shared/abc123", want: "abc123"},
		{name: "relative link", data: "/shared/abc123", want: "abc123"},
		{name: "other host", data: "https://mirror.example/app/shared/xyz", want: "xyz"},
		{name: "round trip", data: service.ShareURL("tok-9"), want: "tok-9"},
		{name: "wrong path", data: "https://placebook.example/collections/abc", wantErr: true},
		{name: "missing token", data: "https://placebook.example/shared/", wantErr: true},
		{name: "garbage", data: "%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.ParseShareQR(tt.data)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidShareQR)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://x.example"}}

	service := NewFromConfig(cfg)
	assert.Equal(t, "https://x.example/shared/t", service.ShareURL("t"))

	assert.Equal(t, "/shared/t", NewFromConfig(&config.Config{}).ShareURL("t"))
}
