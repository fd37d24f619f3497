package qrcode

import (
	"net/url"
	"path"
	"strings"

	"placebook/config"
	"placebook/internal/domain/service"
	"placebook/internal/errors"

	"github.com/skip2/go-qrcode"
)

const sharePathPrefix = "/shared/"

// ErrInvalidShareQR is returned when scanned content does not carry a share token.
var ErrInvalidShareQR = errors.New("invalid share QR code")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig builds the QR code service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(0, "", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// ShareURL returns the public link of a shared collection
func (s *qrcodeService) ShareURL(token string) string {
	return s.baseURL + sharePathPrefix + url.PathEscape(token)
}

// GenerateShareQR generates a PNG QR code that encodes the share link
func (s *qrcodeService) GenerateShareQR(token string) ([]byte, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("share token is required")
	}

	qrCode, err := qrcode.New(s.ShareURL(token), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShareQR extracts the share token from scanned QR content. Both absolute
// and relative share links are accepted.
func (s *qrcodeService) ParseShareQR(qrData string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(ErrInvalidShareQR, err.Error())
	}

	dir, token := path.Split(parsed.Path)
	if !strings.HasSuffix(dir, sharePathPrefix) || token == "" {
		return "", errors.Wrapf(ErrInvalidShareQR, "unexpected path %q", parsed.Path)
	}

	return token, nil
}
