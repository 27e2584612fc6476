// Package qrcode renders comparison share links as QR code images.
package qrcode

import (
	"net/url"
	"strings"

	"thikana/config"
	"thikana/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcode.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = recoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateCompareQR renders a PNG QR code that opens the comparison page for
// the given listing ids.
func (s *qrcodeService) GenerateCompareQR(ids []string) ([]byte, error) {
	qrCode, err := qrcode.New(s.CompareURL(ids), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// CompareURL builds the shareable comparison page URL for the given ids.
func (s *qrcodeService) CompareURL(ids []string) string {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))

	return s.baseURL + "/compare?" + query.Encode()
}

func recoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
