package qrcode

import (
	"testing"

	"thikana/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *qrcodeService {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 128,
			ErrorCorrectionLevel: "M",
			BaseURL:              "https://thikana.example.com/",
		},
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestQRCodeService_CompareURL(t *testing.T) {
	svc := newTestService()

	url := svc.CompareURL([]string{"a1", "b2"})
	assert.Equal(t, "https://thikana.example.com/compare?ids=a1%2Cb2", url)
}

func TestQRCodeService_GenerateCompareQR(t *testing.T) {
	svc := newTestService()

	png, err := svc.GenerateCompareQR([]string{"a1", "b2"})
	require.NoError(t, err)

	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, "/compare?ids=x", svc.CompareURL([]string{"x"}))
}
