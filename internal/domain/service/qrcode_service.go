package service

// QRCodeService defines the interface for generating shareable comparison QR codes.
type QRCodeService interface {
	// GenerateCompareQR renders a QR code PNG pointing at the comparison page
	// for the given ordered listing ids.
	GenerateCompareQR(ids []string) ([]byte, error)

	// CompareURL builds the shareable comparison page URL for the given ids.
	CompareURL(ids []string) string
}
