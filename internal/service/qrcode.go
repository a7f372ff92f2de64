package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRRenderer turns a table token into a scannable image.
type QRRenderer interface {
	Render(token string) ([]byte, error)
}

// DefaultQRRenderer encodes the customer landing URL for a token as a
// 256px PNG.
type DefaultQRRenderer struct {
	BaseURL string
}

func (g DefaultQRRenderer) Render(token string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/scan?code=%s", g.BaseURL, token)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
