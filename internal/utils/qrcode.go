package utils

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodeSize is the edge length in pixels of rendered enrollment codes.
const QRCodeSize = 256

// QRCodeDataURI renders content as a PNG QR code and returns it as a data URI an <img> can show.
func QRCodeDataURI(content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("qr code content is empty")
	}
	png, err := qrcode.Encode(content, qrcode.Medium, QRCodeSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
