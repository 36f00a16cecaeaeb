package utils

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeDataURI(t *testing.T) {
	uri, err := QRCodeDataURI("otpauth://totp/Practice:ann@x.com?secret=JBSWY3DPEHPK3PXP&issuer=Practice")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err, "Payload should be a PNG")
	assert.Equal(t, QRCodeSize, img.Bounds().Dx())

	_, err = QRCodeDataURI("")
	assert.Error(t, err, "Empty content should be rejected")
}
