package qrcode

import (
	"encoding/json"
	"testing"

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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateTicketQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateTicketQR("TKT-20260830-A1B2C3")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateTicketQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateTicketQR("TKT-20260830-A1B2C3")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseTicketQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		TicketCode: "TKT-20260830-A1B2C3",
		Type:       "ticket",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	code, err := service.ParseTicketQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "TKT-20260830-A1B2C3", code)
}

func TestQRCodeService_ParseTicketQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseTicketQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseTicketQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		TicketCode: "TKT-20260830-A1B2C3",
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseTicketQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseTicketQR_MissingCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		Type: "ticket",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseTicketQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing ticket code")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateTicketQR("TKT-20260830-A1B2C3")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG bytes are scanned by a device in real usage, so the
	// round trip is verified against the JSON payload directly.
	data := QRCodeData{
		TicketCode: "TKT-20260830-A1B2C3",
		Type:       "ticket",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	code, err := service.ParseTicketQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "TKT-20260830-A1B2C3", code)
}
