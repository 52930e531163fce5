package qrcode

import (
	"encoding/json"
	"fmt"

	"tesotunes/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	TicketCode string `json:"ticket_code"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTicketQR generates a QR code PNG for a ticket check-in code
func (s *qrcodeService) GenerateTicketQR(ticketCode string) ([]byte, error) {
	data := QRCodeData{
		TicketCode: ticketCode,
		Type:       "ticket",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseTicketQR parses QR code data and returns the embedded ticket code
func (s *qrcodeService) ParseTicketQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "ticket" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.TicketCode == "" {
		return "", fmt.Errorf("missing ticket code")
	}

	return data.TicketCode, nil
}
