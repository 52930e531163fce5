package service

// QRCodeService generates and parses ticket check-in QR codes.
type QRCodeService interface {
	// GenerateTicketQR generates a QR code PNG embedding the ticket code.
	GenerateTicketQR(ticketCode string) ([]byte, error)

	// ParseTicketQR parses QR code payload and returns the ticket code.
	ParseTicketQR(qrData string) (string, error)
}
