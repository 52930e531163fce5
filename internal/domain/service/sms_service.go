package service

import "context"

// SMSService is the outbound gate for verification codes. Delivery is
// fire-and-forget beyond the returned error; there is no receipt
// tracking contract.
type SMSService interface {
	// SendVerificationCode dispatches the code to the phone number.
	SendVerificationCode(ctx context.Context, phone, code string) error
}
