package sms

import (
	"context"
	"log/slog"

	"tesotunes/internal/domain/service"
)

// logSender is a development SMSService that writes codes to the log
// instead of a gateway. Never wire it into production config.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.SMSService {
	return &logSender{logger: logger}
}

// SendVerificationCode logs the code instead of dispatching it.
func (s *logSender) SendVerificationCode(ctx context.Context, phone, code string) error {
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "SMS gateway disabled, logging verification code",
			slog.String("phone", phone),
			slog.String("code", code),
		)
	}

	return nil
}
