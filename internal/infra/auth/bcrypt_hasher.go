// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"tesotunes/config"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Defaults applied when no password strength policy is configured.
const (
	defaultMinLength = 8
	defaultMaxLength = 72 // bcrypt truncates beyond 72 bytes
)

// forbiddenWords are substrings a password must not contain, checked
// case-insensitively.
var forbiddenWords = []string{"password", "admin", "tesotunes"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher. Cost and strength
// policy come from config; zero values fall back to sane defaults.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength:        defaultMinLength,
		MaxLength:        defaultMaxLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MinLength == 0 {
			policy.MinLength = defaultMinLength
		}
		if policy.MaxLength == 0 {
			policy.MaxLength = defaultMaxLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and the
// default strength policy. Useful in tests where a low cost keeps bcrypt fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost: cost,
		policy: config.PasswordStrengthConfig{
			MinLength:        defaultMinLength,
			MaxLength:        defaultMaxLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

// Hash validates strength and generates a salted bcrypt hash.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength rejects passwords that miss the configured
// policy. Every failure wraps ErrPasswordStrength so callers can map it
// to one client-facing error.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at least %d characters long", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at most %d characters long", h.policy.MaxLength)
	}
	if h.policy.RequireLowercase && !containsFunc(password, unicode.IsLower) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !containsFunc(password, unicode.IsUpper) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !containsFunc(password, unicode.IsDigit) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one number")
	}
	if h.policy.RequireSpecial && !containsFunc(password, isSpecialChar) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one special character")
	}
	if word, found := containsForbiddenWord(password); found {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password contains forbidden words (%s)", word)
	}

	return nil
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}

	return false
}

func isSpecialChar(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}

func containsForbiddenWord(password string) (string, bool) {
	lowered := strings.ToLower(password)
	for _, word := range forbiddenWords {
		if strings.Contains(lowered, word) {
			return word, true
		}
	}

	return "", false
}
