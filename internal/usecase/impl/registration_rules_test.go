package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactRules(t *testing.T) {
	tests := []struct {
		name          string
		emailEnabled  bool
		phoneEnabled  bool
		emailRequired bool
		phoneRequired bool
	}{
		{"both enabled", true, true, true, true},
		{"email only", true, false, true, false},
		{"phone only", false, true, false, true},
		// With every channel switched off, email stays mandatory
		// because the account could never log in without it.
		{"both disabled", false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := contactRules(tt.emailEnabled, tt.phoneEnabled)
			assert.Equal(t, tt.emailRequired, req.EmailRequired)
			assert.Equal(t, tt.phoneRequired, req.PhoneRequired)
		})
	}
}
