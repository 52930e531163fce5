// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// Registration wizard steps. The wizard is strictly ordered: profile
// basics, then identity/KYC, then payment and credentials.
const (
	StepProfile  = 1
	StepIdentity = 2
	StepPayment  = 3

	// FirstStep and LastStep bound the wizard.
	FirstStep = StepProfile
	LastStep  = StepPayment
)

// SessionTTL is the soft inactivity limit after which a registration
// session is treated as expired. Checked lazily, not enforced by a timer.
const SessionTTL = 2 * time.Hour

// RegistrationSession is the server-held, resumable state of the
// three-step artist onboarding wizard, keyed to a browser session.
// It is deliberately JSON-serializable and bounded: uploads are stored
// out of band and only their metadata lands in a step's data bag.
type RegistrationSession struct {
	CurrentStep    int                    `json:"current_step"`    // The step the client should be on next, 1-3.
	CompletedSteps []int                  `json:"completed_steps"` // Steps whose validated submission has been recorded.
	Data           map[int]map[string]any `json:"data"`            // Per-step field bags.
	StartedAt      time.Time              `json:"started_at"`      // When the session was initialized.
}

// NewRegistrationSession resets to a pristine wizard state. Any prior
// session state is overwritten unconditionally by the caller storing this.
func NewRegistrationSession(now time.Time) *RegistrationSession {
	return &RegistrationSession{
		CurrentStep:    FirstStep,
		CompletedSteps: []int{},
		Data: map[int]map[string]any{
			StepProfile:  {},
			StepIdentity: {},
			StepPayment:  {},
		},
		StartedAt: now,
	}
}

// IsStepCompleted is a pure membership check against CompletedSteps.
func (s *RegistrationSession) IsStepCompleted(step int) bool {
	return slices.Contains(s.CompletedSteps, step)
}

// CanAccessStep reports whether a step's data bag may be read or
// written: all lower-numbered steps must already be completed.
func (s *RegistrationSession) CanAccessStep(step int) bool {
	if step < FirstStep || step > LastStep {
		return false
	}
	for n := FirstStep; n < step; n++ {
		if !s.IsStepCompleted(n) {
			return false
		}
	}

	return true
}

// StepData returns the data bag for a step, or nil when the step is not
// yet accessible under the gating rule.
func (s *RegistrationSession) StepData(step int) map[string]any {
	if !s.CanAccessStep(step) {
		return nil
	}

	return s.Data[step]
}

// SaveStepData merges data into the step's bag (existing keys are
// overwritten, others preserved), advances CurrentStep past the step,
// and records the step as completed. Validation is the caller's job;
// none happens here.
func (s *RegistrationSession) SaveStepData(step int, data map[string]any) {
	if s.Data == nil {
		s.Data = map[int]map[string]any{}
	}
	if s.Data[step] == nil {
		s.Data[step] = map[string]any{}
	}
	for k, v := range data {
		s.Data[step][k] = v
	}

	s.CurrentStep = step + 1
	if !s.IsStepCompleted(step) {
		s.CompletedSteps = append(s.CompletedSteps, step)
	}
}

// UpdateStepData performs a single-key mutation into a step's bag. Used
// for out-of-band metadata, such as file-upload results, that arrive
// after the main submission.
func (s *RegistrationSession) UpdateStepData(step int, key string, value any) {
	if s.Data == nil {
		s.Data = map[int]map[string]any{}
	}
	if s.Data[step] == nil {
		s.Data[step] = map[string]any{}
	}
	s.Data[step][key] = value
}

// Active reports whether the session is still within its soft TTL.
func (s *RegistrationSession) Active(now time.Time) bool {
	return now.Sub(s.StartedAt) < SessionTTL
}

// UploadedFile is the metadata tuple persisted into a session after a
// binary upload. The raw file never enters the session.
type UploadedFile struct {
	Path         string `json:"path"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}
