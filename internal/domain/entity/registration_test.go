package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationSessionStepGating(t *testing.T) {
	session := NewRegistrationSession(time.Now())

	assert.True(t, session.CanAccessStep(StepProfile))
	assert.False(t, session.CanAccessStep(StepIdentity))
	assert.False(t, session.CanAccessStep(StepPayment))
	assert.Nil(t, session.StepData(StepIdentity))

	session.SaveStepData(StepProfile, map[string]any{"stage_name": "Etop"})

	assert.True(t, session.CanAccessStep(StepIdentity))
	assert.False(t, session.CanAccessStep(StepPayment), "step 3 needs both prior steps")

	session.SaveStepData(StepIdentity, map[string]any{"phone": "256771234567"})

	assert.True(t, session.CanAccessStep(StepPayment))
}

func TestRegistrationSessionSaveStepData(t *testing.T) {
	session := NewRegistrationSession(time.Now())

	session.SaveStepData(StepProfile, map[string]any{"stage_name": "Etop", "genre_id": 7})

	assert.Equal(t, StepIdentity, session.CurrentStep)
	assert.True(t, session.IsStepCompleted(StepProfile))

	// Resubmitting merges instead of replacing and does not duplicate
	// the completion record.
	session.SaveStepData(StepProfile, map[string]any{"bio": "Akogo fusion"})

	bag := session.StepData(StepProfile)
	require.NotNil(t, bag)
	assert.Equal(t, "Etop", bag["stage_name"])
	assert.Equal(t, "Akogo fusion", bag["bio"])
	assert.Equal(t, []int{StepProfile}, session.CompletedSteps)
}

func TestRegistrationSessionUpdateStepData(t *testing.T) {
	session := NewRegistrationSession(time.Now())
	session.SaveStepData(StepProfile, map[string]any{"stage_name": "Etop"})

	// Out-of-band upload metadata lands without completing the step.
	session.UpdateStepData(StepIdentity, "document_selfie", UploadedFile{Path: "kyc/selfie.jpg"})

	assert.False(t, session.IsStepCompleted(StepIdentity))
	bag := session.StepData(StepIdentity)
	require.NotNil(t, bag)
	assert.Contains(t, bag, "document_selfie")
}

func TestRegistrationSessionActive(t *testing.T) {
	start := time.Now()
	session := NewRegistrationSession(start)

	assert.True(t, session.Active(start))
	assert.True(t, session.Active(start.Add(SessionTTL-time.Second)))
	assert.False(t, session.Active(start.Add(SessionTTL)))
	assert.False(t, session.Active(start.Add(48*time.Hour)))
}

func TestRegistrationSessionOutOfRangeSteps(t *testing.T) {
	session := NewRegistrationSession(time.Now())

	assert.False(t, session.CanAccessStep(0))
	assert.False(t, session.CanAccessStep(LastStep+1))
}
