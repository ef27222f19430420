package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardOnly(t *testing.T) {
	// Разрешенные переходы
	assert.True(t, CanTransition(StatusActive, StatusAssigned))
	assert.True(t, CanTransition(StatusActive, StatusResolved))
	assert.True(t, CanTransition(StatusActive, StatusRejected))
	assert.True(t, CanTransition(StatusAssigned, StatusDispatched))
	assert.True(t, CanTransition(StatusAssigned, StatusResolved))
	assert.True(t, CanTransition(StatusAssigned, StatusRejected))
	assert.True(t, CanTransition(StatusDispatched, StatusArrived))
	assert.True(t, CanTransition(StatusDispatched, StatusResolved))
	assert.True(t, CanTransition(StatusArrived, StatusResolved))

	// Обратных переходов нет
	assert.False(t, CanTransition(StatusAssigned, StatusActive))
	assert.False(t, CanTransition(StatusDispatched, StatusAssigned))
	assert.False(t, CanTransition(StatusArrived, StatusDispatched))

	// Нельзя перескочить через стадию
	assert.False(t, CanTransition(StatusActive, StatusDispatched))
	assert.False(t, CanTransition(StatusActive, StatusArrived))
	assert.False(t, CanTransition(StatusAssigned, StatusArrived))

	// После dispatched отмена уже невозможна
	assert.False(t, CanTransition(StatusDispatched, StatusRejected))
	assert.False(t, CanTransition(StatusArrived, StatusRejected))
}

func TestCanTransition_TerminalIsFinal(t *testing.T) {
	for _, terminal := range []IncidentStatus{StatusResolved, StatusRejected} {
		for _, next := range []IncidentStatus{StatusActive, StatusAssigned, StatusDispatched, StatusArrived, StatusResolved, StatusRejected} {
			assert.False(t, CanTransition(terminal, next), "terminal %s must not transition to %s", terminal, next)
		}
	}
}

func TestIncidentStatus_Terminal(t *testing.T) {
	assert.True(t, StatusResolved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusActive.Terminal())
	assert.False(t, StatusAssigned.Terminal())
	assert.False(t, StatusDispatched.Terminal())
	assert.False(t, StatusArrived.Terminal())
}

func TestIncidentStatus_Valid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, IncidentStatus("cancelled").Valid())
	assert.False(t, IncidentStatus("").Valid())
}

func TestEtaSeconds(t *testing.T) {
	assert.Equal(t, 480, EtaSeconds("8 min"))
	assert.Equal(t, 480, EtaSeconds("8 minutes"))
	assert.Equal(t, 60, EtaSeconds("1min"))
	assert.Equal(t, 720, EtaSeconds("  12 min "))
	assert.Equal(t, DefaultEtaSeconds, EtaSeconds(""))
	assert.Equal(t, DefaultEtaSeconds, EtaSeconds("soon"))
	assert.Equal(t, DefaultEtaSeconds, EtaSeconds("0 min"))
}
