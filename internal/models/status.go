package models

import (
	"strconv"
	"strings"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusActive     IncidentStatus = "active"
	StatusAssigned   IncidentStatus = "assigned"
	StatusDispatched IncidentStatus = "dispatched"
	StatusArrived    IncidentStatus = "arrived"
	StatusResolved   IncidentStatus = "resolved"
	StatusRejected   IncidentStatus = "rejected"
)

// LiveStatuses - статусы, попадающие в живую ленту
var LiveStatuses = []IncidentStatus{StatusActive, StatusAssigned, StatusDispatched, StatusArrived}

// transitions - граф допустимых переходов. Статус движется только вперед:
// active -> assigned -> dispatched -> arrived -> resolved,
// либо в rejected из active/assigned. Обратных переходов нет.
var transitions = map[IncidentStatus][]IncidentStatus{
	StatusActive:     {StatusAssigned, StatusResolved, StatusRejected},
	StatusAssigned:   {StatusDispatched, StatusResolved, StatusRejected},
	StatusDispatched: {StatusArrived, StatusResolved},
	StatusArrived:    {StatusResolved},
	StatusResolved:   {},
	StatusRejected:   {},
}

// Valid проверяет, что статус входит в множество известных
func (s IncidentStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal сообщает, является ли статус терминальным
func (s IncidentStatus) Terminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// CanTransition проверяет переход по направленному графу статусов
func CanTransition(from, to IncidentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DefaultEtaSeconds - запасное значение, если ETA отсутствует или нечитаемо
const DefaultEtaSeconds = 300

// EtaSeconds разбирает человеко-читаемую строку ETA вида "8 min" в секунды.
// Берется ведущее целое число; пустая или нечитаемая строка дает DefaultEtaSeconds.
func EtaSeconds(eta string) int {
	s := strings.TrimSpace(eta)
	if s == "" {
		return DefaultEtaSeconds
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	minutes, err := strconv.Atoi(s[:end])
	if err != nil || minutes <= 0 {
		return DefaultEtaSeconds
	}
	return minutes * 60
}
