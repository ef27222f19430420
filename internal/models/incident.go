package models

import (
	"time"

	"github.com/google/uuid"
)

// Location - координаты инцидента с адресом, полученным обратным геокодированием
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
}

// LogEntry - запись журнала инцидента (журнал только дополняется)
type LogEntry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// EmergencyType - категория инцидента с инструкциями первой помощи
type EmergencyType struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon"`
	Category     string   `json:"category"`
	Instructions []string `json:"instructions,omitempty"`
	Do           []string `json:"do,omitempty"`
	Dont         []string `json:"dont,omitempty"`
}

// VideoEvidence - единственная ссылка на видеодоказательство (перезаписывается целиком)
type VideoEvidence struct {
	URL             string    `json:"url"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"duration_seconds"`
}

// Incident - один SOS-эпизод от создания до завершения или отклонения
type Incident struct {
	ID                 uuid.UUID      `json:"id"`
	ReporterID         uuid.UUID      `json:"reporter_id"`
	Status             IncidentStatus `json:"status"`
	Type               *EmergencyType `json:"type,omitempty"`
	ReporterProfile    UserProfile    `json:"reporter_profile"`
	Location           Location       `json:"location"`
	Log                []LogEntry     `json:"log"`
	AssignedHospitalID *uuid.UUID     `json:"assigned_hospital_id,omitempty"`
	AmbulanceEta       string         `json:"ambulance_eta,omitempty"`
	AssignedOfficer    string         `json:"assigned_officer,omitempty"`
	VideoEvidence      *VideoEvidence `json:"video_evidence,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	EndedAt            *time.Time     `json:"ended_at,omitempty"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// VisibleTo сообщает, виден ли инцидент больнице в её живой ленте:
// неназначенные видны всем (конкурентное принятие), назначенные - только назначенной
func (i *Incident) VisibleTo(hospitalID uuid.UUID) bool {
	if i.Status.Terminal() {
		return false
	}
	return i.AssignedHospitalID == nil || *i.AssignedHospitalID == hospitalID
}
