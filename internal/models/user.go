package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicalInfo - медицинская сводка пользователя
type MedicalInfo struct {
	BloodGroup  string `json:"blood_group"`
	Allergies   string `json:"allergies"`
	Conditions  string `json:"conditions"`
	Medications string `json:"medications"`
}

// EmergencyContact - контакт для экстренной связи
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// UserProfile - профиль заявителя. Встраивается в инцидент по значению
// при создании, поэтому последующие правки профиля не меняют историю.
type UserProfile struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone"`
	Email             string             `json:"email,omitempty"`
	MedicalInfo       MedicalInfo        `json:"medical_info"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
