package models

import (
	"time"

	"github.com/google/uuid"
)

// HospitalStatus - статус проверки заявки больницы администратором
type HospitalStatus string

const (
	HospitalPending  HospitalStatus = "pending"
	HospitalVerified HospitalStatus = "verified"
	HospitalRejected HospitalStatus = "rejected"
)

// HospitalResources - заявленные ресурсы организации
type HospitalResources struct {
	Ambulances int `json:"ambulances"`
	Doctors    int `json:"doctors"`
	Beds       int `json:"beds"`
}

// HospitalAdmin - контакт ответственного лица больницы
type HospitalAdmin struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
}

// HospitalProfile - организация-ответчик. Создается саморегистрацией,
// меняется только административной проверкой, не удаляется.
type HospitalProfile struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	LicenseNumber   string            `json:"license_number"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone,omitempty"`
	PasswordHash    string            `json:"-"`
	Resources       HospitalResources `json:"resources"`
	AdminDetails    HospitalAdmin     `json:"admin_details"`
	Status          HospitalStatus    `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
