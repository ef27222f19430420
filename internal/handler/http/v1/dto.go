package v1

import (
	"time"

	"github.com/google/uuid"
)

// MedicalInfoDTO - медицинская сводка в запросах и ответах
type MedicalInfoDTO struct {
	BloodGroup  string `json:"blood_group,omitempty"`
	Allergies   string `json:"allergies,omitempty"`
	Conditions  string `json:"conditions,omitempty"`
	Medications string `json:"medications,omitempty"`
}

// EmergencyContactDTO - контакт для экстренной связи
type EmergencyContactDTO struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Relation string `json:"relation,omitempty"`
}

// EmergencyTypeDTO - категория инцидента
type EmergencyTypeDTO struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Icon         string   `json:"icon,omitempty"`
	Category     string   `json:"category,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Do           []string `json:"do,omitempty"`
	Dont         []string `json:"dont,omitempty"`
}

// RegisterUserRequest DTO для регистрации заявителя
// @Description DTO для регистрации заявителя
type RegisterUserRequest struct {
	Name              string                `json:"name" validate:"required,min=2,max=255"`
	Phone             string                `json:"phone" validate:"required,min=5,max=20"`
	Email             string                `json:"email,omitempty" validate:"omitempty,email"`
	MedicalInfo       MedicalInfoDTO        `json:"medical_info"`
	EmergencyContacts []EmergencyContactDTO `json:"emergency_contacts" validate:"max=5,dive"`
}

// UpdateUserProfileRequest DTO для обновления профиля заявителя
// @Description DTO для обновления профиля заявителя
type UpdateUserProfileRequest struct {
	Name              string                `json:"name" validate:"required,min=2,max=255"`
	Email             string                `json:"email,omitempty" validate:"omitempty,email"`
	MedicalInfo       MedicalInfoDTO        `json:"medical_info"`
	EmergencyContacts []EmergencyContactDTO `json:"emergency_contacts" validate:"max=5,dive"`
}

// LoginUserRequest DTO для входа заявителя по телефону
// @Description DTO для входа заявителя по телефону
type LoginUserRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// HospitalResourcesDTO - заявленные ресурсы больницы
type HospitalResourcesDTO struct {
	Ambulances int `json:"ambulances" validate:"gte=0"`
	Doctors    int `json:"doctors" validate:"gte=0"`
	Beds       int `json:"beds" validate:"gte=0"`
}

// HospitalAdminDTO - контакт ответственного лица больницы
type HospitalAdminDTO struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Designation string `json:"designation,omitempty"`
}

// RegisterHospitalRequest DTO для заявки больницы
// @Description DTO для заявки больницы
type RegisterHospitalRequest struct {
	Name          string               `json:"name" validate:"required,min=2,max=255"`
	LicenseNumber string               `json:"license_number" validate:"required"`
	Email         string               `json:"email" validate:"required,email"`
	Phone         string               `json:"phone,omitempty"`
	Password      string               `json:"password" validate:"required,min=8"`
	Resources     HospitalResourcesDTO `json:"resources"`
	AdminDetails  HospitalAdminDTO     `json:"admin_details"`
}

// LoginHospitalRequest DTO для входа больницы
// @Description DTO для входа больницы
type LoginHospitalRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetHospitalPasswordRequest DTO для сброса пароля больницы
// @Description DTO для сброса пароля больницы по телефону ответственного лица
type ResetHospitalPasswordRequest struct {
	AdminPhone  string `json:"admin_phone" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// SetHospitalStatusRequest DTO для административной проверки заявки
// @Description DTO для административной проверки заявки
type SetHospitalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
	Reason string `json:"reason,omitempty"`
}

// DispatchIncidentRequest DTO для создания SOS
// @Description DTO для создания SOS
type DispatchIncidentRequest struct {
	Type      *EmergencyTypeDTO `json:"type,omitempty"`
	Latitude  float64           `json:"latitude" validate:"required,latitude"`
	Longitude float64           `json:"longitude" validate:"required,longitude"`
}

// AcceptIncidentRequest DTO для принятия инцидента больницей
// @Description DTO для принятия инцидента больницей
type AcceptIncidentRequest struct {
	Eta     string `json:"eta" validate:"required"`
	Officer string `json:"officer,omitempty"`
}

// AdvanceStatusRequest DTO для продвижения статуса назначенной больницей
// @Description DTO для продвижения статуса назначенной больницей
type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=dispatched arrived resolved"`
}

// AppendLogRequest DTO для добавления записи в журнал инцидента
// @Description DTO для добавления записи в журнал инцидента
type AppendLogRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// UpdateIncidentTypeRequest DTO для уточнения категории инцидента
// @Description DTO для уточнения категории инцидента
type UpdateIncidentTypeRequest struct {
	Type *EmergencyTypeDTO `json:"type"`
}

// AttachEvidenceRequest DTO для прикрепления видеодоказательства
// @Description DTO для прикрепления видеодоказательства
type AttachEvidenceRequest struct {
	URL             string    `json:"url" validate:"required"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"duration_seconds" validate:"gte=0"`
}

// UpdateLocationRequest DTO для живого трекинга координат
// @Description DTO для живого трекинга координат
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// LocationResponse - координаты с адресом
type LocationResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
}

// LogEntryResponse - запись журнала инцидента
type LogEntryResponse struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// VideoEvidenceResponse - видеодоказательство
type VideoEvidenceResponse struct {
	URL             string    `json:"url"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"duration_seconds"`
}

// UserResponse DTO для ответа с профилем заявителя
// @Description DTO для ответа с профилем заявителя
type UserResponse struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	Phone             string                `json:"phone"`
	Email             string                `json:"email,omitempty"`
	MedicalInfo       MedicalInfoDTO        `json:"medical_info"`
	EmergencyContacts []EmergencyContactDTO `json:"emergency_contacts"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// HospitalResponse DTO для ответа с профилем больницы
// @Description DTO для ответа с профилем больницы
type HospitalResponse struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	LicenseNumber   string               `json:"license_number"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone,omitempty"`
	Resources       HospitalResourcesDTO `json:"resources"`
	AdminDetails    HospitalAdminDTO     `json:"admin_details"`
	Status          string               `json:"status"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID              `json:"id"`
	ReporterID         uuid.UUID              `json:"reporter_id"`
	Status             string                 `json:"status"`
	Type               *EmergencyTypeDTO      `json:"type,omitempty"`
	ReporterProfile    UserResponse           `json:"reporter_profile"`
	Location           LocationResponse       `json:"location"`
	Log                []LogEntryResponse     `json:"log"`
	AssignedHospitalID *uuid.UUID             `json:"assigned_hospital_id,omitempty"`
	AmbulanceEta       string                 `json:"ambulance_eta,omitempty"`
	EtaSeconds         int                    `json:"eta_seconds"`
	AssignedOfficer    string                 `json:"assigned_officer,omitempty"`
	VideoEvidence      *VideoEvidenceResponse `json:"video_evidence,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	EndedAt            *time.Time             `json:"ended_at,omitempty"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// AuthResponse DTO для ответа на вход с сессионным токеном
// @Description DTO для ответа на вход с сессионным токеном
type AuthResponse struct {
	Token    string            `json:"token"`
	Role     string            `json:"role"`
	User     *UserResponse     `json:"user,omitempty"`
	Hospital *HospitalResponse `json:"hospital,omitempty"`
}
