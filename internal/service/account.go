package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с профилями заявителей
type UserRepository interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	GetByPhone(ctx context.Context, phone string) (*models.UserProfile, error)
	Update(ctx context.Context, user *models.UserProfile) error
}

// HospitalRepository определяет контракт для работы с профилями больниц
type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.HospitalProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HospitalProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.HospitalProfile, error)
	GetByAdminPhone(ctx context.Context, phone string) (*models.HospitalProfile, error)
	ListByStatus(ctx context.Context, status models.HospitalStatus, page, pageSize int) ([]*models.HospitalProfile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.HospitalStatus, reason string) error
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AccountService - регистрация, вход и административная проверка больниц
type AccountService interface {
	RegisterUser(ctx context.Context, user *models.UserProfile) error
	LoginUser(ctx context.Context, phone string) (*models.UserProfile, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, user *models.UserProfile) error

	RegisterHospital(ctx context.Context, hospital *models.HospitalProfile, password string) error
	LoginHospital(ctx context.Context, email, password string) (*models.HospitalProfile, error)
	ResetHospitalPassword(ctx context.Context, adminPhone, newPassword string) error
	ListHospitalsByStatus(ctx context.Context, status models.HospitalStatus, page, pageSize int) ([]*models.HospitalProfile, error)
	SetHospitalStatus(ctx context.Context, id uuid.UUID, status models.HospitalStatus, reason string) error
}

type accountService struct {
	users     UserRepository
	hospitals HospitalRepository
	logger    *logrus.Logger
}

func NewAccountService(users UserRepository, hospitals HospitalRepository, logger *logrus.Logger) AccountService {
	return &accountService{
		users:     users,
		hospitals: hospitals,
		logger:    logger,
	}
}

// RegisterUser регистрирует заявителя. Телефон уникален.
func (s *accountService) RegisterUser(ctx context.Context, user *models.UserProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "RegisterUser",
		"phone":   user.Phone,
	})
	log.Info("Registering new user")

	existing, err := s.users.GetByPhone(ctx, user.Phone)
	if err == nil && existing != nil {
		return ErrDuplicateAccount
	}

	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return nil
}

// LoginUser - вход заявителя по номеру телефона
func (s *accountService) LoginUser(ctx context.Context, phone string) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "LoginUser",
	})

	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		log.WithError(err).Warn("User login failed")
		return nil, fmt.Errorf("service: could not login user: %w", err)
	}
	return user, nil
}

// GetUser возвращает профиль заявителя
func (s *accountService) GetUser(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// UpdateUserProfile обновляет профиль. Снимки в уже созданных инцидентах не меняются.
func (s *accountService) UpdateUserProfile(ctx context.Context, user *models.UserProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "UpdateUserProfile",
		"user_id": user.ID,
	})

	existing, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return fmt.Errorf("service: user not found for update: %w", err)
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.MedicalInfo = user.MedicalInfo
	existing.EmergencyContacts = user.EmergencyContacts

	if err := s.users.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("User profile updated successfully")
	return nil
}

// RegisterHospital - саморегистрация больницы. Заявка попадает в статус pending
// и становится пригодной для входа только после одобрения администратором.
func (s *accountService) RegisterHospital(ctx context.Context, hospital *models.HospitalProfile, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "RegisterHospital",
		"email":   hospital.Email,
	})
	log.Info("Registering new hospital application")

	existing, err := s.hospitals.GetByEmail(ctx, hospital.Email)
	if err == nil && existing != nil {
		return ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash hospital password: %w", err)
	}

	hospital.PasswordHash = string(hash)
	hospital.Status = models.HospitalPending

	if err := s.hospitals.Create(ctx, hospital); err != nil {
		log.WithError(err).Error("Failed to create hospital in repository")
		return fmt.Errorf("service: could not register hospital: %w", err)
	}

	log.WithField("hospital_id", hospital.ID).Info("Hospital application submitted")
	return nil
}

// LoginHospital - вход больницы. Pending и rejected заявки к входу не допускаются.
func (s *accountService) LoginHospital(ctx context.Context, email, password string) (*models.HospitalProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "LoginHospital",
	})

	hospital, err := s.hospitals.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Hospital login failed: not found")
		return nil, fmt.Errorf("service: could not login hospital: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hospital.PasswordHash), []byte(password)); err != nil {
		log.Warn("Hospital login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	switch hospital.Status {
	case models.HospitalPending:
		return nil, ErrHospitalPending
	case models.HospitalRejected:
		return nil, fmt.Errorf("%w: %s", ErrHospitalRejected, hospital.RejectionReason)
	}

	return hospital, nil
}

// ResetHospitalPassword сбрасывает пароль по телефону ответственного лица
func (s *accountService) ResetHospitalPassword(ctx context.Context, adminPhone, newPassword string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "ResetHospitalPassword",
	})

	hospital, err := s.hospitals.GetByAdminPhone(ctx, adminPhone)
	if err != nil {
		log.WithError(err).Warn("Password reset failed: hospital not found by admin phone")
		return fmt.Errorf("service: could not reset password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash new password: %w", err)
	}

	if err := s.hospitals.SetPassword(ctx, hospital.ID, string(hash)); err != nil {
		log.WithError(err).Error("Failed to set new hospital password")
		return fmt.Errorf("service: could not reset password: %w", err)
	}

	log.WithField("hospital_id", hospital.ID).Info("Hospital password reset")
	return nil
}

// ListHospitalsByStatus возвращает заявки больниц для административной проверки
func (s *accountService) ListHospitalsByStatus(ctx context.Context, status models.HospitalStatus, page, pageSize int) ([]*models.HospitalProfile, error) {
	page, pageSize = normalizePage(page, pageSize)
	hospitals, err := s.hospitals.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}
	return hospitals, nil
}

// SetHospitalStatus - административное одобрение или отклонение заявки
func (s *accountService) SetHospitalStatus(ctx context.Context, id uuid.UUID, status models.HospitalStatus, reason string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "account",
		"method":      "SetHospitalStatus",
		"hospital_id": id,
		"status":      status,
	})
	log.Info("Updating hospital application status")

	if status != models.HospitalVerified && status != models.HospitalRejected {
		return fmt.Errorf("service: unsupported hospital status %q", status)
	}

	if _, err := s.hospitals.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent hospital")
		return fmt.Errorf("service: hospital not found for status update: %w", err)
	}

	if err := s.hospitals.SetStatus(ctx, id, status, reason); err != nil {
		log.WithError(err).Error("Failed to update hospital status in repository")
		return fmt.Errorf("service: could not update hospital status: %w", err)
	}

	log.Info("Hospital status updated successfully")
	return nil
}
