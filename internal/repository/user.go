package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Create создает профиль заявителя
func (r *UserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	contactsJSON, err := json.Marshal(user.EmergencyContacts)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency contacts: %w", err)
	}

	query := `
		INSERT INTO users (name, phone, email, blood_group, allergies, conditions, medications, emergency_contacts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		user.Name,
		user.Phone,
		user.Email,
		user.MedicalInfo.BloodGroup,
		user.MedicalInfo.Allergies,
		user.MedicalInfo.Conditions,
		user.MedicalInfo.Medications,
		contactsJSON,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

const userColumns = `
	id,
	name,
	phone,
	COALESCE(email, ''),
	COALESCE(blood_group, ''),
	COALESCE(allergies, ''),
	COALESCE(conditions, ''),
	COALESCE(medications, ''),
	emergency_contacts,
	created_at,
	updated_at`

// GetByID возвращает профиль по идентификатору
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// GetByPhone возвращает профиль по номеру телефона (логин заявителя)
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}
	return user, nil
}

// Update обновляет профиль. Снимки в инцидентах эта операция не трогает.
func (r *UserRepository) Update(ctx context.Context, user *models.UserProfile) error {
	contactsJSON, err := json.Marshal(user.EmergencyContacts)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency contacts: %w", err)
	}

	query := `
		UPDATE users SET
			name = $2,
			email = $3,
			blood_group = $4,
			allergies = $5,
			conditions = $6,
			medications = $7,
			emergency_contacts = $8,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.MedicalInfo.BloodGroup,
		user.MedicalInfo.Allergies,
		user.MedicalInfo.Conditions,
		user.MedicalInfo.Medications,
		contactsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*models.UserProfile, error) {
	user := &models.UserProfile{}
	var contactsJSON []byte

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Phone,
		&user.Email,
		&user.MedicalInfo.BloodGroup,
		&user.MedicalInfo.Allergies,
		&user.MedicalInfo.Conditions,
		&user.MedicalInfo.Medications,
		&contactsJSON,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(contactsJSON, &user.EmergencyContacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emergency contacts: %w", err)
	}
	return user, nil
}
