package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type HospitalRepository struct {
	db *pgxpool.Pool
}

func NewHospitalRepository(db *pgxpool.Pool) service.HospitalRepository {
	return &HospitalRepository{db: db}
}

const hospitalColumns = `
	id,
	name,
	license_number,
	email,
	COALESCE(phone, ''),
	password_hash,
	ambulance_count,
	doctor_count,
	bed_count,
	admin_name,
	admin_phone,
	admin_designation,
	status,
	COALESCE(rejection_reason, ''),
	created_at,
	updated_at`

// Create создает заявку больницы
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.HospitalProfile) error {
	query := `
		INSERT INTO hospitals (name, license_number, email, phone, password_hash,
			ambulance_count, doctor_count, bed_count, admin_name, admin_phone, admin_designation, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		hospital.Name,
		hospital.LicenseNumber,
		hospital.Email,
		hospital.Phone,
		hospital.PasswordHash,
		hospital.Resources.Ambulances,
		hospital.Resources.Doctors,
		hospital.Resources.Beds,
		hospital.AdminDetails.Name,
		hospital.AdminDetails.Phone,
		hospital.AdminDetails.Designation,
		hospital.Status,
	).Scan(&hospital.ID, &hospital.CreatedAt, &hospital.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// GetByID возвращает больницу по идентификатору
func (r *HospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HospitalProfile, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1;`
	hospital, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to get hospital by id: %w", err)
	}
	return hospital, nil
}

// GetByEmail возвращает больницу по email (логин)
func (r *HospitalRepository) GetByEmail(ctx context.Context, email string) (*models.HospitalProfile, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE email = $1;`
	hospital, err := scanHospital(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to get hospital by email: %w", err)
	}
	return hospital, nil
}

// GetByAdminPhone возвращает больницу по телефону ответственного лица (сброс пароля)
func (r *HospitalRepository) GetByAdminPhone(ctx context.Context, phone string) (*models.HospitalProfile, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE admin_phone = $1;`
	hospital, err := scanHospital(r.db.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to get hospital by admin phone: %w", err)
	}
	return hospital, nil
}

// ListByStatus возвращает заявки в заданном статусе с пагинацией
func (r *HospitalRepository) ListByStatus(ctx context.Context, status models.HospitalStatus, page, pageSize int) ([]*models.HospitalProfile, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + hospitalColumns + `
		FROM hospitals
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals by status: %w", err)
	}
	defer rows.Close()

	hospitals := make([]*models.HospitalProfile, 0)
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hospitals, nil
}

// SetStatus - результат административной проверки заявки
func (r *HospitalRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.HospitalStatus, reason string) error {
	query := `
		UPDATE hospitals SET
			status = $2,
			rejection_reason = NULLIF($3, ''),
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, status, reason)
	if err != nil {
		return fmt.Errorf("failed to set hospital status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrHospitalNotFound
	}
	return nil
}

// SetPassword обновляет хэш пароля больницы
func (r *HospitalRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE hospitals SET password_hash = $2, updated_at = NOW() WHERE id = $1;`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to set hospital password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrHospitalNotFound
	}
	return nil
}

func scanHospital(row pgx.Row) (*models.HospitalProfile, error) {
	hospital := &models.HospitalProfile{}
	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.LicenseNumber,
		&hospital.Email,
		&hospital.Phone,
		&hospital.PasswordHash,
		&hospital.Resources.Ambulances,
		&hospital.Resources.Doctors,
		&hospital.Resources.Beds,
		&hospital.AdminDetails.Name,
		&hospital.AdminDetails.Phone,
		&hospital.AdminDetails.Designation,
		&hospital.Status,
		&hospital.RejectionReason,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hospital, nil
}
