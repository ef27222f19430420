package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

// IncidentChangesChannel - канал pub/sub, по которому живая лента узнает об изменениях
const IncidentChangesChannel = "incident_changes"

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	reporter_id,
	status,
	emergency_type,
	reporter_profile,
	latitude,
	longitude,
	COALESCE(address, ''),
	log,
	assigned_hospital_id,
	COALESCE(ambulance_eta, ''),
	COALESCE(assigned_officer, ''),
	video_evidence,
	created_at,
	ended_at,
	updated_at`

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	profileJSON, err := json.Marshal(incident.ReporterProfile)
	if err != nil {
		return fmt.Errorf("failed to marshal reporter profile: %w", err)
	}
	logJSON, err := json.Marshal(incident.Log)
	if err != nil {
		return fmt.Errorf("failed to marshal incident log: %w", err)
	}
	typeJSON, err := marshalNullable(incident.Type)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency type: %w", err)
	}

	query := `
		INSERT INTO incidents (reporter_id, status, emergency_type, reporter_profile, latitude, longitude, address, log)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		incident.ReporterID,
		incident.Status,
		typeJSON,
		profileJSON,
		incident.Location.Latitude,
		incident.Location.Longitude,
		incident.Location.Address,
		logJSON,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// FindOpenByReporter возвращает открытый (нетерминальный) инцидент заявителя, если есть
func (r *IncidentRepository) FindOpenByReporter(ctx context.Context, reporterID uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE reporter_id = $1 AND status NOT IN ('resolved', 'rejected')
		ORDER BY created_at DESC
		LIMIT 1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, reporterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open incident by reporter: %w", err)
	}
	return incident, nil
}

// Assign атомарно назначает больницу: условие в WHERE гарантирует
// first-accept-wins без гонки между конкурирующими больницами
func (r *IncidentRepository) Assign(ctx context.Context, id, hospitalID uuid.UUID, eta, officer string, entry models.LogEntry) error {
	entryJSON, err := json.Marshal([]models.LogEntry{entry})
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	query := `
		UPDATE incidents SET
			status = 'assigned',
			assigned_hospital_id = $2,
			ambulance_eta = $3,
			assigned_officer = $4,
			log = log || $5::jsonb,
			updated_at = NOW()
		WHERE id = $1 AND status = 'active' AND assigned_hospital_id IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, hospitalID, eta, officer, entryJSON)
	if err != nil {
		return fmt.Errorf("failed to assign hospital: %w", err)
	}

	// 0 строк: либо инцидента нет, либо его уже приняли, либо статус ушел дальше
	if cmdTag.RowsAffected() == 0 {
		return r.explainAssignFailure(ctx, id)
	}
	return nil
}

func (r *IncidentRepository) explainAssignFailure(ctx context.Context, id uuid.UUID) error {
	var status models.IncidentStatus
	var assigned *uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT status, assigned_hospital_id FROM incidents WHERE id = $1;`, id).
		Scan(&status, &assigned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrIncidentNotFound
		}
		return fmt.Errorf("failed to inspect incident after assign conflict: %w", err)
	}
	if assigned != nil {
		return service.ErrAlreadyAssigned
	}
	return service.ErrInvalidTransition
}

// UpdateStatus выполняет условный переход from -> to. Терминальный статус
// фиксирует ended_at. 0 строк означает, что статус успел измениться.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.IncidentStatus, entry models.LogEntry) error {
	entryJSON, err := json.Marshal([]models.LogEntry{entry})
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	query := `
		UPDATE incidents SET
			status = $3,
			log = log || $4::jsonb,
			ended_at = CASE WHEN $3 IN ('resolved', 'rejected') THEN NOW() ELSE ended_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, from, to, entryJSON)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM incidents WHERE id = $1);`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to inspect incident after status conflict: %w", err)
		}
		if !exists {
			return service.ErrIncidentNotFound
		}
		return service.ErrInvalidTransition
	}
	return nil
}

// SetType обновляет категорию инцидента (NULL снимает выбор).
// Условие по статусу перепроверяет терминальность в самом обновлении:
// гонка с параллельным завершением не может изменить закрытую запись.
func (r *IncidentRepository) SetType(ctx context.Context, id uuid.UUID, emergencyType *models.EmergencyType) error {
	typeJSON, err := marshalNullable(emergencyType)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency type: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE incidents SET emergency_type = $2, updated_at = NOW()
		 WHERE id = $1 AND status NOT IN ('resolved', 'rejected');`,
		id, typeJSON)
	if err != nil {
		return fmt.Errorf("failed to set incident type: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainMutationFailure(ctx, id)
	}
	return nil
}

// SetEvidence записывает видеодоказательство, последняя запись побеждает
func (r *IncidentRepository) SetEvidence(ctx context.Context, id uuid.UUID, evidence *models.VideoEvidence) error {
	evidenceJSON, err := marshalNullable(evidence)
	if err != nil {
		return fmt.Errorf("failed to marshal video evidence: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE incidents SET video_evidence = $2, updated_at = NOW()
		 WHERE id = $1 AND status NOT IN ('resolved', 'rejected');`,
		id, evidenceJSON)
	if err != nil {
		return fmt.Errorf("failed to set video evidence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainMutationFailure(ctx, id)
	}
	return nil
}

// SetLocation обновляет координаты живого трекинга
func (r *IncidentRepository) SetLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE incidents SET latitude = $2, longitude = $3, updated_at = NOW()
		 WHERE id = $1 AND status NOT IN ('resolved', 'rejected');`,
		id, lat, lng)
	if err != nil {
		return fmt.Errorf("failed to set incident location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainMutationFailure(ctx, id)
	}
	return nil
}

// AppendLog дописывает запись в журнал инцидента
func (r *IncidentRepository) AppendLog(ctx context.Context, id uuid.UUID, entry models.LogEntry) error {
	entryJSON, err := json.Marshal([]models.LogEntry{entry})
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx,
		`UPDATE incidents SET log = log || $2::jsonb, updated_at = NOW()
		 WHERE id = $1 AND status NOT IN ('resolved', 'rejected');`,
		id, entryJSON)
	if err != nil {
		return fmt.Errorf("failed to append incident log: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainMutationFailure(ctx, id)
	}
	return nil
}

// explainMutationFailure различает отсутствие записи и терминальный статус
// после того, как условное обновление не затронуло ни одной строки
func (r *IncidentRepository) explainMutationFailure(ctx context.Context, id uuid.UUID) error {
	var status models.IncidentStatus
	err := r.db.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrIncidentNotFound
		}
		return fmt.Errorf("failed to inspect incident after mutation conflict: %w", err)
	}
	if status.Terminal() {
		return service.ErrIncidentClosed
	}
	return service.ErrIncidentNotFound
}

// ListLive возвращает все нетерминальные инциденты, новые сверху
func (r *IncidentRepository) ListLive(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status IN ('active', 'assigned', 'dispatched', 'arrived')
		ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list live incidents: %w", err)
	}
	defer rows.Close()
	return collectIncidents(rows)
}

// ListByReporter возвращает историю инцидентов заявителя с пагинацией
func (r *IncidentRepository) ListByReporter(ctx context.Context, reporterID uuid.UUID, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE reporter_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, reporterID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by reporter: %w", err)
	}
	defer rows.Close()
	return collectIncidents(rows)
}

// ListByHospital возвращает историю инцидентов, назначенных больнице
func (r *IncidentRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE assigned_hospital_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, hospitalID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by hospital: %w", err)
	}
	defer rows.Close()
	return collectIncidents(rows)
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Жизненный цикл инцидента короткий, минуты кеша достаточно
	if err := r.redisClient.Set(ctx, key, val, time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// PublishChange уведомляет подписчиков живой ленты об изменении инцидента
func (r *IncidentRepository) PublishChange(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Publish(ctx, IncidentChangesChannel, id.String()).Err(); err != nil {
		return fmt.Errorf("failed to publish incident change: %w", err)
	}
	return nil
}

// scanIncident читает одну строку инцидента в модель
func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var typeJSON, profileJSON, logJSON, evidenceJSON []byte

	err := row.Scan(
		&incident.ID,
		&incident.ReporterID,
		&incident.Status,
		&typeJSON,
		&profileJSON,
		&incident.Location.Latitude,
		&incident.Location.Longitude,
		&incident.Location.Address,
		&logJSON,
		&incident.AssignedHospitalID,
		&incident.AmbulanceEta,
		&incident.AssignedOfficer,
		&evidenceJSON,
		&incident.CreatedAt,
		&incident.EndedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(profileJSON, &incident.ReporterProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reporter profile: %w", err)
	}
	if err := json.Unmarshal(logJSON, &incident.Log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident log: %w", err)
	}
	if len(typeJSON) > 0 {
		incident.Type = &models.EmergencyType{}
		if err := json.Unmarshal(typeJSON, incident.Type); err != nil {
			return nil, fmt.Errorf("failed to unmarshal emergency type: %w", err)
		}
	}
	if len(evidenceJSON) > 0 {
		incident.VideoEvidence = &models.VideoEvidence{}
		if err := json.Unmarshal(evidenceJSON, incident.VideoEvidence); err != nil {
			return nil, fmt.Errorf("failed to unmarshal video evidence: %w", err)
		}
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// marshalNullable сериализует указатель в JSON, nil остается SQL NULL
func marshalNullable(v any) ([]byte, error) {
	switch val := v.(type) {
	case *models.EmergencyType:
		if val == nil {
			return nil, nil
		}
	case *models.VideoEvidence:
		if val == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
