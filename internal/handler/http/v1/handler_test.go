package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/auth"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
	"github.com/shenikar/emergency_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJWTSecret = "test-secret"

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockIncidentService, *mocks.MockAccountService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentMock := mocks.NewMockIncidentService(ctrl)
	accountMock := mocks.NewMockAccountService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret:     testJWTSecret,
		TokenDuration: time.Hour,
		AdminAPIKeys:  []string{"test-api-key"},
	}

	handler := NewHandler(incidentMock, accountMock, nil, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return incidentMock, accountMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearerHeader(t *testing.T, subjectID uuid.UUID, role string) map[string]string {
	token, err := auth.GenerateToken(subjectID, role, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRegisterUser_Success(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := RegisterUserRequest{
		Name:  "Anna Petrova",
		Phone: "+70001112233",
	}

	accountMock.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.UserProfile) error {
			user.ID = userID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, auth.RoleGeneral, resp.Role)
	require.NotNil(t, resp.User)
	assert.Equal(t, userID, resp.User.ID)
}

func TestRegisterUser_ValidationError(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	accountMock.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Times(0)

	reqBody := RegisterUserRequest{Name: "A"} // Имя слишком короткое, телефон отсутствует
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUser_NotRegistered(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	accountMock.EXPECT().
		LoginUser(gomock.Any(), "+70009998877").
		Return(nil, service.ErrUserNotFound)

	bodyBytes, _ := json.Marshal(LoginUserRequest{Phone: "+70009998877"})
	w := makeRequest(router, "POST", "/api/v1/auth/users/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginHospital_Pending(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	accountMock.EXPECT().
		LoginHospital(gomock.Any(), "city@example.com", "secret-password").
		Return(nil, service.ErrHospitalPending)

	bodyBytes, _ := json.Marshal(LoginHospitalRequest{Email: "city@example.com", Password: "secret-password"})
	w := makeRequest(router, "POST", "/api/v1/auth/hospitals/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDispatchIncident_Success(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	reporterID := uuid.New()
	incidentID := uuid.New()
	expected := &models.Incident{
		ID:         incidentID,
		ReporterID: reporterID,
		Status:     models.StatusActive,
		Location:   models.Location{Latitude: 12.9, Longitude: 77.6, Address: "Indiranagar"},
		Log:        []models.LogEntry{{Time: time.Now(), Message: "SOS Activated"}},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	incidentMock.EXPECT().
		Dispatch(gomock.Any(), reporterID, gomock.Any(), 12.9, 77.6).
		Return(expected, nil)

	bodyBytes, _ := json.Marshal(DispatchIncidentRequest{Latitude: 12.9, Longitude: 77.6})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), bearerHeader(t, reporterID, auth.RoleGeneral))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, string(models.StatusActive), resp.Status)
	assert.Equal(t, models.DefaultEtaSeconds, resp.EtaSeconds)
}

func TestDispatchIncident_OpenIncidentExists(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	reporterID := uuid.New()

	incidentMock.EXPECT().
		Dispatch(gomock.Any(), reporterID, gomock.Any(), 12.9, 77.6).
		Return(nil, service.ErrOpenIncidentExists)

	bodyBytes, _ := json.Marshal(DispatchIncidentRequest{Latitude: 12.9, Longitude: 77.6})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), bearerHeader(t, reporterID, auth.RoleGeneral))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDispatchIncident_NoToken(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentMock.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(DispatchIncidentRequest{Latitude: 12.9, Longitude: 77.6})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAcceptIncident_Success(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	hospitalID := uuid.New()

	incidentMock.EXPECT().
		Accept(gomock.Any(), incidentID, hospitalID, "8 min", "Dr. Rao").
		Return(nil)

	bodyBytes, _ := json.Marshal(AcceptIncidentRequest{Eta: "8 min", Officer: "Dr. Rao"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/accept", bytes.NewBuffer(bodyBytes), bearerHeader(t, hospitalID, auth.RoleHospital))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcceptIncident_AlreadyAssigned(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	hospitalID := uuid.New()

	incidentMock.EXPECT().
		Accept(gomock.Any(), incidentID, hospitalID, "5 min", "").
		Return(service.ErrAlreadyAssigned)

	bodyBytes, _ := json.Marshal(AcceptIncidentRequest{Eta: "5 min"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/accept", bytes.NewBuffer(bodyBytes), bearerHeader(t, hospitalID, auth.RoleHospital))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAcceptIncident_ReporterRoleForbidden(t *testing.T) {
	// Токен заявителя не должен доходить до принятия инцидента:
	// маршрут закрыт для роли general еще на уровне роутера
	incidentMock, _, router := newTestHandler(t)
	incidentMock.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(AcceptIncidentRequest{Eta: "3 min"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+uuid.NewString()+"/accept", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), auth.RoleGeneral))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdvanceStatus_ReporterRoleForbidden(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentMock.EXPECT().AdvanceStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(AdvanceStatusRequest{Status: "dispatched"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+uuid.NewString()+"/status", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), auth.RoleGeneral))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDispatchIncident_HospitalRoleForbidden(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentMock.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(DispatchIncidentRequest{Latitude: 12.9, Longitude: 77.6})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), auth.RoleHospital))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdvanceStatus_InvalidTransition(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	hospitalID := uuid.New()

	incidentMock.EXPECT().
		AdvanceStatus(gomock.Any(), incidentID, hospitalID, models.StatusArrived).
		Return(service.ErrInvalidTransition)

	bodyBytes, _ := json.Marshal(AdvanceStatusRequest{Status: "arrived"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/status", bytes.NewBuffer(bodyBytes), bearerHeader(t, hospitalID, auth.RoleHospital))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdvanceStatus_NotAssignee(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	hospitalID := uuid.New()

	incidentMock.EXPECT().
		AdvanceStatus(gomock.Any(), incidentID, hospitalID, models.StatusDispatched).
		Return(service.ErrNotAssignee)

	bodyBytes, _ := json.Marshal(AdvanceStatusRequest{Status: "dispatched"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/status", bytes.NewBuffer(bodyBytes), bearerHeader(t, hospitalID, auth.RoleHospital))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdvanceStatus_RejectedByValidation(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentMock.EXPECT().AdvanceStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Статус вне допустимого списка отсекается до вызова сервиса
	bodyBytes, _ := json.Marshal(AdvanceStatusRequest{Status: "active"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+uuid.NewString()+"/status", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), auth.RoleHospital))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveIncident_NotReporter(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	strangerID := uuid.New()

	incidentMock.EXPECT().
		ResolveByReporter(gomock.Any(), incidentID, strangerID).
		Return(service.ErrNotReporter)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/resolve", nil, bearerHeader(t, strangerID, auth.RoleGeneral))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAppendIncidentLog_Success(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reporterID := uuid.New()

	incidentMock.EXPECT().
		AppendLog(gomock.Any(), incidentID, reporterID, "Patient is conscious").
		Return(nil)

	bodyBytes, _ := json.Marshal(AppendLogRequest{Message: "Patient is conscious"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/log", bytes.NewBuffer(bodyBytes), bearerHeader(t, reporterID, auth.RoleGeneral))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAppendIncidentLog_ClosedIncident(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reporterID := uuid.New()

	incidentMock.EXPECT().
		AppendLog(gomock.Any(), incidentID, reporterID, "too late").
		Return(service.ErrIncidentClosed)

	bodyBytes, _ := json.Marshal(AppendLogRequest{Message: "too late"})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/log", bytes.NewBuffer(bodyBytes), bearerHeader(t, reporterID, auth.RoleGeneral))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetIncident_InvalidID(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentMock.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil, bearerHeader(t, uuid.New(), auth.RoleGeneral))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_NotFound(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, service.ErrIncidentNotFound)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+incidentID.String(), nil, bearerHeader(t, uuid.New(), auth.RoleGeneral))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIncidents_HospitalHistory(t *testing.T) {
	incidentMock, _, router := newTestHandler(t)
	hospitalID := uuid.New()

	incidentMock.EXPECT().
		ListByHospital(gomock.Any(), hospitalID, 2, 5).
		Return([]*models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=2&pageSize=5", nil, bearerHeader(t, hospitalID, auth.RoleHospital))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOwnProfile_HospitalRoleForbidden(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	accountMock.EXPECT().UpdateUserProfile(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(UpdateUserProfileRequest{Name: "City Hospital"})
	w := makeRequest(router, "PUT", "/api/v1/users/me", bytes.NewBuffer(bodyBytes), bearerHeader(t, uuid.New(), auth.RoleHospital))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListHospitals_RequiresAPIKey(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	accountMock.EXPECT().ListHospitalsByStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/admin/hospitals", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListHospitals_Success(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	hospitals := []*models.HospitalProfile{
		{ID: uuid.New(), Name: "City Hospital", Status: models.HospitalPending},
	}

	accountMock.EXPECT().
		ListHospitalsByStatus(gomock.Any(), models.HospitalPending, 1, 10).
		Return(hospitals, nil)

	w := makeRequest(router, "GET", "/api/v1/admin/hospitals", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*HospitalResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "City Hospital", resp[0].Name)
}

func TestSetHospitalStatus_Success(t *testing.T) {
	_, accountMock, router := newTestHandler(t)
	hospitalID := uuid.New()

	accountMock.EXPECT().
		SetHospitalStatus(gomock.Any(), hospitalID, models.HospitalVerified, "").
		Return(nil)

	bodyBytes, _ := json.Marshal(SetHospitalStatusRequest{Status: "verified"})
	w := makeRequest(router, "PATCH", "/api/v1/admin/hospitals/"+hospitalID.String()+"/status", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
