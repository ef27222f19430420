package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/auth"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/feed"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	accountService  service.AccountService
	hub             *feed.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, accountService service.AccountService, hub *feed.Hub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		accountService:  accountService,
		hub:             hub,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondServiceError переводит доменную ошибку в HTTP-ответ. Нарушение
// предусловия, отсутствие записи и сбой хранилища - три разных класса.
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrIncidentNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrHospitalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyAssigned),
		errors.Is(err, service.ErrIncidentClosed),
		errors.Is(err, service.ErrOpenIncidentExists),
		errors.Is(err, service.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAssignee),
		errors.Is(err, service.ErrNotReporter),
		errors.Is(err, service.ErrHospitalPending),
		errors.Is(err, service.ErrHospitalRejected):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Register a new user
// @Description Register a general-public reporter account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "User registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Account already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/users [post]
func (h *Handler) registerUser(c *gin.Context) {
	log := h.logger.WithField("method", "registerUser")

	var input RegisterUserRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user := DTOToUserModel(input)
	if err := h.accountService.RegisterUser(c.Request.Context(), user); err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, auth.RoleGeneral, h.cfg.JWTSecret, h.cfg.TokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, Role: auth.RoleGeneral, User: ModelToUserResponse(user)})
}

// @Summary Login as a user
// @Description Login a reporter by phone number.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginUserRequest true "User login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "User not registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/users/login [post]
func (h *Handler) loginUser(c *gin.Context) {
	log := h.logger.WithField("method", "loginUser")

	var input LoginUserRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user, err := h.accountService.LoginUser(c.Request.Context(), input.Phone)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, auth.RoleGeneral, h.cfg.JWTSecret, h.cfg.TokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Role: auth.RoleGeneral, User: ModelToUserResponse(user)})
}

// @Summary Register a hospital
// @Description Submit a hospital application. The application stays pending until admin review.
// @Tags Auth
// @Accept json
// @Produce json
// @Param hospital body RegisterHospitalRequest true "Hospital registration request"
// @Success 201 {object} HospitalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Account already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/hospitals [post]
func (h *Handler) registerHospital(c *gin.Context) {
	log := h.logger.WithField("method", "registerHospital")

	var input RegisterHospitalRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	hospital := DTOToHospitalModel(input)
	if err := h.accountService.RegisterHospital(c.Request.Context(), hospital, input.Password); err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToHospitalResponse(hospital))
}

// @Summary Login as a hospital
// @Description Login a verified hospital by email and password. Pending and rejected applications are refused.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginHospitalRequest true "Hospital login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 403 {object} map[string]string "Application pending or rejected"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/hospitals/login [post]
func (h *Handler) loginHospital(c *gin.Context) {
	log := h.logger.WithField("method", "loginHospital")

	var input LoginHospitalRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	hospital, err := h.accountService.LoginHospital(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	token, err := auth.GenerateToken(hospital.ID, auth.RoleHospital, h.cfg.JWTSecret, h.cfg.TokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Role: auth.RoleHospital, Hospital: ModelToHospitalResponse(hospital)})
}

// @Summary Reset hospital password
// @Description Reset a hospital password using the registered admin phone number.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResetHospitalPasswordRequest true "Password reset request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/hospitals/reset-password [post]
func (h *Handler) resetHospitalPassword(c *gin.Context) {
	log := h.logger.WithField("method", "resetHospitalPassword")

	var input ResetHospitalPasswordRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.accountService.ResetHospitalPassword(c.Request.Context(), input.AdminPhone, input.NewPassword); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get own profile
// @Description Get the authenticated reporter profile.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/me [get]
func (h *Handler) getOwnProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getOwnProfile")

	userID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	user, err := h.accountService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update own profile
// @Description Update the authenticated reporter profile. Snapshots embedded in existing incidents are not affected.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateUserProfileRequest true "Profile update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/me [put]
func (h *Handler) updateOwnProfile(c *gin.Context) {
	log := h.logger.WithField("method", "updateOwnProfile")

	userID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input UpdateUserProfileRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user := DTOToUserModel(input)
	user.ID = userID

	if err := h.accountService.UpdateUserProfile(c.Request.Context(), user); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Dispatch an SOS
// @Description Create a new incident with status active. A reporter may have at most one open incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body DispatchIncidentRequest true "Dispatch request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Reporter already has an open incident"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) dispatchIncident(c *gin.Context) {
	log := h.logger.WithField("method", "dispatchIncident")

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input DispatchIncidentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, err := h.incidentService.Dispatch(c.Request.Context(), reporterID, DTOToEmergencyType(input.Type), input.Latitude, input.Longitude)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary List incident history
// @Description List incidents for the authenticated subject, terminal ones included.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	subjectID, role, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	var incidents []*models.Incident
	var err error
	if role == auth.RoleHospital {
		incidents, err = h.incidentService.ListByHospital(c.Request.Context(), subjectID, page, pageSize)
	} else {
		incidents, err = h.incidentService.ListByReporter(c.Request.Context(), subjectID, page, pageSize)
	}
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Accept an incident
// @Description Accept an active unassigned incident. First accept wins; a later accept gets 409.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body AcceptIncidentRequest true "Accept request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already assigned"
// @Failure 422 {object} map[string]string "Incident is not active"
// @Router /incidents/{id}/accept [post]
func (h *Handler) acceptIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "acceptIncident").WithField("id", id)

	hospitalID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input AcceptIncidentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.incidentService.Accept(c.Request.Context(), id, hospitalID, input.Eta, input.Officer); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Advance incident status
// @Description Advance the status of an assigned incident. Only the assignee hospital may advance it.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body AdvanceStatusRequest true "Status advance request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 403 {object} map[string]string "Not the assignee"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Invalid status transition"
// @Router /incidents/{id}/status [post]
func (h *Handler) advanceIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "advanceIncidentStatus").WithField("id", id)

	hospitalID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input AdvanceStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.incidentService.AdvanceStatus(c.Request.Context(), id, hospitalID, models.IncidentStatus(input.Status)); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve own incident
// @Description End the authenticated reporter's own SOS from any non-terminal status.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 403 {object} map[string]string "Not the reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already closed"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	if err := h.incidentService.ResolveByReporter(c.Request.Context(), id, reporterID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Cancel own incident
// @Description Cancel the authenticated reporter's own SOS before any hospital accepts it.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 403 {object} map[string]string "Not the reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already assigned or closed"
// @Router /incidents/{id}/reject [post]
func (h *Handler) rejectIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "rejectIncident").WithField("id", id)

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	if err := h.incidentService.RejectByReporter(c.Request.Context(), id, reporterID); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Refine incident type
// @Description Choose or change the emergency category while the incident is open. Null clears the selection.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body UpdateIncidentTypeRequest true "Type refinement request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 403 {object} map[string]string "Not the reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already closed"
// @Router /incidents/{id}/type [patch]
func (h *Handler) updateIncidentType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentType").WithField("id", id)

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input UpdateIncidentTypeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.Type != nil {
		if err := h.validate.Struct(input.Type); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.incidentService.UpdateType(c.Request.Context(), id, reporterID, DTOToEmergencyType(input.Type)); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Append a log entry
// @Description Append a note to the incident's append-only log while the incident is open.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body AppendLogRequest true "Log entry request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 403 {object} map[string]string "Not the reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already closed"
// @Router /incidents/{id}/log [post]
func (h *Handler) appendIncidentLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "appendIncidentLog").WithField("id", id)

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input AppendLogRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.incidentService.AppendLog(c.Request.Context(), id, reporterID, input.Message); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Attach video evidence
// @Description Attach or replace the single video evidence reference of an open incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body AttachEvidenceRequest true "Evidence attachment request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 403 {object} map[string]string "Not the reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already closed"
// @Router /incidents/{id}/evidence [patch]
func (h *Handler) attachEvidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "attachEvidence").WithField("id", id)

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input AttachEvidenceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	evidence := models.VideoEvidence{
		URL:             input.URL,
		Timestamp:       input.Timestamp,
		DurationSeconds: input.DurationSeconds,
	}
	if err := h.incidentService.AttachEvidence(c.Request.Context(), id, reporterID, evidence); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update incident location
// @Description Update live tracking coordinates of an open incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body UpdateLocationRequest true "Location update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 403 {object} map[string]string "Not the reporter"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already closed"
// @Router /incidents/{id}/location [patch]
func (h *Handler) updateIncidentLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentLocation").WithField("id", id)

	reporterID, _, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	var input UpdateLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.incidentService.UpdateLocation(c.Request.Context(), id, reporterID, input.Latitude, input.Longitude); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary List hospital applications
// @Description List hospital applications in the given status. Requires admin API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Application status" default(pending)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} HospitalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/hospitals [get]
func (h *Handler) listHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "listHospitals")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	status := models.HospitalStatus(c.DefaultQuery("status", string(models.HospitalPending)))

	hospitals, err := h.accountService.ListHospitalsByStatus(c.Request.Context(), status, page, pageSize)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHospitalResponses(hospitals))
}

// @Summary Review a hospital application
// @Description Approve or reject a hospital application. Requires admin API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hospital ID"
// @Param request body SetHospitalStatusRequest true "Review request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid hospital ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hospital not found"
// @Router /admin/hospitals/{id}/status [patch]
func (h *Handler) setHospitalStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hospital ID"})
		return
	}
	log := h.logger.WithField("method", "setHospitalStatus").WithField("id", id)

	var input SetHospitalStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.accountService.SetHospitalStatus(c.Request.Context(), id, models.HospitalStatus(input.Status), input.Reason); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
