package v1

import "github.com/shenikar/emergency_response_system/internal/models"

// DTOToEmergencyType преобразует DTO категории в доменную модель
func DTOToEmergencyType(dto *EmergencyTypeDTO) *models.EmergencyType {
	if dto == nil {
		return nil
	}
	return &models.EmergencyType{
		ID:           dto.ID,
		Name:         dto.Name,
		Icon:         dto.Icon,
		Category:     dto.Category,
		Instructions: dto.Instructions,
		Do:           dto.Do,
		Dont:         dto.Dont,
	}
}

func emergencyTypeToDTO(t *models.EmergencyType) *EmergencyTypeDTO {
	if t == nil {
		return nil
	}
	return &EmergencyTypeDTO{
		ID:           t.ID,
		Name:         t.Name,
		Icon:         t.Icon,
		Category:     t.Category,
		Instructions: t.Instructions,
		Do:           t.Do,
		Dont:         t.Dont,
	}
}

// DTOToUserModel преобразует DTO регистрации или обновления в доменную модель
func DTOToUserModel(dto any) *models.UserProfile {
	switch v := dto.(type) {
	case RegisterUserRequest:
		return &models.UserProfile{
			Name:              v.Name,
			Phone:             v.Phone,
			Email:             v.Email,
			MedicalInfo:       models.MedicalInfo(v.MedicalInfo),
			EmergencyContacts: contactsToModels(v.EmergencyContacts),
		}
	case UpdateUserProfileRequest:
		return &models.UserProfile{
			Name:              v.Name,
			Email:             v.Email,
			MedicalInfo:       models.MedicalInfo(v.MedicalInfo),
			EmergencyContacts: contactsToModels(v.EmergencyContacts),
		}
	}
	return nil
}

func contactsToModels(dtos []EmergencyContactDTO) []models.EmergencyContact {
	contacts := make([]models.EmergencyContact, len(dtos))
	for i, c := range dtos {
		contacts[i] = models.EmergencyContact(c)
	}
	return contacts
}

// DTOToHospitalModel преобразует заявку больницы в доменную модель
func DTOToHospitalModel(dto RegisterHospitalRequest) *models.HospitalProfile {
	return &models.HospitalProfile{
		Name:          dto.Name,
		LicenseNumber: dto.LicenseNumber,
		Email:         dto.Email,
		Phone:         dto.Phone,
		Resources:     models.HospitalResources(dto.Resources),
		AdminDetails:  models.HospitalAdmin(dto.AdminDetails),
	}
}

// ModelToUserResponse преобразует доменную модель в DTO для ответа
func ModelToUserResponse(model *models.UserProfile) *UserResponse {
	contacts := make([]EmergencyContactDTO, len(model.EmergencyContacts))
	for i, c := range model.EmergencyContacts {
		contacts[i] = EmergencyContactDTO(c)
	}
	return &UserResponse{
		ID:                model.ID,
		Name:              model.Name,
		Phone:             model.Phone,
		Email:             model.Email,
		MedicalInfo:       MedicalInfoDTO(model.MedicalInfo),
		EmergencyContacts: contacts,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelToHospitalResponse преобразует доменную модель в DTO для ответа
func ModelToHospitalResponse(model *models.HospitalProfile) *HospitalResponse {
	return &HospitalResponse{
		ID:              model.ID,
		Name:            model.Name,
		LicenseNumber:   model.LicenseNumber,
		Email:           model.Email,
		Phone:           model.Phone,
		Resources:       HospitalResourcesDTO(model.Resources),
		AdminDetails:    HospitalAdminDTO(model.AdminDetails),
		Status:          string(model.Status),
		RejectionReason: model.RejectionReason,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToHospitalResponses преобразует слайс моделей в слайс DTO
func ModelsToHospitalResponses(models []*models.HospitalProfile) []*HospitalResponse {
	responses := make([]*HospitalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHospitalResponse(model)
	}
	return responses
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа.
// EtaSeconds - производное поле для обратного отсчета на клиенте.
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	log := make([]LogEntryResponse, len(model.Log))
	for i, entry := range model.Log {
		log[i] = LogEntryResponse(entry)
	}

	var evidence *VideoEvidenceResponse
	if model.VideoEvidence != nil {
		e := VideoEvidenceResponse(*model.VideoEvidence)
		evidence = &e
	}

	return &IncidentResponse{
		ID:                 model.ID,
		ReporterID:         model.ReporterID,
		Status:             string(model.Status),
		Type:               emergencyTypeToDTO(model.Type),
		ReporterProfile:    *ModelToUserResponse(&model.ReporterProfile),
		Location:           LocationResponse(model.Location),
		Log:                log,
		AssignedHospitalID: model.AssignedHospitalID,
		AmbulanceEta:       model.AmbulanceEta,
		EtaSeconds:         models.EtaSeconds(model.AmbulanceEta),
		AssignedOfficer:    model.AssignedOfficer,
		VideoEvidence:      evidence,
		CreatedAt:          model.CreatedAt,
		EndedAt:            model.EndedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
