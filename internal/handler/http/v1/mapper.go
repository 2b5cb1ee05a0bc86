package v1

import "github.com/shenikar/disaster_preparedness/internal/models"

// DTOToIncidentModel преобразует DTO сообщения в доменную модель; reportedAt ставит сервис
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Type:        dto.Type,
		Description: dto.Description,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
	}
	if dto.IsAnonymous != nil {
		incident.IsAnonymous = *dto.IsAnonymous
	}
	return incident
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Type:        model.Type,
		Description: model.Description,
		Location:    model.Location,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		IsAnonymous: model.IsAnonymous,
		ReportedAt:  model.ReportedAt,
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

func DTOToMemberModel(dto CreateMemberRequest) *models.Member {
	return &models.Member{
		HouseholdID: dto.HouseholdID,
		Name:        dto.Name,
		Contact:     dto.Contact,
		Status:      models.MemberStatus(dto.Status),
	}
}

// DTOToCheckInModel - без isSafe отметка считается "в безопасности"
func DTOToCheckInModel(dto CreateCheckInRequest) *models.CheckIn {
	checkIn := &models.CheckIn{
		MemberID: dto.MemberID,
		Location: dto.Location,
		IsSafe:   true,
	}
	if dto.IsSafe != nil {
		checkIn.IsSafe = *dto.IsSafe
	}
	return checkIn
}

func ModelToProgressResponse(progress *models.GoBagProgress) ProgressResponse {
	return ProgressResponse{
		Checked: progress.Checked,
		Total:   progress.Total,
		Percent: progress.Percent,
	}
}
