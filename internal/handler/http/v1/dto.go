package v1

import (
	"strings"
	"time"
)

// ErrorResponse - тело ответа с ошибкой
// @Description Ошибка; details заполняется при ошибках валидации
type ErrorResponse struct {
	Error   string           `json:"error"`
	Details []FieldViolation `json:"details,omitempty"`
}

// FieldViolation - нарушение правила для одного поля запроса
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// CreateIncidentRequest DTO для сообщения об инциденте
// @Description DTO для сообщения об инциденте
type CreateIncidentRequest struct {
	Type        string   `json:"type" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=4000"`
	Location    string   `json:"location" validate:"required,max=500"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	IsAnonymous *bool    `json:"isAnonymous,omitempty"`
}

// IncidentResponse DTO для ответа с инцидентом
// @Description DTO для ответа с инцидентом
type IncidentResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	IsAnonymous bool      `json:"isAnonymous"`
	ReportedAt  time.Time `json:"reportedAt"`
}

// UpdateGoBagItemRequest - отметка пункта чек-листа; только boolean
type UpdateGoBagItemRequest struct {
	Checked *bool `json:"checked" validate:"required"`
}

// UpdateCenterStatusRequest DTO для смены статуса пункта эвакуации
type UpdateCenterStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open limited full closed"`
}

func (r *UpdateCenterStatusRequest) normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type CreateHouseholdRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateMemberRequest DTO для добавления члена семьи
// @Description Статус по умолчанию - unknown
type CreateMemberRequest struct {
	HouseholdID int64   `json:"householdId" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,max=200"`
	Contact     *string `json:"contact,omitempty" validate:"omitempty,max=200"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=safe danger unknown"`
}

func (r *CreateMemberRequest) normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type UpdateMemberStatusRequest struct {
	Status   string  `json:"status" validate:"required,oneof=safe danger unknown"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=500"`
}

func (r *UpdateMemberStatusRequest) normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

// CreateCheckInRequest DTO для отметки члена семьи
// @Description isSafe по умолчанию true
type CreateCheckInRequest struct {
	MemberID int64   `json:"memberId" validate:"required,gt=0"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=500"`
	IsSafe   *bool   `json:"isSafe,omitempty"`
}

type POIQuery struct {
	Type string `form:"type"`
}

// WeatherQuery - координаты для погодных запросов
type WeatherQuery struct {
	Lat *float64 `form:"lat" validate:"required,latitude"`
	Lon *float64 `form:"lon" validate:"required,longitude"`
}

// SendSMSRequest DTO для отправки SMS; номер в формате E.164
type SendSMSRequest struct {
	To      string `json:"to" validate:"required,e164"`
	Message string `json:"message" validate:"required,max=1600"`
}

type SendSMSResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid"`
}

type MapAPIKeyResponse struct {
	APIKey string `json:"apiKey"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ProgressResponse - готовность тревожного чемоданчика
type ProgressResponse struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}
