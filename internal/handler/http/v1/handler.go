package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/disaster_preparedness/internal/config"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - зависимости обработчиков
type Services struct {
	Incidents  service.IncidentService
	GoBag      service.GoBagService
	Evacuation service.EvacuationService
	Family     service.FamilyService
	Maps       service.MapService
	SMS        service.SMSService
	Weather    service.WeatherService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: newValidator(),
		cfg:      cfg,
	}
}

// newValidator сообщает об ошибках по именам полей JSON (или query), а не Go
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// normalizer приводит значения перечислений к каноническому виду перед валидацией
type normalizer interface {
	normalize()
}

// bindJSON разбирает и валидирует тело; при ошибке ответ уже отправлен
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		resp := ErrorResponse{Error: "invalid request body"}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			resp.Details = []FieldViolation{{
				Field:   typeErr.Field,
				Rule:    "type",
				Message: "must be " + jsonKind(typeErr.Type),
			}}
		}
		c.JSON(http.StatusBadRequest, resp)
		return false
	}
	if n, ok := input.(normalizer); ok {
		n.normalize()
	}
	return h.validateInput(c, log, input)
}

func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindQuery(input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return false
	}
	return h.validateInput(c, log, input)
}

func (h *Handler) validateInput(c *gin.Context, log *logrus.Entry, input any) bool {
	err := h.validate.Struct(input)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		log.WithError(err).Error("Validator failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return false
	}

	log.WithError(err).Warn("Validation failed")
	details := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
	return false
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "latitude":
		return "must be a latitude between -90 and 90"
	case "longitude":
		return "must be a longitude between -180 and 180"
	case "e164":
		return "must be a phone number in E.164 format"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// parseID читает положительный числовой параметр пути
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError переводит доменные ошибки в HTTP статусы. entity подставляется в сообщения
// "<entity> not found" и "<entity> does not exist".
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, entity string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, models.ErrReferenceNotFound):
		log.WithError(err).Warn("Referenced record does not exist")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: entity + " does not exist"})
	case errors.Is(err, models.ErrProviderNotConfigured):
		log.WithError(err).Warn("Provider is not configured")
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: fmt.Sprintf("%s service is not configured", entity)})
	case errors.Is(err, models.ErrUpstream):
		log.WithError(err).Error("Upstream service failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream service unavailable"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
