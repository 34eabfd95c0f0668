package patient

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/medoffice/patient-api/internal/handler"
	"github.com/medoffice/patient-api/internal/model"
	"github.com/medoffice/patient-api/internal/service/patient"
	apperrors "github.com/medoffice/patient-api/pkg/errors"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.POST("", h.CreatePatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewListResponse(len(patients), patients))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	p, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request body"))
		return
	}

	// Checked here as well as in the service so a bad request never costs a
	// storage round trip.
	if missing := req.MissingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(
			"Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	p, err := h.service.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewMessageResponse("Patient created successfully", p))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	var patch model.PatientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request body"))
		return
	}

	p, err := h.service.UpdatePatient(c.Request.Context(), id, &patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("Patient updated successfully", p))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &handler.Response{
		Success: true,
		Message: "Patient deleted successfully",
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("path", c.Request.URL.Path).Msg("request failed")
			c.JSON(appErr.StatusCode(), handler.NewErrorResponseWithDetail("Internal Server Error", appErr.Message))
			return
		}
		message := appErr.Message
		if appErr.Code == apperrors.ErrNotFound {
			message = "Patient not found"
		}
		c.JSON(appErr.StatusCode(), handler.NewErrorResponse(message))
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Internal Server Error"))
}
