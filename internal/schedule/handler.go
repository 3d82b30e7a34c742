package schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitbook/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll godoc
// @Summary      List time slots
// @Tags         time-slots
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TimeSlotWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/time-slots [get]
func (h *Handler) GetAll(c *gin.Context) {
	slots, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch time slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// GetByID godoc
// @Summary      Get a time slot
// @Tags         time-slots
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Time slot ID"
// @Success      200  {object}  TimeSlotWithDetails
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/time-slots/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot ID"})
		return
	}

	slot, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: ErrSlotNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, slot)
}

// GetByTrainer godoc
// @Summary      List a trainer's time slots within a range
// @Tags         time-slots
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path   int     true  "Trainer ID"
// @Param        start      query  string  true  "Range start (RFC 3339)"
// @Param        end        query  string  true  "Range end (RFC 3339)"
// @Success      200  {array}   TimeSlotWithDetails
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/time-slots/trainer/{trainerID} [get]
func (h *Handler) GetByTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "start must be an RFC 3339 timestamp"})
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "end must be an RFC 3339 timestamp"})
		return
	}

	slots, err := h.service.GetByTrainer(c.Request.Context(), trainerID, start, end)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch time slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// GetBookedClients godoc
// @Summary      List confirmed bookers of a time slot
// @Tags         time-slots
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Time slot ID"
// @Success      200  {array}   BookedClientInfo
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/time-slots/{id}/clients [get]
func (h *Handler) GetBookedClients(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot ID"})
		return
	}

	clients, err := h.service.GetBookedClients(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch booked clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// Create godoc
// @Summary      Create a time slot
// @Tags         time-slots
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTimeSlotRequest  true  "Slot data"
// @Success      201      {object}  TimeSlot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/time-slots [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainerNotFound), errors.Is(err, ErrTrainingTypeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrOverlappingSlot):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrInvalidInterval), errors.Is(err, ErrDurationMismatch), errors.Is(err, ErrInvalidCapacity):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create time slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// Cancel godoc
// @Summary      Cancel a time slot
// @Description  A slot with confirmed bookings cannot be cancelled; the bookings must be resolved first.
// @Tags         time-slots
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Time slot ID"
// @Success      200  {object}  TimeSlot
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/time-slots/{id}/cancel [put]
func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time slot ID"})
		return
	}

	slot, err := h.service.CancelSlot(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrSlotHasBookings):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel time slot"})
		}
		return
	}

	c.JSON(http.StatusOK, slot)
}
