package trainingtype

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitbook/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List training types
// @Description  Returns the full training-type catalog.
// @Tags         training-types
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TrainingType
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/training-types [get]
func (h *Handler) List(c *gin.Context) {
	types, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch training types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// Create godoc
// @Summary      Create training type
// @Description  Adds a catalog entry. Name must be unique.
// @Tags         training-types
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTrainingTypeRequest  true  "Training type"
// @Success      201      {object}  TrainingType
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/training-types [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tt, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create training type"})
		return
	}

	c.JSON(http.StatusCreated, tt)
}

// Update godoc
// @Summary      Update training type
// @Description  Updates a catalog entry. Renames are checked for uniqueness.
// @Tags         training-types
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Training type ID"
// @Param        request  body      UpdateTrainingTypeRequest  true  "Training type"
// @Success      200      {object}  TrainingType
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/training-types/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid training type ID"})
		return
	}

	var req UpdateTrainingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tt, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNameTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update training type"})
		}
		return
	}

	c.JSON(http.StatusOK, tt)
}

// Delete godoc
// @Summary      Delete training type
// @Tags         training-types
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Training type ID"
// @Success      204
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/training-types/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid training type ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete training type"})
		return
	}

	c.Status(http.StatusNoContent)
}
