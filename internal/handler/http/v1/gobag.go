package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List go-bag checklist items
// @Tags GoBag
// @Produce json
// @Success 200 {array} models.GoBagItem
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /go-bag-items [get]
func (h *Handler) listGoBagItems(c *gin.Context) {
	log := h.logger.WithField("method", "listGoBagItems")

	items, err := h.services.GoBag.ListItems(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "go-bag item")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Go-bag readiness
// @Description Number of checked items and the rounded percentage
// @Tags GoBag
// @Produce json
// @Success 200 {object} ProgressResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /go-bag-items/progress [get]
func (h *Handler) goBagProgress(c *gin.Context) {
	log := h.logger.WithField("method", "goBagProgress")

	progress, err := h.services.GoBag.Progress(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "go-bag item")
		return
	}
	c.JSON(http.StatusOK, ModelToProgressResponse(progress))
}

// @Summary Check or uncheck a go-bag item
// @Tags GoBag
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body UpdateGoBagItemRequest true "New checked value"
// @Success 200 {object} models.GoBagItem
// @Failure 400 {object} ErrorResponse "Invalid id or body (checked must be boolean)"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /go-bag-items/{id} [patch]
func (h *Handler) updateGoBagItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateGoBagItem").WithField("id", id)

	var input UpdateGoBagItemRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	item, err := h.services.GoBag.SetChecked(c.Request.Context(), id, *input.Checked)
	if err != nil {
		h.respondError(c, log, err, "go-bag item")
		return
	}
	c.JSON(http.StatusOK, item)
}
