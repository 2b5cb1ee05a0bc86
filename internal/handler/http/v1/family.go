package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_preparedness/internal/models"
)

// @Summary List households
// @Tags Family
// @Produce json
// @Success 200 {array} models.Household
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /households [get]
func (h *Handler) listHouseholds(c *gin.Context) {
	log := h.logger.WithField("method", "listHouseholds")

	households, err := h.services.Family.ListHouseholds(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "household")
		return
	}
	c.JSON(http.StatusOK, households)
}

// @Summary Create a household
// @Tags Family
// @Accept json
// @Produce json
// @Param household body CreateHouseholdRequest true "Household"
// @Success 201 {object} models.Household
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /households [post]
func (h *Handler) createHousehold(c *gin.Context) {
	var input CreateHouseholdRequest
	log := h.logger.WithField("method", "createHousehold")

	if !h.bindJSON(c, log, &input) {
		return
	}

	household := &models.Household{Name: input.Name}
	if err := h.services.Family.CreateHousehold(c.Request.Context(), household); err != nil {
		h.respondError(c, log, err, "household")
		return
	}
	c.JSON(http.StatusCreated, household)
}

// @Summary List members of a household
// @Tags Family
// @Produce json
// @Param householdId path int true "Household ID"
// @Success 200 {array} models.Member
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /households/{householdId}/members [get]
func (h *Handler) listMembers(c *gin.Context) {
	householdID, ok := parseID(c, "householdId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listMembers").WithField("household_id", householdID)

	members, err := h.services.Family.ListMembers(c.Request.Context(), householdID)
	if err != nil {
		h.respondError(c, log, err, "household")
		return
	}
	c.JSON(http.StatusOK, members)
}

// @Summary Add a family member
// @Description Status defaults to unknown. The household must exist.
// @Tags Family
// @Accept json
// @Produce json
// @Param member body CreateMemberRequest true "Member"
// @Success 201 {object} models.Member
// @Failure 400 {object} ErrorResponse "Invalid body or household does not exist"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members [post]
func (h *Handler) createMember(c *gin.Context) {
	var input CreateMemberRequest
	log := h.logger.WithField("method", "createMember")

	if !h.bindJSON(c, log, &input) {
		return
	}

	member := DTOToMemberModel(input)
	if err := h.services.Family.CreateMember(c.Request.Context(), member); err != nil {
		h.respondError(c, log, err, "household")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// @Summary Broadcast a member's safety status
// @Description Last write wins. location is kept unchanged when omitted. Requires API key when API_KEYS is set.
// @Tags Family
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Member ID"
// @Param status body UpdateMemberStatusRequest true "New status"
// @Success 200 {object} models.Member
// @Failure 400 {object} ErrorResponse "Invalid id or body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id}/status [patch]
func (h *Handler) updateMemberStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateMemberStatus").WithField("id", id)

	var input UpdateMemberStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	member, err := h.services.Family.UpdateMemberStatus(c.Request.Context(), id, models.MemberStatus(input.Status), input.Location)
	if err != nil {
		h.respondError(c, log, err, "member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary List check-ins of a member
// @Tags Family
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {array} models.CheckIn
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{id}/check-ins [get]
func (h *Handler) listCheckIns(c *gin.Context) {
	memberID, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listCheckIns").WithField("member_id", memberID)

	checkIns, err := h.services.Family.ListCheckIns(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, log, err, "member")
		return
	}
	c.JSON(http.StatusOK, checkIns)
}

// @Summary Check in
// @Description isSafe defaults to true. The member must exist.
// @Tags Family
// @Accept json
// @Produce json
// @Param checkIn body CreateCheckInRequest true "Check-in"
// @Success 201 {object} models.CheckIn
// @Failure 400 {object} ErrorResponse "Invalid body or member does not exist"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /check-ins [post]
func (h *Handler) createCheckIn(c *gin.Context) {
	var input CreateCheckInRequest
	log := h.logger.WithField("method", "createCheckIn")

	if !h.bindJSON(c, log, &input) {
		return
	}

	checkIn := DTOToCheckInModel(input)
	if err := h.services.Family.CreateCheckIn(c.Request.Context(), checkIn); err != nil {
		h.respondError(c, log, err, "member")
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}
