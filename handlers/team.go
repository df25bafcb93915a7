package handlers

import (
	"net/http"

	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// TeamHandler exposes team member endpoints.
type TeamHandler struct {
	Service content.TeamService
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(svc content.TeamService) *TeamHandler {
	return &TeamHandler{Service: svc}
}

// CreateTeamMemberHandler handles POST /api/team.
func (h *TeamHandler) CreateTeamMemberHandler(c *gin.Context) {
	var in content.TeamInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "teamMember": member})
}

// GetTeamHandler handles GET /api/team. Public callers only see active members;
// staff pass all=true to include inactive ones.
func (h *TeamHandler) GetTeamHandler(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	members, err := h.Service.GetAll(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "team": members})
}

// GetTeamMemberHandler handles GET /api/team/:id.
func (h *TeamHandler) GetTeamMemberHandler(c *gin.Context) {
	member, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "teamMember": member})
}

// UpdateTeamMemberHandler handles PUT /api/team/:id.
func (h *TeamHandler) UpdateTeamMemberHandler(c *gin.Context) {
	var in content.TeamInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.Service.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "teamMember": member})
}

// DeleteTeamMemberHandler handles DELETE /api/team/:id.
func (h *TeamHandler) DeleteTeamMemberHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Team member deleted"})
}
