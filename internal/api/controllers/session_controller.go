package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisy/internal/models/request_models"
	"cruisy/internal/models/response_models"
	"cruisy/internal/models/trip_models"
	mem "cruisy/pkg/memcache"
	"cruisy/pkg/utils"
)

// SessionController exposes the view state machine. Transitions happen only
// here and in the search flow; there are no implicit timers.
type SessionController struct {
	session *mem.PlannerSession
}

func NewSessionController(session *mem.PlannerSession) *SessionController {
	return &SessionController{
		session: session,
	}
}

func (s *SessionController) GetSession(c *gin.Context) {
	utils.RespondSuccess(c, response_models.SessionResponse{
		View:               string(s.session.View()),
		Destination:        s.session.Destination(),
		SelectedActivityID: s.session.SelectedActivityID(),
	}, "Session fetched successfully")
}

func (s *SessionController) SetView(c *gin.Context) {
	var req request_models.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.View == "" {
		utils.RespondError(c, http.StatusBadRequest, "View is required")
		return
	}

	view, ok := trip_models.ParseViewState(req.View)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidView)
		return
	}

	s.session.Transition(view)
	s.GetSession(c)
}

func (s *SessionController) SelectActivity(c *gin.Context) {
	var req request_models.SelectActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	s.session.SelectActivity(req.ActivityID)
	s.GetSession(c)
}
