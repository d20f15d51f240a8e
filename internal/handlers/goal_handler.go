package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goals services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goals services.GoalServicer) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// CreateGoalRequest represents the request payload for creating a goal.
// Target and current are decimal strings; deadline is a calendar date
// (YYYY-MM-DD).
type CreateGoalRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Target   string `json:"target" binding:"required,amount"`
	Current  string `json:"current" binding:"omitempty,amount"`
	Deadline string `json:"deadline" binding:"required"`
}

// ContributeRequest represents the request payload for a goal contribution.
type ContributeRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

// goalView decorates a goal with its progress ratio.
type goalView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline"`
	Progress float64 `json:"progress"`
}

// CreateGoal creates a new savings goal.
// @Summary     Create a goal
// @Description Create a named savings goal with a target and deadline
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	target, err := parseAmount(req.Target)
	if err != nil {
		respondWithError(c, err)
		return
	}

	input := services.NewGoal{Name: req.Name, Target: target}

	if req.Current != "" {
		current, err := parseAmount(req.Current)
		if err != nil {
			respondWithError(c, err)
			return
		}
		input.Current = current
	}

	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "deadline must be a date in YYYY-MM-DD format"))
		return
	}
	input.Deadline = deadline

	goal, err := h.goals.AddGoal(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals lists all goals with their progress ratios.
// @Summary     List goals
// @Tags        goals
// @Produce     json
// @Success     200 {object} map[string][]goalView
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.goals.GetGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	views := make([]goalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, goalView{
			ID:       g.ID,
			Name:     g.Name,
			Target:   g.Target.Float(),
			Current:  g.Current.Float(),
			Deadline: g.Deadline.Format("2006-01-02"),
			Progress: g.Progress(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"goals": views})
}

// DeleteGoal removes a goal.
// @Summary     Delete a goal
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goals.RemoveGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

// Contribute adds money to one specific goal.
// @Summary     Contribute to a goal
// @Description Add an amount to a single goal's progress, independent of the income broadcast
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id path int true "Goal ID"
// @Param       request body ContributeRequest true "Contribution amount"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/contributions [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goals.Contribute(id, amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
