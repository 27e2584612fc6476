package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"thikana/internal/delivery/http/response"
	"thikana/internal/domain/entity"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler holds dependencies for inquiry pipeline handlers
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// SubmitLeadRequest represents the request body for a visitor inquiry
type SubmitLeadRequest struct {
	ListingID   string `json:"listing_id" validate:"required,uuid"`
	ListingKind string `json:"listing_kind" validate:"required,oneof=property project"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=30"`
	Message     string `json:"message" validate:"max=2000"`
}

// TransitionLeadRequest represents the request body for a status change
type TransitionLeadRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

// AssignLeadRequest represents the request body for assigning a lead
type AssignLeadRequest struct {
	AgentID string `json:"agent_id" validate:"required,uuid"`
}

// Submit handles public inquiry form submissions
func (h *LeadHandler) Submit(c echo.Context) error {
	var req SubmitLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	lead, err := h.leadUC.SubmitLead(c.Request().Context(), &usecase.CreateLeadInput{
		ListingID:   listingID,
		ListingKind: entity.ListingKind(req.ListingKind),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, lead, "Inquiry submitted successfully")
}

// Get returns one lead for the agent dashboard detail view. Admins may fetch
// any lead; agents only their own assignments.
func (h *LeadHandler) Get(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	lead, err := h.leadUC.GetLead(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if lead.AssignedAgentID != actorID && !slices.Contains(getRoles(c), entity.RoleAdmin.String()) {
		return response.Forbidden(c, "LEAD_FORBIDDEN", "Lead is assigned to another agent")
	}

	return response.Success(c, http.StatusOK, lead, "Lead retrieved successfully")
}

// List returns leads for the agent dashboard. Admins may filter the whole
// pipeline by status; agents see their own assignments.
func (h *LeadHandler) List(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	status := c.QueryParam("status")
	if status != "" && slices.Contains(getRoles(c), entity.RoleAdmin.String()) {
		leads, err := h.leadUC.ListLeadsByStatus(ctx, entity.LeadStatus(status))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, leads, "Leads retrieved successfully")
	}

	leads, err := h.leadUC.ListLeadsByAgent(ctx, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, leads, "Leads retrieved successfully")
}

// Transition moves a lead through the pipeline
func (h *LeadHandler) Transition(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	var req TransitionLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.leadUC.TransitionLead(c.Request().Context(), id, entity.LeadStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Lead updated successfully")
}

// Assign hands a lead to an agent
func (h *LeadHandler) Assign(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	var req AssignLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	agentID, err := uuid.Parse(req.AgentID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid agent ID")
	}

	if err := h.leadUC.AssignLead(c.Request().Context(), id, agentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"agent_id": req.AgentID}, "Lead assigned successfully")
}
