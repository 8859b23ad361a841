package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// TicketHandler serves ticket and reply endpoints. Authorization context
// (account id, username, capabilities) is resolved by the auth middleware.
type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getDetailsUC   usecases.GetTicketDetailsExecutor
	addReplyUC     usecases.AddReplyExecutor
	listRepliesUC  usecases.ListRepliesExecutor
	updateReplyUC  usecases.UpdateReplyExecutor
	deleteReplyUC  usecases.DeleteReplyExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getDetailsUC usecases.GetTicketDetailsExecutor,
	addReplyUC usecases.AddReplyExecutor,
	listRepliesUC usecases.ListRepliesExecutor,
	updateReplyUC usecases.UpdateReplyExecutor,
	deleteReplyUC usecases.DeleteReplyExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		getDetailsUC:   getDetailsUC,
		addReplyUC:     addReplyUC,
		listRepliesUC:  listRepliesUC,
		updateReplyUC:  updateReplyUC,
		deleteReplyUC:  deleteReplyUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /api/user/createTicket
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:        req.Title,
		Description:  req.Description,
		AccountID:    middleware.AccountID(c),
		Capabilities: middleware.AccountCapabilities(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, TicketResponse{
		ID:          result.TicketID,
		Title:       result.Title,
		Description: result.Description,
		CreatedBy:   result.CreatorID,
		CreatedDate: result.CreatedAt,
	})
}

// ListTickets handles GET /api/user/getTickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		AccountID:    middleware.AccountID(c),
		Capabilities: middleware.AccountCapabilities(c),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Total, ticketSummaries(result.Tickets))
}

// GetTicketDetails handles GET /api/ticket/:id
func (h *TicketHandler) GetTicketDetails(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDetailsUC.Execute(c.Request.Context(), usecases.GetTicketDetailsCommand{
		TicketID:     ticketID,
		AccountID:    middleware.AccountID(c),
		Capabilities: middleware.AccountCapabilities(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, TicketDetailsResponse{
		ID:          result.TicketID,
		Title:       result.Title,
		Description: result.Description,
		CreatedBy:   result.CreatorID,
		CreatedDate: result.CreatedAt,
		Replies:     replyResponses(result.Replies),
	})
}

// AddReply handles POST /api/ticket/:id/replies
func (h *TicketHandler) AddReply(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addReplyUC.Execute(c.Request.Context(), usecases.AddReplyCommand{
		TicketID:     ticketID,
		AccountID:    middleware.AccountID(c),
		Username:     middleware.Username(c),
		Content:      req.Content,
		Capabilities: middleware.AccountCapabilities(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, replyResponse(*result))
}

// ListReplies handles GET /api/ticket/:id/replies
func (h *TicketHandler) ListReplies(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRepliesUC.Execute(c.Request.Context(), usecases.ListRepliesCommand{
		TicketID:     ticketID,
		AccountID:    middleware.AccountID(c),
		Capabilities: middleware.AccountCapabilities(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Total, replyResponses(result.Replies))
}

// UpdateReply handles PUT /api/ticket/replies/:id
func (h *TicketHandler) UpdateReply(c *gin.Context) {
	replyID, err := utils.ParseIDParam(c, "id", "reply")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateReplyUC.Execute(c.Request.Context(), usecases.UpdateReplyCommand{
		ReplyID:   replyID,
		AccountID: middleware.AccountID(c),
		Username:  middleware.Username(c),
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, replyResponse(*result))
}

// DeleteReply handles DELETE /api/ticket/replies/:id
func (h *TicketHandler) DeleteReply(c *gin.Context) {
	replyID, err := utils.ParseIDParam(c, "id", "reply")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteReplyUC.Execute(c.Request.Context(), usecases.DeleteReplyCommand{
		ReplyID:   replyID,
		AccountID: middleware.AccountID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageSuccessResponse(c, "reply deleted successfully")
}
