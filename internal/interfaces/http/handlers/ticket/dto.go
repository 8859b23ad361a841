package ticket

import (
	"time"

	"helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
}

type AddReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

type TicketResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedDate time.Time `json:"createdDate"`
}

type TicketSummaryResponse struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	CreatedBy         uint      `json:"createdBy"`
	CreatedByUsername string    `json:"createdByUsername"`
	CreatedDate       time.Time `json:"createdDate"`
}

type ReplyResponse struct {
	ID                uint      `json:"id"`
	TicketID          uint      `json:"ticketId"`
	CreatedBy         uint      `json:"createdBy"`
	CreatedByUsername string    `json:"createdByUsername"`
	Content           string    `json:"content"`
	ContentHTML       string    `json:"contentHtml"`
	CreatedAt         time.Time `json:"createdAt"`
}

type TicketDetailsResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	CreatedBy   uint            `json:"createdBy"`
	CreatedDate time.Time       `json:"createdDate"`
	Replies     []ReplyResponse `json:"replies"`
}

func ticketSummaries(items []usecases.TicketSummary) []TicketSummaryResponse {
	out := make([]TicketSummaryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, TicketSummaryResponse{
			ID:                item.TicketID,
			Title:             item.Title,
			Description:       item.Description,
			CreatedBy:         item.CreatorID,
			CreatedByUsername: item.CreatorUsername,
			CreatedDate:       item.CreatedAt,
		})
	}
	return out
}

func replyResponse(detail usecases.ReplyDetail) ReplyResponse {
	return ReplyResponse{
		ID:                detail.ReplyID,
		TicketID:          detail.TicketID,
		CreatedBy:         detail.CreatorID,
		CreatedByUsername: detail.CreatorUsername,
		Content:           detail.Content,
		ContentHTML:       detail.ContentHTML,
		CreatedAt:         detail.CreatedAt,
	}
}

func replyResponses(details []usecases.ReplyDetail) []ReplyResponse {
	out := make([]ReplyResponse, 0, len(details))
	for _, detail := range details {
		out = append(out, replyResponse(detail))
	}
	return out
}
