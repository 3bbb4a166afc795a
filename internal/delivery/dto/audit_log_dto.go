package dto

import (
	"time"

	"clinic-booking/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64                `json:"id"`
	Actor     *ParticipantResponse `json:"actor,omitempty"`
	Action    string               `json:"action"`
	Metadata  entity.JSON          `json:"metadata"`
	CreatedAt time.Time            `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
