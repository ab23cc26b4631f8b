package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type ResponseRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ResponseRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	var responseModels []models.ResponseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&responseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	responses := make([]*ticket.Response, len(responseModels))
	for i, model := range responseModels {
		resp, err := r.mapper.ResponseToDomain(&model)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}

	return responses, nil
}
