package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"
)

type RecordInput struct {
	UserID     uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	OldValue   interface{}
	NewValue   interface{}
	IPAddress  *string
	UserAgent  *string
}

type Service interface {
	Record(ctx context.Context, input RecordInput) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{auditRepo: auditRepo}
}

func (s *service) Record(ctx context.Context, input RecordInput) error {
	entry := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     input.UserID,
		Action:     input.Action,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
	}

	if input.OldValue != nil {
		if data, err := json.Marshal(input.OldValue); err == nil {
			entry.OldValue = data
		}
	}
	if input.NewValue != nil {
		if data, err := json.Marshal(input.NewValue); err == nil {
			entry.NewValue = data
		}
	}

	return s.auditRepo.Create(ctx, entry)
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}

	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}
