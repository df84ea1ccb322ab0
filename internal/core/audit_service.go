package core

import (
	"context"
	"fmt"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

// auditService implements the AuditService interface.
type auditService struct {
	auditRepo db.AuditRepository
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// CreateAuditLog appends an audit log entry. Callers treat failures as
// non-fatal; the primary operation is never rolled back for a missing log.
func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if s.auditRepo == nil {
		return fmt.Errorf("AuditRepository not initialized in AuditService")
	}
	if err := s.auditRepo.Create(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to create audit log via repository: %w", err)
	}
	return nil
}
