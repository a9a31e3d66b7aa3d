package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loan-audit/internal/entity"
)

// Report is one persisted audit run.
type Report struct {
	ID            uuid.UUID
	AccountNumber string
	ServicerName  string
	CreatedAt     time.Time
	Findings      []entity.AuditFinding
}

// ReportRepository persists audit runs. Persistence is a collaborator
// concern; the extraction and audit core never touch it.
type ReportRepository interface {
	SaveReport(ctx context.Context, rec *entity.LoanRecord, findings []entity.AuditFinding) (uuid.UUID, error)
	GetReport(ctx context.Context, id uuid.UUID) (*Report, error)
	ListReports(ctx context.Context, accountNumber string) ([]Report, error)
}
