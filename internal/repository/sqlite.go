package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"loan-audit/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_report (
	id             TEXT PRIMARY KEY,
	account_number TEXT NOT NULL,
	servicer_name  TEXT NOT NULL,
	record_json    TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS audit_finding (
	report_id        TEXT NOT NULL REFERENCES audit_report(id),
	issue_type       TEXT NOT NULL,
	rule_code        TEXT NOT NULL,
	title            TEXT NOT NULL,
	description      TEXT NOT NULL,
	suggested_action TEXT NOT NULL,
	severity         TEXT NOT NULL,
	affected_dates   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_report_account ON audit_report(account_number);
`

// SQLiteReportStore implements ReportRepository on an embedded SQLite
// database.
type SQLiteReportStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the report database at path.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteReportStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	logger.Info("repository.sqlite.open", "path", path)
	return &SQLiteReportStore{db: db, logger: logger}, nil
}

func (s *SQLiteReportStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteReportStore) SaveReport(ctx context.Context, rec *entity.LoanRecord, findings []entity.AuditFinding) (uuid.UUID, error) {
	id := uuid.New()

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode record: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO audit_report (id, account_number, servicer_name, record_json, created_at) VALUES (?, ?, ?, ?, ?)`,
		id.String(), rec.AccountNumber, rec.ServicerName, string(recordJSON), time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert report: %w", err)
	}

	for _, f := range findings {
		dates, err := json.Marshal(f.AffectedDates)
		if err != nil {
			return uuid.Nil, fmt.Errorf("encode affected dates: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO audit_finding (report_id, issue_type, rule_code, title, description, suggested_action, severity, affected_dates)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id.String(), string(f.IssueType), f.RuleCode, f.Title, f.Description, f.SuggestedAction, f.Severity.String(), string(dates),
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	s.logger.Info("repository.report.saved", "report_id", id, "findings", len(findings))
	return id, nil
}

func (s *SQLiteReportStore) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT account_number, servicer_name, created_at FROM audit_report WHERE id = ?`, id.String())

	rep := Report{ID: id}
	if err := row.Scan(&rep.AccountNumber, &rep.ServicerName, &rep.CreatedAt); err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	findings, err := s.loadFindings(ctx, id)
	if err != nil {
		return nil, err
	}
	rep.Findings = findings
	return &rep, nil
}

func (s *SQLiteReportStore) ListReports(ctx context.Context, accountNumber string) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_number, servicer_name, created_at FROM audit_report WHERE account_number = ? ORDER BY created_at DESC`,
		accountNumber)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Report
	for rows.Next() {
		var rep Report
		var idStr string
		if err := rows.Scan(&idStr, &rep.AccountNumber, &rep.ServicerName, &rep.CreatedAt); err != nil {
			return nil, err
		}
		if rep.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("bad report id %q: %w", idStr, err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (s *SQLiteReportStore) loadFindings(ctx context.Context, id uuid.UUID) ([]entity.AuditFinding, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT issue_type, rule_code, title, description, suggested_action, severity, affected_dates
		 FROM audit_finding WHERE report_id = ?`, id.String())
	if err != nil {
		return nil, fmt.Errorf("load findings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []entity.AuditFinding
	for rows.Next() {
		var f entity.AuditFinding
		var issue, severity, dates string
		if err := rows.Scan(&issue, &f.RuleCode, &f.Title, &f.Description, &f.SuggestedAction, &severity, &dates); err != nil {
			return nil, err
		}
		f.IssueType = entity.IssueType(issue)
		f.Severity = severityFromName(severity)
		if err := json.Unmarshal([]byte(dates), &f.AffectedDates); err != nil {
			return nil, fmt.Errorf("decode affected dates: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func severityFromName(name string) entity.Severity {
	switch name {
	case "critical":
		return entity.SeverityCritical
	case "high":
		return entity.SeverityHigh
	case "moderate":
		return entity.SeverityModerate
	default:
		return entity.SeverityLow
	}
}
