package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"loan-audit/internal/audit"
	"loan-audit/internal/common"
	"loan-audit/internal/entity"
	"loan-audit/internal/export"
	"loan-audit/internal/extract"
	"loan-audit/internal/ingest"
	"loan-audit/internal/policy"
	"loan-audit/internal/repository"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	var (
		inPath     = flag.String("in", "", "statement text dump (pages separated by form feeds)")
		xlsxPath   = flag.String("xlsx", "", "optional path to write an XLSX report")
		dbPath     = flag.String("db", "", "optional SQLite path to persist the report")
		policyPath = flag.String("policy", "", "optional JSON audit-policy override")
		asJSON     = flag.Bool("json", false, "print findings as JSON")
		parallel   = flag.Bool("parallel", false, "evaluate rules concurrently")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("-in is required")
	}

	pages, err := ingest.ReadPages(*inPath)
	if err != nil {
		log.Fatalf("reading statement: %v", err)
	}

	pol, err := policy.Load(*policyPath)
	if err != nil {
		log.Fatalf("loading policy: %v", err)
	}

	pipeline := extract.NewPipeline(nil)
	rec, err := pipeline.Extract(pages)
	if err != nil {
		var pe *common.ParsingError
		if errors.As(err, &pe) {
			log.Fatalw("extraction failed", "code", pe.Code, "field", pe.Field, "error", err)
		}
		log.Fatalf("extraction failed: %v", err)
	}

	engine := audit.NewEngine(nil, audit.DefaultRules(pol)...)
	var findings []entity.AuditFinding
	if *parallel {
		findings = engine.RunParallel(rec)
		sort.Slice(findings, func(i, j int) bool { return findings[i].RuleCode < findings[j].RuleCode })
	} else {
		findings = engine.Run(rec)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			log.Fatalf("encoding findings: %v", err)
		}
	} else {
		printFindings(rec, findings)
	}

	if *xlsxPath != "" {
		data, err := export.NewService(nil).WriteReportXLSX(rec, findings)
		if err != nil {
			log.Fatalf("building XLSX: %v", err)
		}
		if err := os.WriteFile(*xlsxPath, data, 0o644); err != nil {
			log.Fatalf("writing XLSX: %v", err)
		}
		log.Infow("report written", "path", *xlsxPath)
	}

	if *dbPath != "" {
		ctx := context.Background()
		store, err := repository.OpenSQLite(ctx, *dbPath, nil)
		if err != nil {
			log.Fatalf("opening report store: %v", err)
		}
		defer func() { _ = store.Close() }()
		id, err := store.SaveReport(ctx, rec, findings)
		if err != nil {
			log.Fatalf("saving report: %v", err)
		}
		log.Infow("report saved", "report_id", id)
	}
}

func printFindings(rec *entity.LoanRecord, findings []entity.AuditFinding) {
	fmt.Printf("Servicer: %s  Account: %s  Rate: %.2f%%  Balance: $%.2f\n\n",
		rec.ServicerName, rec.AccountNumber, rec.InterestRate, rec.CurrentBalance)
	if len(findings) == 0 {
		fmt.Println("No issues found.")
		return
	}
	for _, f := range findings {
		fmt.Printf("[%s] %s (%s)\n", f.Severity, f.Title, f.RuleCode)
		fmt.Printf("  %s\n", f.Description)
		fmt.Printf("  Suggested: %s\n\n", f.SuggestedAction)
	}
}
