// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine wires the template, project, and submission components
// together and dispatches the named operations the CLI exposes.
package engine

import (
	"fmt"
	"strings"

	"github.com/pdiddy/submission-engine/internal/cache"
	"github.com/pdiddy/submission-engine/internal/catalog"
	"github.com/pdiddy/submission-engine/internal/extractor"
	"github.com/pdiddy/submission-engine/internal/history"
	"github.com/pdiddy/submission-engine/internal/journal"
	"github.com/pdiddy/submission-engine/internal/project"
	"github.com/pdiddy/submission-engine/internal/resolver"
	"github.com/pdiddy/submission-engine/internal/submit"
	"github.com/pdiddy/submission-engine/pkg/types"
)

// Operation names an engine entry point.
type Operation string

const (
	OpInit      Operation = "init"
	OpTemplate  Operation = "template"
	OpExtract   Operation = "extract"
	OpValidate  Operation = "validate"
	OpPrepare   Operation = "prepare"
	OpPackage   Operation = "package"
	OpChecklist Operation = "checklist"
	OpClean     Operation = "clean"
)

// Request carries the parameters of one operation. Fields irrelevant to the
// requested operation are ignored.
type Request struct {
	Operation Operation `json:"operation"`

	// ProjectPath locates the project for project-scoped operations.
	ProjectPath string `json:"project_path,omitempty"`

	// ProjectName names a new project for init.
	ProjectName string `json:"project_name,omitempty"`

	// TemplateID selects a template for init and template fetch.
	TemplateID string `json:"template_id,omitempty"`

	// TemplateSource forces a template source; empty means auto-detect.
	TemplateSource types.TemplateSource `json:"template_source,omitempty"`

	// Query drives a template search when TemplateID is empty.
	Query string `json:"query,omitempty"`

	// ArxivID names a paper for extract.
	ArxivID string `json:"arxiv_id,omitempty"`

	// JournalName overrides the manifest's journal target.
	JournalName string `json:"journal_name,omitempty"`

	// OutputDir overrides the package output directory.
	OutputDir string `json:"output_dir,omitempty"`

	// Author and Info feed placeholder substitution during init.
	Author *types.AuthorInfo  `json:"author,omitempty"`
	Info   *types.ProjectInfo `json:"info,omitempty"`

	// Extract overrides the extractor's default sanitization options.
	Extract *types.ExtractOptions `json:"extract,omitempty"`
}

// Response is the uniform result of a dispatched operation. Data holds the
// operation's payload (records, reports, checklists) for structured output.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// PrepareResult is the prepare operation's payload: the validation report,
// plus the package result when validation passed.
type PrepareResult struct {
	Validation types.ValidationReport `json:"validation"`
	Package    *submit.PackageResult  `json:"package,omitempty"`
}

// Engine coordinates the components behind the CLI operations.
type Engine struct {
	resolver  *resolver.Resolver
	pipeline  *submit.Pipeline
	journals  submit.JournalFinder
	checklist *submit.Checklist
	history   *history.Store
}

// New wires an engine from configuration: file cache, seeded catalog adapter,
// simulated paper repository, host LaTeX compiler, and, unless disabled, the
// operations ledger next to the cache.
func New(cfg types.EngineConfig) (*Engine, error) {
	c, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("opening template cache: %w", err)
	}

	journals := journal.NewCatalog()
	if cfg.Journal.CatalogPath != "" {
		journals, err = journal.LoadCatalog(cfg.Journal.CatalogPath)
		if err != nil {
			return nil, err
		}
	}

	var ledger *history.Store
	if !cfg.History.Disabled {
		ledger, err = history.NewStore(c.Dir())
		if err != nil {
			return nil, err
		}
	}

	res := resolver.New(catalog.New(), extractor.New(extractor.NewSimulatedRepository()), c)
	return &Engine{
		resolver:  res,
		pipeline:  submit.NewPipeline(submit.NewToolCompiler(), journals),
		journals:  journals,
		checklist: submit.NewChecklist(),
		history:   ledger,
	}, nil
}

// NewWithParts wires an engine from explicit collaborators. Tests use it to
// substitute fakes; hist may be nil to disable recording.
func NewWithParts(res *resolver.Resolver, pipeline *submit.Pipeline, journals submit.JournalFinder, checklist *submit.Checklist, hist *history.Store) *Engine {
	return &Engine{
		resolver:  res,
		pipeline:  pipeline,
		journals:  journals,
		checklist: checklist,
		history:   hist,
	}
}

// Resolver exposes the template resolver for cache maintenance commands.
func (e *Engine) Resolver() *resolver.Resolver { return e.resolver }

// Close releases the engine's resources.
func (e *Engine) Close() error {
	if e.history != nil {
		return e.history.Close()
	}
	return nil
}

// Dispatch routes a request to its operation, records the outcome in the
// ledger, and returns the uniform response. Unknown operations fail without
// being recorded.
func (e *Engine) Dispatch(req Request) Response {
	var resp Response
	switch req.Operation {
	case OpInit:
		resp = e.initProject(req)
	case OpTemplate:
		resp = e.template(req)
	case OpExtract:
		resp = e.extract(req)
	case OpValidate:
		resp = e.validate(req)
	case OpPrepare:
		resp = e.prepare(req)
	case OpPackage:
		resp = e.pack(req)
	case OpChecklist:
		resp = e.checklistOp(req)
	case OpClean:
		resp = e.clean(req)
	default:
		return failure(string(req.Operation), fmt.Errorf("unknown operation %q", req.Operation))
	}

	// Recording is best effort; a ledger failure never fails the operation.
	if e.history != nil {
		_, _ = e.history.Record(string(req.Operation), req.ProjectPath, resp.Success, resp.Message)
	}
	return resp
}

func (e *Engine) initProject(req Request) Response {
	record, err := e.resolver.Fetch(req.TemplateID, req.TemplateSource)
	if err != nil {
		return failure("init", fmt.Errorf("resolving template: %w", err))
	}

	result := project.Initialize(project.Options{
		Name:          req.ProjectName,
		Path:          req.ProjectPath,
		Template:      record,
		JournalTarget: req.JournalName,
		Author:        req.Author,
		Info:          req.Info,
	})
	if !result.Success {
		return Response{
			Success: false,
			Message: "init failed: project initialization reported errors",
			Data:    result,
			Errors:  result.Errors,
		}
	}
	return Response{
		Success: true,
		Message: fmt.Sprintf("initialized %s from template %s", req.ProjectName, record.ID),
		Data:    result,
	}
}

func (e *Engine) template(req Request) Response {
	if req.TemplateID != "" {
		record, err := e.resolver.Fetch(req.TemplateID, req.TemplateSource)
		if err != nil {
			return failure("template", err)
		}
		return Response{
			Success: true,
			Message: fmt.Sprintf("fetched template %s from %s", record.ID, record.Source),
			Data:    record,
		}
	}

	records, err := e.resolver.Search(catalog.Filter{Query: req.Query})
	if err != nil {
		return failure("template", err)
	}
	return Response{
		Success: true,
		Message: fmt.Sprintf("found %d templates", len(records)),
		Data:    records,
	}
}

func (e *Engine) extract(req Request) Response {
	opts := extractor.DefaultOptions()
	if req.Extract != nil {
		opts = *req.Extract
	}
	paperID := strings.TrimPrefix(strings.TrimPrefix(req.ArxivID, "arXiv:"), "arxiv:")
	record, err := e.resolver.ExtractFromPaper(paperID, opts)
	if err != nil {
		return failure("extract", err)
	}
	return Response{
		Success: true,
		Message: fmt.Sprintf("extracted template %s from paper %s", record.ID, req.ArxivID),
		Data:    record,
	}
}

func (e *Engine) validate(req Request) Response {
	report, err := e.pipeline.Validate(req.ProjectPath, e.journalTarget(req))
	if err != nil {
		return failure("validate", err)
	}
	if !report.Passed() {
		return Response{
			Success: false,
			Message: "validate failed: " + validationFailureCause(report),
			Data:    report,
		}
	}
	return Response{Success: true, Message: "all validation checks passed", Data: report}
}

// prepare runs validation and packages only on success. A failing validation
// stops the pipeline before any package directory is created.
func (e *Engine) prepare(req Request) Response {
	report, err := e.pipeline.Validate(req.ProjectPath, e.journalTarget(req))
	if err != nil {
		return failure("prepare", err)
	}

	result := PrepareResult{Validation: report}
	if !report.Passed() {
		return Response{
			Success: false,
			Message: "prepare failed: " + validationFailureCause(report),
			Data:    result,
		}
	}

	pkg, err := submit.Package(req.ProjectPath, req.OutputDir)
	if err != nil {
		return failure("prepare", fmt.Errorf("packaging: %w", err))
	}
	result.Package = &pkg
	return Response{
		Success: true,
		Message: fmt.Sprintf("validated and packaged into %s", pkg.Dir),
		Data:    result,
	}
}

func (e *Engine) pack(req Request) Response {
	result, err := submit.Package(req.ProjectPath, req.OutputDir)
	if err != nil {
		return failure("package", err)
	}
	return Response{
		Success: true,
		Message: fmt.Sprintf("packaged %d files into %s", len(result.Files), result.Dir),
		Data:    result,
	}
}

func (e *Engine) checklistOp(req Request) Response {
	var req2 *types.JournalRequirements
	if name := e.journalTarget(req); name != "" {
		if found, err := e.journals.FindJournal(name); err == nil {
			req2 = &found
		}
	}

	items := e.checklist.Generate(req.ProjectPath, req2)
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return Response{
		Success: true,
		Message: fmt.Sprintf("%d of %d checklist items complete", completed, len(items)),
		Data:    items,
	}
}

func (e *Engine) clean(req Request) Response {
	removed, err := submit.Clean(req.ProjectPath)
	if err != nil {
		return failure("clean", err)
	}
	return Response{
		Success: true,
		Message: fmt.Sprintf("removed %d artifacts", len(removed)),
		Data:    removed,
	}
}

// journalTarget resolves the journal name: the request's override first, the
// project manifest's target second.
func (e *Engine) journalTarget(req Request) string {
	if req.JournalName != "" {
		return req.JournalName
	}
	if manifest, err := project.ReadManifest(req.ProjectPath); err == nil {
		return manifest.JournalTarget
	}
	return ""
}

// validationFailureCause names the first failing check for the message line.
func validationFailureCause(report types.ValidationReport) string {
	switch {
	case !report.Compilation.Success:
		if len(report.Compilation.Errors) > 0 {
			return "compilation: " + report.Compilation.Errors[0]
		}
		return "compilation failed"
	case !report.Compliance.PageLimit || !report.Compliance.WordLimit || !report.Compliance.ReferenceStyle:
		if len(report.Compliance.Issues) > 0 {
			return "compliance: " + report.Compliance.Issues[0]
		}
		return "journal compliance failed"
	case !report.FileStructure.MainDocument || !report.FileStructure.Bibliography:
		if len(report.FileStructure.Missing) > 0 {
			return "file structure: missing " + report.FileStructure.Missing[0]
		}
		return "file structure check failed"
	default:
		return "validation failed"
	}
}

func failure(operation string, err error) Response {
	return Response{
		Success: false,
		Message: fmt.Sprintf("%s failed: %v", operation, err),
		Errors:  []string{err.Error()},
	}
}
