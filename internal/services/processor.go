package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mdrepo/mdrmeta/internal/checksum"
	"github.com/mdrepo/mdrmeta/internal/datapackage"
	"github.com/mdrepo/mdrmeta/internal/files/filesystem"
	"github.com/mdrepo/mdrmeta/internal/files/loader"
	"github.com/mdrepo/mdrmeta/internal/metadata"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

// Options select how documents are decoded.
type Options struct {
	// Format forces an input encoding. FormatAuto uses the file extension,
	// or the leading-brace heuristic for standard input.
	Format metadata.Format

	// Version is the schema documents are decoded against.
	Version metadata.SchemaVersion
}

// CheckRequest asks for every document under Paths to be validated.
type CheckRequest struct {
	Options
	Paths []string

	// Rules overrides the validator parameters. The zero value selects
	// metadata.DefaultRules for Version.
	Rules metadata.Rules
}

func (r CheckRequest) rules() metadata.Rules {
	if r.Rules == (metadata.Rules{}) {
		return metadata.DefaultRules(r.Version)
	}
	return r.Rules
}

// ConvertRequest asks for one document to be canonicalized and re-encoded.
type ConvertRequest struct {
	Options
	Path   string
	Output metadata.Format
}

// MigrateRequest asks for one document to be upgraded to Target.
type MigrateRequest struct {
	Options
	Path   string
	Target metadata.SchemaVersion
	Output metadata.Format
}

// FileResult is the outcome of checking one document.
type FileResult struct {
	Source     mdrmeta.SourceFile
	Version    metadata.SchemaVersion
	RecordID   uuid.UUID
	Identifier string

	// CanonicalChecksum is empty when the document could not be canonicalized.
	CanonicalChecksum string

	Result metadata.ValidationResult

	// Err is set when the document could not be decoded or canonicalized.
	// Result is then empty.
	Err error
}

// Failed reports whether the document could not be decoded or canonicalized.
func (f FileResult) Failed() bool { return f.Err != nil }

// CheckReport collects the results of a check in input order.
type CheckReport struct {
	Files []FileResult
}

// FindingCount is the number of findings across all documents.
func (r CheckReport) FindingCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Result.Findings)
	}
	return n
}

// FailedCount is the number of documents that could not be decoded or canonicalized.
func (r CheckReport) FailedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Failed() {
			n++
		}
	}
	return n
}

// Err joins the errors of every failed document, or returns nil.
func (r CheckReport) Err() error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errors.Join(errs...)
}

// Processor runs the decode, canonicalize, validate and migrate pipeline
// over documents on a filesystem.
// Processor is safe for concurrent use when its dependencies are.
type Processor struct {
	logger     mdrmeta.Logger
	scanner    mdrmeta.FileScanner
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewProcessor creates a Processor with all dependencies injected.
// Panics on nil dependencies: these are wiring mistakes that must fail at
// startup rather than deep inside a command.
func NewProcessor(
	logger mdrmeta.Logger,
	scanner mdrmeta.FileScanner,
	calculator checksum.Calculator,
	fsProvider filesystem.FileSystemProvider,
) *Processor {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Processor{
		logger:     logger,
		scanner:    scanner,
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// Check decodes, canonicalizes and validates every document under the
// request paths. Per-document decode and canonicalization failures are
// recorded in the report and that document is not validated; the returned
// error is reserved for failures to discover documents and cancellation.
func (p *Processor) Check(ctx context.Context, req CheckRequest) (CheckReport, error) {
	scan, err := p.scanner.Scan(req.Paths)
	if err != nil {
		return CheckReport{}, err
	}
	p.logger.Verbose("Checking %d file(s) as schema %s", len(scan.Files), req.Version)

	ld := loader.NewLoader(req.Format, req.Version)
	rules := req.rules()

	report := CheckReport{Files: make([]FileResult, 0, len(scan.Files))}
	for _, src := range scan.Files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Files = append(report.Files, p.checkOne(ld, src, rules))
	}
	return report, nil
}

func (p *Processor) checkOne(ld *loader.Loader, src mdrmeta.SourceFile, rules metadata.Rules) FileResult {
	result := FileResult{Source: src, Version: ld.Version()}

	rec, err := ld.Load(src)
	if err != nil {
		p.logger.Verbose("%s: %v", src.Path, err)
		result.Err = err
		return result
	}
	result.Identifier = rec.Identifier()
	result.RecordID = metadata.RecordID(rec, src.RelativePath)

	if err := metadata.Canonicalize(rec); err != nil {
		p.logger.Verbose("%s: %v", src.Path, err)
		result.Err = fmt.Errorf("%s: %w", src.Path, err)
		return result
	}
	if sum, err := p.calculator.CalculateRecord(rec); err == nil {
		result.CanonicalChecksum = sum
	} else {
		p.logger.Verbose("%s: %v", src.Path, err)
	}

	result.Result = metadata.Validate(rec, rules)
	p.logger.Verbose("%s: %d finding(s)", src.Path, len(result.Result.Findings))
	return result
}

// Convert canonicalizes one document and encodes it in req.Output.
func (p *Processor) Convert(ctx context.Context, req ConvertRequest) ([]byte, error) {
	rec, _, err := p.loadCanonical(ctx, req.Path, req.Options)
	if err != nil {
		return nil, err
	}
	return metadata.Encode(rec, req.Output)
}

// Migrate canonicalizes one document, upgrades it to req.Target,
// canonicalizes the result and encodes it in req.Output.
func (p *Processor) Migrate(ctx context.Context, req MigrateRequest) ([]byte, error) {
	rec, src, err := p.loadCanonical(ctx, req.Path, req.Options)
	if err != nil {
		return nil, err
	}

	migrated, err := metadata.Migrate(rec, req.Target)
	if err != nil {
		return nil, err
	}
	if err := metadata.Canonicalize(migrated); err != nil {
		return nil, err
	}
	p.logger.Verbose("Migrated %s from %s to %s", src.Path, rec.SchemaVersion(), migrated.SchemaVersion())
	return metadata.Encode(migrated, req.Output)
}

// DataPackage canonicalizes one document and renders its Frictionless
// data package descriptor.
func (p *Processor) DataPackage(ctx context.Context, path string, opts Options) ([]byte, error) {
	rec, src, err := p.loadCanonical(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	pkg, err := datapackage.Build(rec, metadata.RecordID(rec, src.RelativePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}
	p.logger.Verbose("Data package for %s lists %d resource(s)", src.Path, len(pkg.ResourceNames()))
	return datapackage.Marshal(pkg)
}

// Example encodes the built-in example record.
func (p *Processor) Example(format metadata.Format) ([]byte, error) {
	return metadata.Encode(metadata.ExampleV1(), format)
}

// WriteOutput writes data to dest, or to stdout when dest is "-" or empty.
func (p *Processor) WriteOutput(dest string, data []byte, stdout io.Writer) error {
	if dest == "" || dest == mdrmeta.StdinPath {
		_, err := stdout.Write(data)
		return err
	}
	if err := p.fsProvider.WriteFile(dest, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	p.logger.Verbose("Wrote %d bytes to %s", len(data), dest)
	return nil
}

func (p *Processor) loadCanonical(ctx context.Context, path string, opts Options) (metadata.Record, mdrmeta.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, mdrmeta.SourceFile{}, err
	}

	scan, err := p.scanner.Scan([]string{path})
	if err != nil {
		return nil, mdrmeta.SourceFile{}, err
	}
	if len(scan.Files) != 1 {
		return nil, mdrmeta.SourceFile{}, fmt.Errorf("expected a single document, %s contains %d", path, len(scan.Files))
	}
	src := scan.Files[0]

	rec, err := loader.NewLoader(opts.Format, opts.Version).Load(src)
	if err != nil {
		return nil, src, err
	}
	if err := metadata.Canonicalize(rec); err != nil {
		return nil, src, fmt.Errorf("%s: %w", src.Path, err)
	}
	p.logger.Verbose("Loaded %s as %s record", src.Path, rec.SchemaVersion())
	return rec, src, nil
}
