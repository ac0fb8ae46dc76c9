package service

import (
	"context"
	"log/slog"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/strength"
)

// GeneratorService handles password generation business logic. When an
// audit repository is present, generation metadata is recorded
// best-effort; a failed write never fails the request.
type GeneratorService struct {
	audit *repository.AuditRepository
}

// NewGeneratorService creates a new GeneratorService. audit may be nil,
// which disables audit recording.
func NewGeneratorService(audit *repository.AuditRepository) *GeneratorService {
	return &GeneratorService{audit: audit}
}

// Generate produces a single password annotated with its strength.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFromRequest(req)

	password, err := generator.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := annotate(password)
	s.record(ctx, opts, resp.Score)
	return resp, nil
}

// GenerateBatch produces count passwords sharing one option set. The
// count is not validated here; the handler and CLI bound it.
func (s *GeneratorService) GenerateBatch(ctx context.Context, req model.BatchRequest) (model.BatchResponse, error) {
	opts := optionsFromRequest(req.GenerateRequest)

	passwords, err := generator.GenerateBatch(req.Count, opts)
	if err != nil {
		return model.BatchResponse{}, err
	}

	resp := model.BatchResponse{
		Passwords: make([]model.GenerateResponse, 0, len(passwords)),
		Count:     len(passwords),
	}
	for _, pw := range passwords {
		item := annotate(pw)
		resp.Passwords = append(resp.Passwords, item)
		s.record(ctx, opts, item.Score)
	}

	return resp, nil
}

func annotate(password string) model.GenerateResponse {
	score := strength.Score(password)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Score:    score,
		Label:    string(strength.LabelFor(score)),
	}
}

// optionsFromRequest resolves request defaults: missing class toggles
// fall back to uppercase and digits on, special off; a zero length means
// the default length.
func optionsFromRequest(req model.GenerateRequest) generator.Options {
	opts := generator.Options{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Special:   boolOrDefault(req.Special, false),
	}
	if opts.Length == 0 {
		opts.Length = generator.DefaultLength
	}
	return opts
}

func (s *GeneratorService) record(ctx context.Context, opts generator.Options, score int) {
	if s.audit == nil {
		return
	}
	ev := model.AuditEvent{
		Length:    opts.Length,
		Uppercase: opts.Uppercase,
		Digits:    opts.Digits,
		Special:   opts.Special,
		Score:     score,
	}
	if err := s.audit.Record(ctx, ev); err != nil {
		slog.Warn("audit record failed", "error", err)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
