// Package draft computes and creates dated draft directories, each holding
// an empty README.md stub.
package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/drafts/internal/apperr"
	"github.com/starford/drafts/internal/models"
	"github.com/starford/drafts/internal/storage"
)

// ReadmeName is the stub file created inside every draft directory.
const ReadmeName = "README.md"

const dateLayout = "20060102"

// README policies for a draft that already has a README.md.
const (
	ReadmeKeep     = "keep"
	ReadmeTruncate = "truncate"
)

// Clock returns the current time.
type Clock func() time.Time

// Scaffolder creates draft directories under a parent directory.
type Scaffolder struct {
	parent string
	store  storage.Provider
	now    Clock
	policy string
	logger *slog.Logger
}

// NewScaffolder returns a Scaffolder. parent is the drafts directory as it
// should appear in printed paths; store must be rooted at that directory.
func NewScaffolder(parent string, store storage.Provider, now Clock, policy string, logger *slog.Logger) *Scaffolder {
	if now == nil {
		now = time.Now
	}
	if policy == "" {
		policy = ReadmeKeep
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scaffolder{parent: parent, store: store, now: now, policy: policy, logger: logger}
}

// DirName returns "<YYYYMMDD>_<name>" for the calendar date of t.
func DirName(t time.Time, name string) string {
	return t.Format(dateLayout) + "_" + name
}

// ValidateName checks that name can be used verbatim as a draft directory suffix.
func ValidateName(name string) error {
	if err := validation.Validate(name, validation.Required); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidName, err)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: contains NUL byte", apperr.ErrInvalidName)
	}
	return nil
}

// Plan computes the draft for name at the current time without touching the filesystem.
// The name is used verbatim; names with ".." segments are rejected since they
// would move the draft away from its dated directory.
func (s *Scaffolder) Plan(name string) (*models.Draft, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	for _, seg := range strings.Split(filepath.ToSlash(name), "/") {
		if seg == ".." {
			return nil, fmt.Errorf("%w: %q contains a \"..\" segment", apperr.ErrInvalidName, name)
		}
	}
	now := s.now()
	dirName := DirName(now, name)
	rel := filepath.Clean(dirName)
	if !strings.HasPrefix(rel, now.Format(dateLayout)+"_") {
		return nil, fmt.Errorf("%w: %q does not keep the date prefix", apperr.ErrInvalidName, name)
	}
	return &models.Draft{
		Name:   name,
		Date:   now,
		Dir:    filepath.Clean(s.parent) + string(filepath.Separator) + dirName,
		Rel:    rel,
		Readme: filepath.Join(rel, ReadmeName),
	}, nil
}

// Create makes the draft directory (with missing ancestors) and its README.md.
// Failures abort immediately; nothing already created is removed.
func (s *Scaffolder) Create(_ context.Context, d *models.Draft) error {
	if err := s.store.MkdirAll(d.Rel); err != nil {
		return fmt.Errorf("create draft dir %s: %w", d.Dir, err)
	}

	switch s.policy {
	case ReadmeTruncate:
		if err := s.store.Write(d.Readme, nil); err != nil {
			return fmt.Errorf("create %s: %w", ReadmeName, err)
		}
		d.ReadmeCreated = true
	default:
		err := s.store.CreateEmpty(d.Readme)
		switch {
		case errors.Is(err, apperr.ErrAlreadyExists):
			s.logger.Info("README already exists, keeping it", slog.String("path", filepath.Join(d.Dir, ReadmeName)))
		case err != nil:
			return fmt.Errorf("create %s: %w", ReadmeName, err)
		default:
			d.ReadmeCreated = true
		}
	}

	s.logger.Info("draft ready",
		slog.String("dir", d.Dir),
		slog.Bool("readme_created", d.ReadmeCreated))
	return nil
}

// Scaffold plans and creates the draft for name. When announce is non-nil it
// receives the planned draft before anything is written; an announce error
// aborts the run.
func (s *Scaffolder) Scaffold(ctx context.Context, name string, announce func(*models.Draft) error) (*models.Draft, error) {
	d, err := s.Plan(name)
	if err != nil {
		return nil, err
	}
	if announce != nil {
		if err := announce(d); err != nil {
			return nil, err
		}
	}
	if err := s.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
