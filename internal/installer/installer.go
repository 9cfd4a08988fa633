package installer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"kitinstall/internal/conflict"
	"kitinstall/internal/fetch"
	"kitinstall/internal/logger"
	"kitinstall/internal/manifest"
	"kitinstall/internal/model"
	"kitinstall/internal/util"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrCancelled    = errors.New("installation cancelled")
	ErrCriticalFile = errors.New("critical file could not be installed")
)

type Confirmer interface {
	Confirm(question string) (bool, error)
}

type Recorder interface {
	Save(runID string, result model.InstallResult) error
}

type Options struct {
	BaseURL   string
	TargetDir string
	Timeout   time.Duration
	AssumeYes bool
}

type Installer struct {
	fs        afero.Fs
	fetcher   fetch.Fetcher
	resolver  *conflict.Resolver
	confirmer Confirmer
	recorder  Recorder
	opts      Options
}

func New(fs afero.Fs, fetcher fetch.Fetcher, resolver *conflict.Resolver, confirmer Confirmer, opts Options) *Installer {
	return &Installer{
		fs:        fs,
		fetcher:   fetcher,
		resolver:  resolver,
		confirmer: confirmer,
		opts:      opts,
	}
}

// WithRecorder makes Run hand every per-file result to r.
func (i *Installer) WithRecorder(r Recorder) *Installer {
	i.recorder = r
	return i
}

// Run installs every manifest entry in order. A failure in a critical group
// stops the run and returns an error wrapping ErrCriticalFile; failures in
// other groups are recorded and the loop moves on. A done ctx stops the run
// before the next entry with an error wrapping ctx.Err().
func (i *Installer) Run(ctx context.Context, m *manifest.Manifest, session *conflict.Session) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := logger.Log.With(zap.String("run_id", report.RunID))

	if !i.opts.AssumeYes {
		question := fmt.Sprintf("Install %d files from %s into %s?",
			len(m.Entries()), i.opts.BaseURL, i.opts.TargetDir)

		ok, err := i.confirmer.Confirm(question)
		if err != nil {
			return report, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			return report, ErrCancelled
		}
	}

	for _, dir := range m.Directories {
		if err := i.fs.MkdirAll(i.target(dir), 0755); err != nil {
			return report, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	log.Info("installing",
		zap.String("base_url", i.opts.BaseURL),
		zap.String("target", i.opts.TargetDir),
		zap.String("client", i.fetcher.Name()),
		zap.Bool("force", session.Force))

	for _, group := range m.Groups {
		for _, entry := range group.Files {
			if err := ctx.Err(); err != nil {
				return report, fmt.Errorf("install interrupted before %s: %w", entry.Local, err)
			}

			result, err := i.install(ctx, group, entry, session)
			if err != nil {
				return report, err
			}

			report.Results = append(report.Results, result)
			i.record(log, report.RunID, result)

			switch result.Status {
			case model.OutcomeFailed:
				log.Error("install failed",
					zap.String("group", group.Name),
					zap.String("path", entry.Local),
					zap.String("url", result.URL),
					zap.Error(result.Err))

				if group.Critical {
					return report, fmt.Errorf("%w: %s: %v", ErrCriticalFile, entry.Local, result.Err)
				}
			case model.OutcomeSkipped:
				log.Info("skipped", zap.String("path", entry.Local))
			default:
				log.Info("installed",
					zap.String("path", entry.Local),
					zap.String("dst", result.Path))
			}
		}
	}

	return report, nil
}

// install handles a single entry. The returned error is reserved for
// problems that must stop the whole run; fetch and write failures land in
// the result instead.
func (i *Installer) install(ctx context.Context, group model.Group, entry model.FileEntry, session *conflict.Session) (model.InstallResult, error) {
	result := model.InstallResult{
		Group: group.Name,
		Entry: entry,
		URL:   entry.URL(i.opts.BaseURL),
		Path:  i.target(entry.Local),
	}

	exists, err := util.Exists(i.fs, result.Path)
	if err != nil {
		result.Status = model.OutcomeFailed
		result.Err = err
		return result, nil
	}

	if exists {
		decision, err := i.resolver.Resolve(session, entry.Local)
		if err != nil {
			return result, err
		}
		if decision == model.DecisionSkip {
			result.Status = model.OutcomeSkipped
			return result, nil
		}
	}

	if err := i.fs.MkdirAll(filepath.Dir(result.Path), 0755); err != nil {
		result.Status = model.OutcomeFailed
		result.Err = fmt.Errorf("failed to create parent dir: %w", err)
		return result, nil
	}

	fetchCtx := ctx
	if i.opts.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, i.opts.Timeout)
		defer cancel()
	}

	data, err := i.fetcher.Fetch(fetchCtx, result.URL)
	if err != nil {
		result.Status = model.OutcomeFailed
		result.Err = err
		return result, nil
	}

	if err := util.AtomicWrite(i.fs, result.Path, data); err != nil {
		result.Status = model.OutcomeFailed
		result.Err = err
		return result, nil
	}

	result.Status = model.OutcomeInstalled
	return result, nil
}

func (i *Installer) record(log *zap.Logger, runID string, result model.InstallResult) {
	if i.recorder == nil {
		return
	}

	if err := i.recorder.Save(runID, result); err != nil {
		log.Warn("failed to save history",
			zap.String("path", result.Entry.Local),
			zap.Error(err))
	}
}

func (i *Installer) target(rel string) string {
	return filepath.Join(i.opts.TargetDir, filepath.FromSlash(rel))
}
