package assets

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
	"github.com/yawik/modsync/pkg/errors"
	"github.com/yawik/modsync/pkg/filesystem"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/types"
)

// logContext tags console entries written by the publisher
const logContext = "assets"

// Options contains configuration for the publisher
type Options struct {
	// AssetsRoot is the directory holding one entry per module
	AssetsRoot string
	// Exclude lists glob patterns of entries left out of copies. A pattern
	// matches either an entry's base name or its slash-separated path
	// relative to the module's asset directory.
	Exclude []string
	Console *logging.Console
	Logger  zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Publisher installs and removes published module assets
type Publisher struct {
	fs         types.FS
	assetsRoot string
	excludes   []glob.Glob
	console    *logging.Console
	logger     zerolog.Logger
}

// New creates a publisher. It fails when an exclude pattern does not compile.
func New(opts Options) (*Publisher, error) {
	if opts.AssetsRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "assets root is required")
	}

	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("assets")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	excludes := make([]glob.Glob, 0, len(opts.Exclude))
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid exclude pattern %q", pattern)
		}
		excludes = append(excludes, g)
	}

	return &Publisher{
		fs:         fs,
		assetsRoot: filepath.Clean(opts.AssetsRoot),
		excludes:   excludes,
		console:    opts.Console,
		logger:     logger,
	}, nil
}

// AssetsRoot returns the directory modules are published under
func (p *Publisher) AssetsRoot() string {
	return p.assetsRoot
}

// Target returns where the assets of the named module are published
func (p *Publisher) Target(name string) string {
	return filepath.Join(p.assetsRoot, name)
}

// Install publishes every module of the map, in map order, preferring the
// given method. It never stops early: each module yields exactly one
// result.
func (p *Publisher) Install(modules *types.ModuleAssetMap, preferred types.PublishMethod) *Report {
	if preferred == "" {
		preferred = types.MethodRelativeSymlink
	}

	report := &Report{Results: make([]types.PublishResult, 0, modules.Len())}
	modules.Each(func(name, origin string) {
		report.add(p.publish(name, origin, preferred))
	})

	p.logger.Info().
		Int("modules", len(report.Results)).
		Int("exit_code", report.ExitCode).
		Bool("copy_used", report.CopyUsed).
		Msg("Assets installed")

	return report
}

func (p *Publisher) publish(name, origin string, preferred types.PublishMethod) types.PublishResult {
	result := types.PublishResult{Name: name}
	target, err := p.target(name)
	if err != nil {
		result.Outcome = types.OutcomeError
		result.Err = err
		p.console.Errorf(logContext, "%v", err)
		return result
	}
	result.Target = target

	p.logger.Debug().
		Str("module", name).
		Str("origin", origin).
		Str("target", target).
		Str("method", preferred.String()).
		Msg("Publishing module assets")

	// RemoveAll never follows a symlink at target and succeeds on a missing
	// path, so it covers every kind of stale entry.
	if err := p.fs.RemoveAll(target); err != nil {
		result.Outcome = types.OutcomeError
		result.Err = errors.Wrapf(err, errors.ErrRemoval, "could not remove existing %s", target).
			WithDetail("module", name)
		p.console.Errorf(logContext, "%s: %v", name, result.Err)
		return result
	}

	method, err := p.realize(name, origin, target, preferred)
	if err != nil {
		result.Outcome = types.OutcomeError
		result.Err = err
		p.console.Errorf(logContext, "%s: %v", name, err)
		return result
	}

	result.Method = method
	result.Outcome = types.OutcomeOk
	if method != preferred {
		result.Outcome = types.OutcomeWarning
	}
	p.console.Debugf(logContext, "%s published via %s", name, method)
	return result
}
