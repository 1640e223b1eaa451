package app

import (
	"context"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CheckStatus is the outcome of checking one plugin installation.
type CheckStatus string

const (
	// CheckOK means the plugin is installed and satisfies its declared constraint.
	CheckOK CheckStatus = "ok"
	// CheckMissing means the plugin is not installed.
	CheckMissing CheckStatus = "missing"
	// CheckMismatch means the installed version does not satisfy the declared constraint.
	CheckMismatch CheckStatus = "mismatch"
	// CheckUnchecked means the declaration is not a semver constraint (a URL, a tag).
	CheckUnchecked CheckStatus = "unchecked"
)

// CheckResult describes one bound plugin.
type CheckResult struct {
	Path      string
	RawName   string
	Declared  string
	Installed string
	Status    CheckStatus
	Err       error
}

// Failed reports whether the result fails the check.
func (r CheckResult) Failed() bool {
	return r.Status == CheckMissing || r.Status == CheckMismatch
}

// CheckReport is the outcome of Check.
type CheckReport struct {
	Results     []CheckResult
	Fingerprint string
}

// Failures returns the failing results in bind order.
func (r *CheckReport) Failures() []CheckResult {
	var out []CheckResult
	for _, res := range r.Results {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// Check loads opts, resolves every plugin against the installed packages and
// compares installed versions with the declared constraints. It returns the
// report together with domain.ErrCheckFailed when any plugin fails.
func (a *App) Check(ctx context.Context, opts domain.Options) (*CheckReport, error) {
	opts.Lazy = domain.Bool(true)
	opts.RequireFn = nil

	s, err := a.open(ctx, opts, a.inspectorResolver)
	if err != nil {
		return nil, err
	}

	bindings := s.Plugins.Bindings()
	report := &CheckReport{
		Results:     make([]CheckResult, len(bindings)),
		Fingerprint: s.Plugins.Fingerprint(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, b := range bindings {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Results[i] = a.checkBinding(gctx, s, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failures := report.Failures(); len(failures) > 0 {
		return report, zerr.With(zerr.Wrap(domain.ErrCheckFailed, "some plugins are not installed correctly"), "failed", len(failures))
	}
	return report, nil
}

func (a *App) inspectorResolver(cfg *domain.Config, m *domain.Manifest) domain.ResolveFunc {
	dir := (&Session{Config: *cfg, Manifest: m}).Dir()
	return func(name string) (any, error) {
		return a.inspector.Inspect(dir, name)
	}
}

func (a *App) checkBinding(ctx context.Context, s *Session, b *domain.Binding) CheckResult {
	res := CheckResult{
		Path:     b.Path.String(),
		RawName:  b.RawName,
		Declared: s.Version(b.RawName),
	}

	_, vertex := a.telemetry.Record(ctx, "resolve "+b.RawName)
	defer func() { vertex.Complete(res.Err) }()

	value, err := b.Get()
	if err != nil {
		res.Status = CheckMissing
		res.Err = err
		return res
	}
	info, ok := value.(*domain.ModuleInfo)
	if !ok {
		res.Status = CheckUnchecked
		return res
	}
	res.Installed = info.Version

	res.Status, res.Err = satisfies(res.Declared, res.Installed)
	if res.Err != nil {
		vertex.Log(domain.LogLevelWarn, res.Err.Error())
	}
	return res
}

// satisfies compares an installed version with a declared constraint.
func satisfies(declared, installed string) (CheckStatus, error) {
	constraint, err := semver.NewConstraint(declared)
	if err != nil {
		return CheckUnchecked, zerr.With(zerr.Wrap(domain.ErrInvalidConstraint, err.Error()), "declared", declared)
	}

	version, err := semver.NewVersion(installed)
	if err != nil {
		return CheckMismatch, zerr.With(
			zerr.Wrap(domain.ErrVersionMismatch, "installed version is not a semantic version"),
			"installed", installed,
		)
	}

	if !constraint.Check(version) {
		err := zerr.With(zerr.Wrap(domain.ErrVersionMismatch, installed+" does not satisfy "+declared), "declared", declared)
		return CheckMismatch, zerr.With(err, "installed", installed)
	}
	return CheckOK, nil
}
