// Package pipeline provides the high-level orchestration of eligibility
// evaluation and listing matching for one applicant request.
package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/docai"
	"github.com/jonathan/internship-matcher/internal/eligibility"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/matching"
	"github.com/jonathan/internship-matcher/internal/types"
)

// RunOptions holds the inputs and collaborators for one matching request.
type RunOptions struct {
	Profile types.StudentProfile

	// Claims already normalized by the caller (file-based runs). Merged with
	// any claims produced from Documents; pre-normalized claims win.
	Claims types.ClaimSet

	// Documents to push through the analyzer. Ignored when Analyzer is nil.
	Documents []docai.Document
	Analyzer  docai.Analyzer

	// Source supplies the candidate listing pool. When nil, an eligible
	// verdict is returned with no results.
	Source listings.Source

	Criteria *eligibility.Criteria
	Limit    int
	Logger   *zap.Logger
}

// RunResult is the outcome of one orchestrated request.
type RunResult struct {
	Verdict types.EligibilityVerdict `json:"verdict"`
	Results []types.MatchResult      `json:"results"`

	// ClaimErrors holds per-document analysis and normalization failures.
	// Affected claims are treated as absent; the request is not aborted.
	ClaimErrors []error `json:"-"`
}

// Run evaluates eligibility and, only for eligible applicants, ranks the
// candidate listing pool. The matcher is structurally unreachable for an
// ineligible verdict: that branch never calls it, so results are empty by
// construction rather than by filtering.
//
// The two external collaborators (document analysis and the listing source)
// are fetched concurrently; the core itself performs no I/O.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	criteria := opts.Criteria
	if criteria == nil {
		criteria = eligibility.DefaultCriteria()
	}

	if err := opts.Profile.Validate(); err != nil {
		return nil, &InvalidProfileError{Message: "profile failed validation", Cause: err}
	}

	var (
		claimSet    types.ClaimSet
		claimErrors []error
		pool        []types.InternshipListing
		poolErr     error
	)

	// Collaborator calls are the only suspension points; run them in
	// parallel and let the pure core consume their resolved outputs.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		claimSet, claimErrors = gatherClaims(gctx, opts)
		return nil
	})

	g.Go(func() error {
		if opts.Source == nil {
			return nil
		}
		pool, poolErr = opts.Source.FetchCandidates(gctx, opts.Profile)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, cerr := range claimErrors {
		log.Warn("document claim dropped", zap.Error(cerr))
	}

	reconciled := eligibility.Reconcile(opts.Profile, claimSet, criteria)
	verdict := eligibility.EvaluateReconciled(reconciled, criteria)

	if !verdict.Eligible {
		log.Info("applicant ineligible",
			zap.Int("violated_rules", len(verdict.ViolatedRules)))
		if poolErr != nil {
			// The pool was never needed; report and move on.
			log.Warn("listing fetch failed for ineligible applicant", zap.Error(poolErr))
		}
		return &RunResult{
			Verdict:     verdict,
			Results:     []types.MatchResult{},
			ClaimErrors: claimErrors,
		}, nil
	}

	if poolErr != nil {
		return nil, poolErr
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = criteria.MatchLimit
	}
	results := matching.Match(reconciled, pool, limit)

	log.Info("matching complete",
		zap.Int("pool_size", len(pool)),
		zap.Int("results", len(results)))

	return &RunResult{
		Verdict:     verdict,
		Results:     results,
		ClaimErrors: claimErrors,
	}, nil
}

// gatherClaims analyzes the supplied documents (when an analyzer is
// configured) and merges the normalized output with any caller-supplied
// claims. Caller-supplied claims take precedence per document kind.
func gatherClaims(ctx context.Context, opts RunOptions) (types.ClaimSet, []error) {
	merged := make(types.ClaimSet, len(opts.Claims))

	var errs []error
	if opts.Analyzer != nil && len(opts.Documents) > 0 {
		raws, analyzeErrs := docai.AnalyzeAll(ctx, opts.Analyzer, opts.Documents)
		errs = append(errs, analyzeErrs...)

		analyzed, normalizeErrs := claims.NormalizeAll(raws)
		errs = append(errs, normalizeErrs...)
		for kind, claim := range analyzed {
			merged[kind] = claim
		}
	}

	for kind, claim := range opts.Claims {
		merged[kind] = claim
	}
	return merged, errs
}
