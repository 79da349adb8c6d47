// Package pipeline orchestrates the classify-score-tailor flow over
// batches of scraped jobs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobpilot/internal/location"
	"github.com/jonathan/jobpilot/internal/scoring"
	"github.com/jonathan/jobpilot/internal/tailoring"
	"github.com/jonathan/jobpilot/internal/types"
)

// DefaultConcurrency bounds how many jobs are processed at once.
const DefaultConcurrency = 4

// DefaultTailorThreshold is the minimum score for which tailored assets
// are generated.
const DefaultTailorThreshold = 60

// Store persists pipeline results. Optional; a nil store skips
// persistence.
type Store interface {
	SaveJob(ctx context.Context, job *types.Job) (uuid.UUID, error)
	UpdateJobScore(ctx context.Context, id uuid.UUID, result *types.ScoreResult) error
	UpdateJobClassification(ctx context.Context, id uuid.UUID, visa types.VisaInfo, loc types.LocationInfo) error
}

// Result is the full pipeline output for one job.
type Result struct {
	Job      types.Job
	Score    *types.ScoreResult
	Visa     types.VisaInfo
	Location types.LocationInfo

	// Bundle is set when the job scored at or above the tailoring
	// threshold. TailorErr carries a verification failure; the bundle is
	// still present with per-asset flags in that case.
	Bundle    *types.AssetBundle
	TailorErr error
}

// Pipeline wires the core components together. Construct once and reuse;
// all components are safe for concurrent use.
type Pipeline struct {
	scorer      *scoring.Scorer
	visa        *location.VisaDetector
	parser      *location.Parser
	generator   *tailoring.Generator
	store       Store
	artifactDir string
	concurrency int
	threshold   int
}

// Options configures pipeline construction.
type Options struct {
	Store           Store
	ArtifactDir     string
	Concurrency     int
	TailorThreshold int
}

// New creates a Pipeline from the core components.
func New(scorer *scoring.Scorer, visa *location.VisaDetector, parser *location.Parser, generator *tailoring.Generator, opts Options) *Pipeline {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	threshold := opts.TailorThreshold
	if threshold <= 0 {
		threshold = DefaultTailorThreshold
	}
	return &Pipeline{
		scorer:      scorer,
		visa:        visa,
		parser:      parser,
		generator:   generator,
		store:       opts.Store,
		artifactDir: opts.ArtifactDir,
		concurrency: concurrency,
		threshold:   threshold,
	}
}

// ProcessJobs runs every job through classification, scoring, and (for
// jobs at or above the tailoring threshold) asset generation, with bounded
// concurrency. Per-job verification failures are recorded on the result,
// not returned as errors; only infrastructure failures abort the batch.
func (p *Pipeline) ProcessJobs(ctx context.Context, jobs []types.Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.concurrency)

	var mu sync.Mutex
	for i := range jobs {
		group.Go(func() error {
			result, err := p.processOne(ctx, jobs[i])
			if err != nil {
				return err
			}
			mu.Lock()
			results[i] = *result
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Pipeline) processOne(ctx context.Context, job types.Job) (*Result, error) {
	fullText := job.FullText()

	result := &Result{
		Visa:     p.visa.Detect(fullText),
		Location: p.parser.Parse(job.Location, job.Description),
		Score:    p.scorer.ScoreText(fullText),
	}

	job.Score = result.Score.Score
	job.Skills = result.Score.ExtractedSkills
	job.MatchReasons = result.Score.MatchReasons
	job.VisaFriendly = result.Visa.VisaFriendly
	job.Country = result.Location.Country
	job.StateProvince = result.Location.StateProvince
	job.City = result.Location.City
	job.IsRemote = result.Location.IsRemote
	job.RemoteType = result.Location.RemoteType

	if p.store != nil {
		id, err := p.store.SaveJob(ctx, &job)
		if err != nil {
			return nil, err
		}
		job.ID = id
		if err := p.store.UpdateJobScore(ctx, id, result.Score); err != nil {
			return nil, err
		}
		if err := p.store.UpdateJobClassification(ctx, id, result.Visa, result.Location); err != nil {
			return nil, err
		}
		job.Status = "scored"
	}

	if result.Score.Score >= p.threshold {
		bundle, err := p.generator.BuildAssets(&job)
		var unverified *tailoring.UnverifiedContentError
		switch {
		case err == nil || errors.As(err, &unverified):
			result.Bundle = bundle
			result.TailorErr = err
		default:
			return nil, err
		}

		if bundle != nil && p.artifactDir != "" {
			if err := WriteAssets(p.artifactDir, &job, bundle); err != nil {
				return nil, err
			}
		}
	}

	result.Job = job
	return result, nil
}

// assetFilenames maps asset types to their on-disk names.
var assetFilenames = map[types.AssetType]string{
	types.AssetResume:      "resume.txt",
	types.AssetResumeATS:   "resume_ats.txt",
	types.AssetCoverEmail:  "cover_email.txt",
	types.AssetOutreachMsg: "outreach_msg.txt",
	types.AssetMetadata:    "meta.json",
}

// WriteAssets saves a bundle under artifactDir/<job id or slug>/.
func WriteAssets(artifactDir string, job *types.Job, bundle *types.AssetBundle) error {
	dirName := job.ID.String()
	if job.ID == uuid.Nil {
		dirName = slugify(job.Company + "-" + job.Title)
	}
	jobDir := filepath.Join(artifactDir, dirName)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact dir: %w", err)
	}

	for assetType, content := range bundle.Assets {
		name, ok := assetFilenames[assetType]
		if !ok {
			name = string(assetType) + ".txt"
		}
		if err := os.WriteFile(filepath.Join(jobDir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return nil
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ', r == '-', r == '_', r == '/':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "job"
	}
	return string(out)
}
