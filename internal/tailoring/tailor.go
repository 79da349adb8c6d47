package tailoring

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/jonathan/jobpilot/internal/factbank"
	"github.com/jonathan/jobpilot/internal/types"
	"github.com/jonathan/jobpilot/internal/verification"
)

// tailoringVersion is recorded in every metadata snapshot.
const tailoringVersion = "1.0"

// Generator assembles tailored application assets for a scored job.
// Stateless after construction; safe for concurrent use.
type Generator struct {
	bank     *factbank.Bank
	verifier *verification.Verifier
}

// NewGenerator creates a Generator bound to an achievement bank and a
// verifier built from the same bank.
func NewGenerator(bank *factbank.Bank, verifier *verification.Verifier) *Generator {
	return &Generator{bank: bank, verifier: verifier}
}

// BuildAssets produces the five application artifacts for a job: long-form
// resume, ATS-plain resume, cover email, short outreach message, and a
// metadata snapshot.
//
// Skill highlights are restricted to the intersection of the job's skills
// and the bank's verified skill set; job-mentioned skills absent from the
// bank never appear in generated text. Every text asset is passed through
// the truth verifier. When any asset fails, the bundle is returned with
// Verified=false and per-asset failure flags together with an
// *UnverifiedContentError; unverified content is never claimed as verified.
func (g *Generator) BuildAssets(job *types.Job) (*types.AssetBundle, error) {
	if job == nil {
		return nil, &GenerationError{Message: "job is nil"}
	}

	verifiedSkills := g.bank.VerifiedSkillsForJob(job.Skills)
	bullets := truthfulBullets(g.bank.Achievements(), verifiedSkills)

	assets := map[types.AssetType]string{
		types.AssetResume:      renderResume(job, verifiedSkills, bullets),
		types.AssetResumeATS:   renderResumeATS(job, verifiedSkills, bullets),
		types.AssetCoverEmail:  renderCoverEmail(job, verifiedSkills),
		types.AssetOutreachMsg: renderOutreach(job),
	}

	verifiedNames := make([]string, len(verifiedSkills))
	for i, skill := range verifiedSkills {
		verifiedNames[i] = skill.Name
	}

	metadata := types.TailoringMetadata{
		Job: *job,
		Skills: types.TailoringSkills{
			Extracted:    job.Skills,
			Verified:     verifiedNames,
			MatchReasons: job.MatchReasons,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   tailoringVersion,
		Assets: []types.AssetType{
			types.AssetResume, types.AssetResumeATS, types.AssetCoverEmail,
			types.AssetOutreachMsg, types.AssetMetadata,
		},
		Verification: make(map[types.AssetType]types.AssetVerification),
	}

	// Verify every text asset in a fixed order so failure reporting is
	// deterministic.
	order := []types.AssetType{
		types.AssetResume, types.AssetResumeATS,
		types.AssetCoverEmail, types.AssetOutreachMsg,
	}
	failed := make([]types.AssetType, 0)

	for _, assetType := range order {
		result, err := g.verifier.Verify(assets[assetType], string(assetType))
		record := types.AssetVerification{Verified: result.Verified}
		if err != nil {
			var verr *verification.VerificationError
			if !errors.As(err, &verr) {
				return nil, &GenerationError{Message: "verification failed to run", Cause: err}
			}
			record.Error = verr.Error()
			record.Issues = result.Issues
			failed = append(failed, assetType)
		}
		metadata.Verification[assetType] = record
	}

	metaJSON, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, &GenerationError{Message: "failed to marshal metadata", Cause: err}
	}
	assets[types.AssetMetadata] = string(metaJSON)

	bundle := &types.AssetBundle{
		Assets:   assets,
		Metadata: metadata,
		Verified: len(failed) == 0,
	}

	if len(failed) > 0 {
		return bundle, &UnverifiedContentError{Failed: failed}
	}

	return bundle, nil
}
