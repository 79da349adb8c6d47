package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/jobpilot/internal/db"
	"github.com/jonathan/jobpilot/internal/tailoring"
	"github.com/jonathan/jobpilot/internal/types"
)

// scoreRequest is the request body for POST /v1/score
type scoreRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// handleScore scores free-form job text against the candidate profile.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.scorer.ScoreText(req.Text)
	s.jsonResponse(w, http.StatusOK, result)
}

// classifyRequest is the request body for POST /v1/classify
type classifyRequest struct {
	Location    string `json:"location"`
	Description string `json:"description" validate:"required,min=1"`
}

// classifyResponse bundles visa and location classification.
type classifyResponse struct {
	Visa     types.VisaInfo     `json:"visa"`
	Location types.LocationInfo `json:"location"`
}

// handleClassify runs visa detection and location parsing over a posting.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := classifyResponse{
		Visa:     s.visa.Detect(req.Description),
		Location: s.parser.Parse(req.Location, req.Description),
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// tailorRequest is the request body for POST /v1/tailor
type tailorRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	URL         string `json:"url" validate:"omitempty,url"`
}

// tailorResponse carries the generated bundle plus any verification
// failures. The bundle marks failed assets as unverified.
type tailorResponse struct {
	Bundle       *types.AssetBundle `json:"bundle"`
	FailedAssets []types.AssetType  `json:"failed_assets,omitempty"`
}

// handleTailor generates application assets for a job posting.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req tailorRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job := &types.Job{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		URL:         req.URL,
	}

	// Score first so asset generation sees the extracted skills
	result := s.scorer.ScoreText(req.Description)
	job.Score = result.Score
	job.Skills = result.ExtractedSkills
	job.MatchReasons = result.MatchReasons

	bundle, err := s.generator.BuildAssets(job)
	if err != nil {
		var unverified *tailoring.UnverifiedContentError
		if errors.As(err, &unverified) {
			// Partial success: some assets failed truth verification
			s.jsonResponse(w, http.StatusUnprocessableEntity, tailorResponse{
				Bundle:       bundle,
				FailedAssets: unverified.Failed,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, tailorResponse{Bundle: bundle})
}

// handleListJobs returns stored jobs filtered by status and minimum score.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	status := r.URL.Query().Get("status")
	minScore := 0
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "min_score must be an integer")
			return
		}
		minScore = parsed
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	jobs, err := s.db.ListJobs(r.Context(), status, minScore, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// handleGetJob returns a single stored job by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrJobNotFound) {
			s.errorResponse(w, http.StatusNotFound, "job not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}
