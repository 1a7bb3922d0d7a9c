package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/domain/types"
	"github.com/forge-lab/daedalus/pkg/usecase"
	"github.com/forge-lab/daedalus/pkg/utils/errutil"
	"github.com/forge-lab/daedalus/pkg/utils/safe"
)

// executeHandler runs the generation pipeline for one prompt
func (s *Server) executeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode execute request"),
			"invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.uc.Studio.Execute(ctx, &usecase.ExecuteInput{
		Prompt:       req.Prompt,
		AgentIDs:     req.AgentIDs,
		ProjectID:    req.ProjectID,
		CurrentPhase: types.Phase(req.CurrentPhase),
	})
	if err != nil {
		writeExecuteError(ctx, w, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toExecuteResponse(result))
}

// writeExecuteError maps pipeline errors to response classes. Anything not
// recognized becomes an opaque 500: internals never reach the client.
func writeExecuteError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		errutil.HandleHTTP(ctx, w, err, "invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPromptRejected):
		errutil.HandleHTTP(ctx, w, err, "prompt violates content policy", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAgentNotFound):
		errutil.HandleHTTP(ctx, w, err, "agent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		errutil.HandleHTTP(ctx, w, err, "project not found", http.StatusNotFound)
	default:
		errutil.HandleHTTP(ctx, w, err, "processing failed", http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"),
			"processing failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}
