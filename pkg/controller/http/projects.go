package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/repository/firestore"
	"github.com/forge-lab/daedalus/pkg/repository/memory"
	"github.com/forge-lab/daedalus/pkg/utils/errutil"
)

func (s *Server) listProjectsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := s.uc.Repository().Project().List(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to list projects"),
			"processing failed", http.StatusInternalServerError)
		return
	}

	resp := make([]*projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"projects": resp})
}

func (s *Server) getProjectHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	project, err := s.uc.Repository().Project().Get(ctx, projectID)
	if err != nil {
		if isRepoNotFound(err) {
			errutil.HandleHTTP(ctx, w, err, "project not found", http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to get project",
			goerr.V("project_id", projectID)),
			"processing failed", http.StatusInternalServerError)
		return
	}
	respondJSON(w, r, http.StatusOK, toProjectResponse(project))
}

func (s *Server) createProjectHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode create project request"),
			"invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("project name is empty"),
			"name is required", http.StatusBadRequest)
		return
	}

	project, err := s.uc.Repository().Project().Create(ctx, &model.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		AgentIDs:    req.AgentIDs,
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to create project"),
			"processing failed", http.StatusInternalServerError)
		return
	}
	respondJSON(w, r, http.StatusCreated, toProjectResponse(project))
}

func isRepoNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)
}
