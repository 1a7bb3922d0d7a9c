package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/utils/errutil"
)

func (s *Server) listAgentsHandler(w http.ResponseWriter, r *http.Request) {
	list := s.uc.Directory().List()

	resp := make([]*agentResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAgentResponse(a))
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"agents": resp})
}

func (s *Server) getAgentHandler(w http.ResponseWriter, r *http.Request) {
	agentID := chi.URLParam(r, "agentID")

	agent := s.uc.Directory().Get(agentID)
	if agent == nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("agent not found", goerr.V("agent_id", agentID)),
			"agent not found", http.StatusNotFound)
		return
	}
	respondJSON(w, r, http.StatusOK, toAgentResponse(agent))
}
