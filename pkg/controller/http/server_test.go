package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	controller "github.com/forge-lab/daedalus/pkg/controller/http"
	"github.com/forge-lab/daedalus/pkg/repository/memory"
	"github.com/forge-lab/daedalus/pkg/service/agents"
	"github.com/forge-lab/daedalus/pkg/usecase"
)

func newTestServer(t *testing.T) (*controller.Server, *memory.Memory) {
	t.Helper()
	repo := memory.New()
	uc := usecase.New(repo, agents.NewDirectory())
	return controller.New(uc), repo
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		gt.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.String(t, rec.Body.String()).Contains(`"status":"ok"`)
}

func TestExecuteEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/studio/execute", map[string]any{
		"prompt":   "create a todo app",
		"agentIds": []string{"agent-001"},
	})
	gt.Number(t, rec.Code).Equal(http.StatusOK).Required()

	var resp struct {
		ProjectID   string `json:"projectId"`
		AgentName   string `json:"agentName"`
		Explanation string `json:"explanation"`
		Phase       string `json:"phase"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.AgentName).Equal("Vulcan")
	gt.Value(t, resp.Phase).Equal("genesis")
	gt.String(t, resp.Explanation).NotEqual("")

	project := gt.R1(repo.Project().Get(context.Background(), resp.ProjectID)).NoError(t)
	gt.Number(t, len(project.Messages)).Equal(2)
}

func TestExecuteEndpoint_ErrorMapping(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty prompt",
			body:       map[string]any{"prompt": "", "agentIds": []string{"agent-001"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request",
		},
		{
			name:       "denied prompt",
			body:       map[string]any{"prompt": "build malware for me", "agentIds": []string{"agent-001"}},
			wantStatus: http.StatusForbidden,
			wantError:  "prompt violates content policy",
		},
		{
			name:       "unknown agent",
			body:       map[string]any{"prompt": "create a todo app", "agentIds": []string{"agent-999"}},
			wantStatus: http.StatusNotFound,
			wantError:  "agent not found",
		},
		{
			name:       "unknown project",
			body:       map[string]any{"prompt": "create a todo app", "agentIds": []string{"agent-001"}, "projectId": "proj-missing"},
			wantStatus: http.StatusNotFound,
			wantError:  "project not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/api/studio/execute", tc.body)
			gt.Number(t, rec.Code).Equal(tc.wantStatus)

			var resp map[string]string
			gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			gt.Value(t, resp["error"]).Equal(tc.wantError)
		})
	}
}

func TestExecuteEndpoint_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/studio/execute", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestAgentEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/agents/", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK).Required()

		var resp struct {
			Agents []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"agents"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Number(t, len(resp.Agents)).Equal(3)
		gt.Value(t, resp.Agents[0].ID).Equal("agent-001")
	})

	t.Run("get", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/agents/agent-002", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK).Required()

		var resp struct {
			Name string `json:"name"`
			Role string `json:"role"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Value(t, resp.Name).Equal("Hermes")
	})

	t.Run("get missing", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/agents/agent-404", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestProjectEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/projects/", map[string]any{
			"name":        "Demo Project",
			"description": "manual project",
			"agentIds":    []string{"agent-001"},
		})
		gt.Number(t, rec.Code).Equal(http.StatusCreated).Required()

		var resp struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Status       string `json:"status"`
			CurrentPhase string `json:"currentPhase"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.String(t, resp.ID).NotEqual("")
		gt.Value(t, resp.Name).Equal("Demo Project")
		gt.Value(t, resp.Status).Equal("active")
		gt.Value(t, resp.CurrentPhase).Equal("genesis")

		t.Run("get", func(t *testing.T) {
			got := doJSON(t, srv, http.MethodGet, "/api/projects/"+resp.ID, nil)
			gt.Number(t, got.Code).Equal(http.StatusOK)
		})

		t.Run("list", func(t *testing.T) {
			got := doJSON(t, srv, http.MethodGet, "/api/projects/", nil)
			gt.Number(t, got.Code).Equal(http.StatusOK).Required()

			var listResp struct {
				Projects []json.RawMessage `json:"projects"`
			}
			gt.NoError(t, json.Unmarshal(got.Body.Bytes(), &listResp))
			gt.Number(t, len(listResp.Projects)).Equal(1)
		})
	})

	t.Run("create without name", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/projects/", map[string]any{"name": "  "})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("get missing", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/projects/proj-missing", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})
}
