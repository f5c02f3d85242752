package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/workdeck/workdeck/internal/seed"
	"github.com/workdeck/workdeck/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("workdeck"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(seed.Workspace(time.Now(), string(hash)), zap.NewNop())
	logger := zap.NewNop()

	authHandler := NewAuthHandler(st, testSecret, logger)
	clientHandler := NewClientHandler(st, logger)
	taskHandler := NewTaskHandler(st, logger)
	noteHandler := NewNoteHandler(st, logger)
	workspaceHandler := NewWorkspaceHandler(st, logger)

	r := gin.New()
	r.POST("/v1/auth/signin", authHandler.SignIn)
	r.GET("/v1/clients", clientHandler.List)
	r.POST("/v1/clients", clientHandler.Create)
	r.DELETE("/v1/clients/:id", clientHandler.Delete)
	r.GET("/v1/tasks", taskHandler.List)
	r.POST("/v1/notes", noteHandler.Create)
	r.GET("/v1/workspace", workspaceHandler.Get)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not the envelope: %v\nbody: %s", err, w.Body.String())
	}
	return w, resp
}

// Clients decode the envelope's status field as a number matching the HTTP
// status code, on success and failure alike.
func TestEnvelopeStatusIsNumeric(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name string
		path string
		want int
	}{
		{"success", "/v1/workspace", http.StatusOK},
		{"failure", "/v1/clients/ghost", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			method := http.MethodGet
			if tc.want == http.StatusNotFound {
				method = http.MethodDelete
			}
			req := httptest.NewRequest(method, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			var body map[string]json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			var status int
			if err := json.Unmarshal(body["status"], &status); err != nil {
				t.Fatalf("status is not numeric: %s", body["status"])
			}
			if status != tc.want || w.Code != tc.want {
				t.Errorf("status=%d code=%d, want %d", status, w.Code, tc.want)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/v1/auth/signin",
			gin.H{"email": "alex.johnson@company.com", "password": "workdeck"})
		if w.Code != http.StatusOK || resp.Status != http.StatusOK {
			t.Fatalf("code=%d status=%d error=%+v", w.Code, resp.Status, resp.Error)
		}
		data := resp.Data.(map[string]any)
		if data["token"] == "" {
			t.Error("no token issued")
		}
		member := data["member"].(map[string]any)
		if member["email"] != "alex.johnson@company.com" {
			t.Errorf("member = %v", member)
		}
		if _, leaked := member["passwordHash"]; leaked {
			t.Error("password hash leaked in response")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/v1/auth/signin",
			gin.H{"email": "alex.johnson@company.com", "password": "nope"})
		if w.Code != http.StatusUnauthorized || resp.Error == nil || resp.Error.Code != CodeUnauthorized {
			t.Fatalf("code=%d resp=%+v", w.Code, resp)
		}
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, unknown := doJSON(t, r, http.MethodPost, "/v1/auth/signin",
			gin.H{"email": "nobody@company.com", "password": "workdeck"})
		_, wrong := doJSON(t, r, http.MethodPost, "/v1/auth/signin",
			gin.H{"email": "alex.johnson@company.com", "password": "nope"})
		if unknown.Error.Message != wrong.Error.Message {
			t.Error("error messages differ between unknown email and wrong password")
		}
	})
}

func TestClientEndpoints(t *testing.T) {
	r, st := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/v1/clients?page=1&pageSize=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list code = %d", w.Code)
	}
	page := resp.Data.(map[string]any)
	if page["total"].(float64) != 2 || page["totalPages"].(float64) != 2 {
		t.Errorf("pagination = %v", page)
	}
	if records, slice := page["data"].([]any); !slice || len(records) != 1 {
		t.Errorf("page data = %v, want one record under data", page["data"])
	}

	w, resp = doJSON(t, r, http.MethodPost, "/v1/clients",
		gin.H{"name": "Initech", "status": "active"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create code = %d, error = %+v", w.Code, resp.Error)
	}
	created := resp.Data.(map[string]any)
	id := created["id"].(string)
	if _, found := st.Snapshot().FindClient(id); !found {
		t.Error("created client missing from store")
	}

	w, _ = doJSON(t, r, http.MethodPost, "/v1/clients", gin.H{"status": "active"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name should be a 400, got %d", w.Code)
	}

	w, resp = doJSON(t, r, http.MethodDelete, "/v1/clients/ghost", nil)
	if w.Code != http.StatusNotFound || resp.Error.Code != CodeNotFound {
		t.Errorf("deleting a missing client: code=%d error=%+v", w.Code, resp.Error)
	}
}

func TestTaskListFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/v1/tasks?search=security", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	tasks := resp.Data.([]any)
	if len(tasks) != 1 {
		t.Fatalf("search returned %d tasks, want 1", len(tasks))
	}

	w, resp = doJSON(t, r, http.MethodGet, "/v1/tasks?groupBy=status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("groupBy code = %d", w.Code)
	}
	if _, isMap := resp.Data.(map[string]any); !isMap {
		t.Error("groupBy should return a grouped map")
	}

	w, _ = doJSON(t, r, http.MethodGet, "/v1/tasks?groupBy=color", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown groupBy should be a 400, got %d", w.Code)
	}
}

func TestNoteCreateIsStubbed(t *testing.T) {
	r, _ := newTestRouter(t)
	w, resp := doJSON(t, r, http.MethodPost, "/v1/notes", gin.H{"content": "hi"})
	if w.Code != http.StatusNotImplemented || resp.Error.Code != CodeNotImplemented {
		t.Errorf("code=%d error=%+v", w.Code, resp.Error)
	}
}

func TestWorkspaceSummary(t *testing.T) {
	r, _ := newTestRouter(t)
	w, resp := doJSON(t, r, http.MethodGet, "/v1/workspace", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	data := resp.Data.(map[string]any)
	if data["selectedView"] != "timeline" {
		t.Errorf("selectedView = %v", data["selectedView"])
	}
	if data["clientCount"].(float64) != 2 || data["projectCount"].(float64) != 3 {
		t.Errorf("counts = %v / %v", data["clientCount"], data["projectCount"])
	}
}
