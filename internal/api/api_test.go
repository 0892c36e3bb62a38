package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathstudio/internal/engine"
	"github.com/abhisek/mathstudio/internal/metrics"
	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/problemgen"
	"github.com/abhisek/mathstudio/internal/store"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router  *gin.Engine
	store   *store.Store
	pool    *engine.Pool
	reloads int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ts := &testServer{store: st, pool: engine.NewPool(nil)}
	srv := New(Options{
		Engine:    engine.New(problemgen.NewLockedRand(problemgen.NewRand(3))),
		Extension: &engine.Extension{Source: ts.pool, Ratio: 1},
		Problems:  st.ProblemRepo(),
		Events:    st.EventRepo(),
		Metrics:   metrics.New(),
		OnProblemsChanged: func(ctx context.Context) error {
			ts.reloads++
			ps, err := st.ProblemRepo().ApprovedProblems(ctx, "", nil)
			if err != nil {
				return err
			}
			ts.pool.Reset(ps)
			return nil
		},
	})
	ts.router = srv.Router()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func sampleSubmission() store.NewProblemInput {
	return store.NewProblemInput{
		Genre:     "sector",
		Tier:      "normal",
		Text:      "半径 6 cm、中心角 60° のおうぎ形の弧の長さを求めなさい。",
		Answer:    "2π",
		Variants:  []string{"2πcm"},
		Hints:     []string{"弧の長さ = 2πr × 中心角/360"},
		CreatedBy: "sato",
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	code, env := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, http.StatusOK, env.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestGetProblem(t *testing.T) {
	ts := newTestServer(t)

	code, env := ts.do(t, http.MethodGet, "/api/v1/problem?genre=equation&tier=easy", nil)
	require.Equal(t, http.StatusOK, code)
	var p problem.Problem
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, problem.GenreLinearEquation, p.Genre)
	assert.Equal(t, problem.TierEasy, p.Tier)
	assert.NotEmpty(t, p.Answer)
	assert.NotEmpty(t, p.Hints)

	tests := []struct {
		name  string
		query string
	}{
		{"unknown genre", "genre=calculus&tier=easy"},
		{"missing genre", "tier=easy"},
		{"unknown tier", "genre=sector&tier=legendary"},
		{"missing tier", "genre=sector"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := ts.do(t, http.MethodGet, "/api/v1/problem?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, http.StatusBadRequest, env.Code)
			assert.Contains(t, env.Message, "invalid")
		})
	}
}

func TestBuildChallenge(t *testing.T) {
	ts := newTestServer(t)

	code, env := ts.do(t, http.MethodPost, "/api/v1/challenge", gin.H{"count": 20, "genre": "proportional"})
	require.Equal(t, http.StatusOK, code)
	var set []problem.Problem
	require.NoError(t, json.Unmarshal(env.Data, &set))
	require.Len(t, set, 20)
	assert.Equal(t, problem.TierEasy, set[0].Tier)
	assert.Equal(t, problem.TierExpert, set[19].Tier)

	for _, body := range []gin.H{
		{"count": 0, "genre": "proportional"},
		{"count": 51, "genre": "proportional"},
		{"count": 5},
		{"count": 5, "genre": "history"},
	} {
		code, _ := ts.do(t, http.MethodPost, "/api/v1/challenge", body)
		assert.Equal(t, http.StatusBadRequest, code, "%v", body)
	}
}

func TestCheck(t *testing.T) {
	ts := newTestServer(t)
	p := problem.Problem{
		ID: "x", Genre: problem.GenreLinearEquation, Tier: problem.TierEasy,
		Text: "3x = 21", Answer: "x=7", Variants: []string{"7"}, Hints: []string{"÷3"},
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"x = 7", true},
		{" 7 ", true},
		{"X=7", true},
		{"8", false},
		{"", false},
	}
	for _, tt := range tests {
		code, env := ts.do(t, http.MethodPost, "/api/v1/check", gin.H{"problem": p, "answer": tt.answer})
		require.Equal(t, http.StatusOK, code)
		var res checkResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, tt.want, res.Correct, "answer %q", tt.answer)
	}

	code, _ := ts.do(t, http.MethodPost, "/api/v1/check", gin.H{"problem": gin.H{"text": "?"}, "answer": "1"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHint(t *testing.T) {
	ts := newTestServer(t)
	p := problem.Problem{Genre: problem.GenreSector, Tier: problem.TierEasy, Text: "t", Answer: "1", Hints: []string{"a", "b"}}

	tests := []struct {
		index     any
		wantIndex int
		wantHint  string
	}{
		{nil, 0, "a"},
		{-1, 0, "a"},
		{0, 1, "b"},
		{1, 1, "b"},
		{7, 1, "b"},
	}
	for _, tt := range tests {
		body := gin.H{"problem": p}
		if tt.index != nil {
			body["index"] = tt.index
		}
		code, env := ts.do(t, http.MethodPost, "/api/v1/hint", body)
		require.Equal(t, http.StatusOK, code)
		var res hintResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, tt.wantIndex, res.Index)
		assert.Equal(t, tt.wantHint, res.Hint)
	}

	noHints := problem.Problem{Genre: problem.GenreSector, Text: "t", Answer: "1"}
	_, env := ts.do(t, http.MethodPost, "/api/v1/hint", gin.H{"problem": noHints})
	var res hintResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, -1, res.Index)
	assert.Empty(t, res.Hint)
}

func TestProblemAuthoring(t *testing.T) {
	ts := newTestServer(t)

	bad := sampleSubmission()
	bad.Hints = nil
	code, env := ts.do(t, http.MethodPost, "/api/v1/problems", bad)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "Hints")

	code, env = ts.do(t, http.MethodPost, "/api/v1/problems", sampleSubmission())
	require.Equal(t, http.StatusCreated, code)
	var rec store.ProblemRecord
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.True(t, strings.HasPrefix(rec.ID, store.ExtensionIDPrefix))
	assert.False(t, rec.Approved)

	code, env = ts.do(t, http.MethodGet, "/api/v1/problems?approved=false&created_by=sato", nil)
	require.Equal(t, http.StatusOK, code)
	var recs []store.ProblemRecord
	require.NoError(t, json.Unmarshal(env.Data, &recs))
	require.Len(t, recs, 1)

	code, env = ts.do(t, http.MethodGet, "/api/v1/problems?approved=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, _ = ts.do(t, http.MethodPost, "/api/v1/problems", sampleSubmission())
	require.Equal(t, http.StatusCreated, code)
	_, env = ts.do(t, http.MethodGet, "/api/v1/problems", nil)
	var all []store.ProblemRecord
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 2)
	code, env = ts.do(t, http.MethodGet, "/api/v1/problems?offset=1", nil)
	require.Equal(t, http.StatusOK, code)
	var rest []store.ProblemRecord
	require.NoError(t, json.Unmarshal(env.Data, &rest))
	require.Len(t, rest, 1)
	assert.Equal(t, all[1].ID, rest[0].ID)

	code, _ = ts.do(t, http.MethodGet, "/api/v1/problems?approved=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = ts.do(t, http.MethodGet, "/api/v1/problems?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Unapproved problems are never served.
	_, env = ts.do(t, http.MethodGet, "/api/v1/problem?genre=sector&tier=normal", nil)
	var served problem.Problem
	require.NoError(t, json.Unmarshal(env.Data, &served))
	assert.NotEqual(t, rec.ID, served.ID)

	code, env = ts.do(t, http.MethodPost, "/api/v1/problems/"+rec.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.True(t, rec.Approved)
	assert.NotNil(t, rec.ApprovedAt)
	assert.Equal(t, 1, ts.reloads)

	// With ratio 1 the approved problem is always served for its genre and tier.
	_, env = ts.do(t, http.MethodGet, "/api/v1/problem?genre=sector&tier=normal", nil)
	require.NoError(t, json.Unmarshal(env.Data, &served))
	assert.Equal(t, rec.ID, served.ID)
	assert.Equal(t, problem.SourceExtension, served.Source)

	code, _ = ts.do(t, http.MethodGet, "/api/v1/problems/"+rec.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = ts.do(t, http.MethodDelete, "/api/v1/problems/"+rec.ID, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, ts.reloads)
	assert.Zero(t, ts.pool.Len())

	code, env = ts.do(t, http.MethodGet, "/api/v1/problems/"+rec.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, http.StatusNotFound, env.Code)
	code, _ = ts.do(t, http.MethodPost, "/api/v1/problems/db-missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = ts.do(t, http.MethodDelete, "/api/v1/problems/db-missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.store.EventRepo().AppendAttempt(context.Background(), store.AttemptData{
		SessionID: "s", ProblemID: "p", Genre: problem.GenreSector, Tier: problem.TierEasy,
		Source: problem.SourceGenerated, Answer: "1", Correct: true,
	}))

	code, env := ts.do(t, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, code)
	var st store.Stats
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, 1, st.Attempts)
	assert.Equal(t, 1, st.Correct)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/api/v1/problem?genre=linear&tier=hard", nil)

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mathstudio_problems_served_total{genre="linear",source="generated",tier="hard"} 1`)
}
