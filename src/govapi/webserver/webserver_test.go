package webserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openlearn-dev/community-gov/src/govapi/config"
	"github.com/openlearn-dev/community-gov/src/govapi/governance"
	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(types.MigrateModels...))

	members := []types.Member{
		{ID: 1, Handle: "alice", Role: types.RoleMember, TotalExperience: 100},
		{ID: 2, Handle: "bob", Role: types.RoleMember, TotalExperience: 400},
		{ID: 3, Handle: "ivan", Role: types.RoleInstructor},
		{ID: 4, Handle: "ada", Role: types.RoleAdmin},
	}
	require.NoError(t, db.Create(&members).Error)

	svc := governance.NewService(db, governance.DefaultConfig(), nil, nil)
	cfg := config.Config{JWTSecret: testSecret}
	return New(cfg, svc)
}

func token(t *testing.T, memberID uint64) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprint(memberID),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/proposals", "", map[string]interface{}{
		"title": "x", "description": "y", "level": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/proposals", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProposalFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)

	// Member creates a level-1 proposal.
	w := doJSON(t, r, http.MethodPost, "/v1/proposals", token(t, 1), map[string]interface{}{
		"title":       "Offer evening office hours",
		"description": "Mentors should hold office hours after 18:00.",
		"level":       1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created types.Proposal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, types.StatusDraft, created.Status)

	// Level 2 by a plain member is denied.
	w = doJSON(t, r, http.MethodPost, "/v1/proposals", token(t, 1), map[string]interface{}{
		"title": "Change the rules", "description": "High impact.", "level": 2,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Submit and validate.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/proposals/%d/submit", created.ID), token(t, 1), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/proposals/%d/validate", created.ID), token(t, 3),
		map[string]interface{}{"decision": "approve"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Vote, then vote again.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/proposals/%d/votes", created.ID), token(t, 2),
		map[string]interface{}{"choice": "for", "comment": "useful"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var voteResp struct {
		Tally governance.Tally `json:"tally"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &voteResp))
	assert.Equal(t, int64(20), voteResp.Tally.DecisiveWeight)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/proposals/%d/votes", created.ID), token(t, 2),
		map[string]interface{}{"choice": "against"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Public read by slug, no auth.
	w = doJSON(t, r, http.MethodGet, "/v1/proposals/"+created.Slug, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view governance.ProposalView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, int64(1), view.Proposal.TotalVotes)
}

func TestVetoOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/proposals", token(t, 1), map[string]interface{}{
		"title": "Questionable idea", "description": "Should not survive.", "level": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created types.Proposal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Missing reason is a binding error before the service runs.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/admin/proposals/%d/veto", created.ID), token(t, 4),
		map[string]interface{}{"isPublic": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-admin veto is denied.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/admin/proposals/%d/veto", created.ID), token(t, 2),
		map[string]interface{}{"reason": "nope", "isPublic": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/v1/admin/proposals/%d/veto", created.ID), token(t, 4),
		map[string]interface{}{"reason": "violates guidelines", "isPublic": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var vetoed types.Proposal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vetoed))
	assert.Equal(t, types.StatusRejected, vetoed.Status)
}

func TestHealthz(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
