package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, meetingSvc *fakeMeetingService, leaveSvc *fakeLeaveService) (http.Handler, token.Service) {
	t.Helper()
	tokenSvc := token.NewService("router-test-secret", "1h")
	return NewRouter(
		tokenSvc,
		"http://localhost:3000",
		"test",
		NewMeetingHandler(meetingSvc),
		NewLeaveHandler(leaveSvc),
		NewTeamHandler(stubTeamRepo{}),
	), tokenSvc
}

type stubTeamRepo struct{}

func (stubTeamRepo) GetByID(ctx context.Context, id string) (identity.Identity, error) {
	return identity.Identity{}, identity.ErrIdentityNotFound
}

func (stubTeamRepo) ListTeam(ctx context.Context, managerID string) ([]identity.Identity, error) {
	return nil, nil
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router, _ := testRouter(t, &fakeMeetingService{}, &fakeLeaveService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meetings/pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterResolvesIdentityFromToken(t *testing.T) {
	meetingSvc := &fakeMeetingService{}
	router, tokenSvc := testRouter(t, meetingSvc, &fakeLeaveService{})

	tokenString, _, err := tokenSvc.GenerateIdentityToken(identity.Identity{
		ID:       "d-1",
		Name:     "Rahul",
		Username: "rahul.s",
		Role:     identity.RoleDoer,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meetings/pending", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rahul", meetingSvc.lastIdent.Name)
	assert.Equal(t, identity.RoleDoer, meetingSvc.lastIdent.Role)
}

func TestRouterRoleGateFromToken(t *testing.T) {
	meetingSvc := &fakeMeetingService{}
	router, tokenSvc := testRouter(t, meetingSvc, &fakeLeaveService{})

	tokenString, _, err := tokenSvc.GenerateIdentityToken(identity.Identity{
		ID:   "d-1",
		Name: "Rahul",
		Role: identity.RoleDoer,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/meetings/m-1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouterHeartbeat(t *testing.T) {
	router, _ := testRouter(t, &fakeMeetingService{}, &fakeLeaveService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
