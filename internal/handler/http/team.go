package http

import (
	"log/slog"
	"net/http"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/response"
)

type TeamHandler interface {
	ListTeam(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	identityRepository identity.IdentityRepository
}

func NewTeamHandler(identityRepository identity.IdentityRepository) TeamHandler {
	return &TeamHandlerImpl{identityRepository: identityRepository}
}

// ListTeam returns the caller's direct team, including members attached
// through delegating client accounts.
func (h *TeamHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.CallerIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	team, err := h.identityRepository.ListTeam(r.Context(), ident.ID)
	if err != nil {
		slog.Error("ListTeam failed", "error", err)
		response.HandleError(w, err)
		return
	}

	members := make([]identity.IdentityResponse, 0, len(team))
	for _, member := range team {
		members = append(members, identity.ToIdentityResponse(member))
	}

	response.Success(w, members)
}
