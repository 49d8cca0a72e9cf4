package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type tokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type Handler struct {
	revoker tokenRevoker
}

func NewHandler(revoker tokenRevoker) *Handler {
	return &Handler{
		revoker: revoker,
	}
}

// HandleLogout revokes the token the request was authenticated with.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		log.Errorf("logout [%s]: revoke token: %s", claims.OwnerID, err)
		http.Error(w, "error, logout failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("owner [%s] logged out", claims.OwnerID)
	pkg.WriteTextResponseOK(w, "logged-out")
}
