// Package httpapi exposes the encounter tracker over HTTP/JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gleasonw/lidnd/internal/auth"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/repositories/channels"
	creatureservice "github.com/gleasonw/lidnd/internal/services/creature"
	encounterservice "github.com/gleasonw/lidnd/internal/services/encounter"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Encounters encounterservice.Service
	Creatures  creatureservice.Service
	Channels   channels.Repository
	Auth       auth.Validator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if c.Creatures == nil {
		vb.RequiredField("Creatures")
	}
	if c.Channels == nil {
		vb.RequiredField("Channels")
	}
	if c.Auth == nil {
		vb.RequiredField("Auth")
	}

	return vb.Build()
}

// Handler routes authenticated HTTP requests to the orchestrators.
type Handler struct {
	encounters encounterservice.Service
	creatures  creatureservice.Service
	channels   channels.Repository
	auth       auth.Validator
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		encounters: cfg.Encounters,
		creatures:  cfg.Creatures,
		channels:   cfg.Channels,
		auth:       cfg.Auth,
	}, nil
}

// Routes returns the full route table.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/encounters", h.listEncounters)
	mux.HandleFunc("POST /api/encounters", h.createEncounter)
	mux.HandleFunc("GET /api/encounters/{encounterID}", h.getEncounter)
	mux.HandleFunc("PUT /api/encounters/{encounterID}", h.updateEncounter)
	mux.HandleFunc("DELETE /api/encounters/{encounterID}", h.deleteEncounter)
	mux.HandleFunc("POST /api/encounters/{encounterID}/start", h.startEncounter)
	mux.HandleFunc("POST /api/encounters/{encounterID}/stop", h.stopEncounter)
	mux.HandleFunc("POST /api/encounters/{encounterID}/turn", h.advanceTurn)
	mux.HandleFunc("GET /api/encounters/{encounterID}/participants", h.listParticipants)
	mux.HandleFunc("POST /api/encounters/{encounterID}/creatures", h.createCreatureAndAdd)
	mux.HandleFunc("POST /api/encounters/{encounterID}/creatures/{creatureID}", h.addCreatureParticipant)
	mux.HandleFunc("PUT /api/encounters/{encounterID}/participants/{participantID}", h.updateParticipant)
	mux.HandleFunc("DELETE /api/encounters/{encounterID}/participants/{participantID}", h.removeParticipant)
	mux.HandleFunc("POST /api/encounters/{encounterID}/participants/{participantID}/roll", h.rollInitiative)

	mux.HandleFunc("GET /api/creatures", h.listCreatures)
	mux.HandleFunc("POST /api/creatures", h.createCreature)
	mux.HandleFunc("GET /api/creatures/{creatureID}", h.getCreature)
	mux.HandleFunc("PUT /api/creatures/{creatureID}", h.updateCreature)
	mux.HandleFunc("DELETE /api/creatures/{creatureID}", h.deleteCreature)
	mux.HandleFunc("GET /api/creatures/{creatureID}/images", h.getCreatureImages)
	mux.HandleFunc("POST /api/creatures/import/{monsterKey}", h.importMonster)

	mux.HandleFunc("PUT /api/channels", h.setTrackedChannel)

	return h.requireAuth(mux)
}

// requireAuth resolves the bearer token to a principal and stores it in
// the request context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			errors.WriteHTTP(w, errors.Unauthenticated("missing bearer token"))
			return
		}

		principal, err := h.auth.Validate(r.Context(), token)
		if err != nil {
			errors.WriteHTTP(w, err)
			return
		}

		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// principal returns the authenticated caller. The auth middleware always
// runs first, so a missing principal is a programming error.
func principal(ctx context.Context) *auth.Principal {
	p := auth.PrincipalFromContext(ctx)
	if p == nil {
		panic("httpapi: request reached handler without principal")
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

func decodeJSON(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return errors.InvalidArgument("invalid JSON body")
	}
	return nil
}
