package httpapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gleasonw/lidnd/internal/errors"
	creatureservice "github.com/gleasonw/lidnd/internal/services/creature"
)

// maxCreatureFormSize bounds multipart creature uploads (images included).
const maxCreatureFormSize = 10 << 20

type creatureForm struct {
	name            string
	maxHP           int
	challengeRating float64
	isPlayer        bool
	icon            []byte
	statBlock       []byte
}

func parseCreatureForm(r *http.Request) (*creatureForm, error) {
	if err := r.ParseMultipartForm(maxCreatureFormSize); err != nil {
		return nil, errors.InvalidArgument("expected multipart form")
	}

	form := &creatureForm{name: r.FormValue("name")}

	if v := r.FormValue("max_hp"); v != "" {
		maxHP, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.InvalidArgument("max_hp must be an integer")
		}
		form.maxHP = maxHP
	}
	if v := r.FormValue("challenge_rating"); v != "" {
		cr, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.InvalidArgument("challenge_rating must be a number")
		}
		form.challengeRating = cr
	}
	if v := r.FormValue("is_player"); v != "" {
		isPlayer, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.InvalidArgument("is_player must be a boolean")
		}
		form.isPlayer = isPlayer
	}

	var err error
	if form.icon, err = formFileBytes(r, "icon"); err != nil {
		return nil, err
	}
	if form.statBlock, err = formFileBytes(r, "stat_block"); err != nil {
		return nil, err
	}

	return form, nil
}

func formFileBytes(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, errors.InvalidArgumentf("invalid %s upload", field)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to read %s upload", field)
	}
	return data, nil
}

func (h *Handler) listCreatures(w http.ResponseWriter, r *http.Request) {
	out, err := h.creatures.ListCreatures(r.Context(), &creatureservice.ListCreaturesInput{
		OwnerID:            principal(r.Context()).ID,
		NameFilter:         r.URL.Query().Get("name"),
		ExcludeEncounterID: r.URL.Query().Get("exclude_encounter"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Creatures)
}

func (h *Handler) createCreature(w http.ResponseWriter, r *http.Request) {
	form, err := parseCreatureForm(r)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.creatures.CreateCreature(r.Context(), &creatureservice.CreateCreatureInput{
		OwnerID:         principal(r.Context()).ID,
		Name:            form.name,
		MaxHP:           form.maxHP,
		ChallengeRating: form.challengeRating,
		IsPlayer:        form.isPlayer,
		Icon:            form.icon,
		StatBlock:       form.statBlock,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Creature)
}

func (h *Handler) getCreature(w http.ResponseWriter, r *http.Request) {
	out, err := h.creatures.GetCreature(r.Context(), &creatureservice.GetCreatureInput{
		OwnerID:    principal(r.Context()).ID,
		CreatureID: r.PathValue("creatureID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Creature)
}

type updateCreatureRequest struct {
	Name            string  `json:"name"`
	MaxHP           int     `json:"max_hp"`
	ChallengeRating float64 `json:"challenge_rating"`
	IsPlayer        bool    `json:"is_player"`
}

func (h *Handler) updateCreature(w http.ResponseWriter, r *http.Request) {
	var req updateCreatureRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.creatures.UpdateCreature(r.Context(), &creatureservice.UpdateCreatureInput{
		OwnerID:         principal(r.Context()).ID,
		CreatureID:      r.PathValue("creatureID"),
		Name:            req.Name,
		MaxHP:           req.MaxHP,
		ChallengeRating: req.ChallengeRating,
		IsPlayer:        req.IsPlayer,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Creature)
}

func (h *Handler) deleteCreature(w http.ResponseWriter, r *http.Request) {
	_, err := h.creatures.DeleteCreature(r.Context(), &creatureservice.DeleteCreatureInput{
		OwnerID:    principal(r.Context()).ID,
		CreatureID: r.PathValue("creatureID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type creatureImagesResponse struct {
	Icon      []byte `json:"icon,omitempty"`
	StatBlock []byte `json:"stat_block,omitempty"`
}

func (h *Handler) getCreatureImages(w http.ResponseWriter, r *http.Request) {
	out, err := h.creatures.GetCreatureImages(r.Context(), &creatureservice.GetCreatureImagesInput{
		OwnerID:    principal(r.Context()).ID,
		CreatureID: r.PathValue("creatureID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creatureImagesResponse{
		Icon:      out.Icon,
		StatBlock: out.StatBlock,
	})
}

func (h *Handler) importMonster(w http.ResponseWriter, r *http.Request) {
	out, err := h.creatures.ImportMonster(r.Context(), &creatureservice.ImportMonsterInput{
		OwnerID:    principal(r.Context()).ID,
		MonsterKey: r.PathValue("monsterKey"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Creature)
}
