package httpapi

import (
	"net/http"

	"github.com/gleasonw/lidnd/internal/engine/turnorder"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/repositories/channels"
	encounterservice "github.com/gleasonw/lidnd/internal/services/encounter"
)

type encounterRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type participantRequest struct {
	HP         int `json:"hp"`
	Initiative int `json:"initiative"`
}

type channelRequest struct {
	ChannelID string `json:"channel_id"`
}

func (h *Handler) listEncounters(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.ListEncounters(r.Context(), &encounterservice.ListEncountersInput{
		OwnerID: principal(r.Context()).ID,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Encounters)
}

func (h *Handler) createEncounter(w http.ResponseWriter, r *http.Request) {
	var req encounterRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.encounters.CreateEncounter(r.Context(), &encounterservice.CreateEncounterInput{
		OwnerID:     principal(r.Context()).ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Encounter)
}

func (h *Handler) getEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.GetEncounter(r.Context(), &encounterservice.GetEncounterInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.View)
}

func (h *Handler) updateEncounter(w http.ResponseWriter, r *http.Request) {
	var req encounterRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.encounters.UpdateEncounter(r.Context(), &encounterservice.UpdateEncounterInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Encounter)
}

func (h *Handler) deleteEncounter(w http.ResponseWriter, r *http.Request) {
	_, err := h.encounters.DeleteEncounter(r.Context(), &encounterservice.DeleteEncounterInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) startEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.StartEncounter(r.Context(), &encounterservice.StartEncounterInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.View)
}

func (h *Handler) stopEncounter(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.StopEncounter(r.Context(), &encounterservice.StopEncounterInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Encounter)
}

func (h *Handler) advanceTurn(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.AdvanceTurn(r.Context(), &encounterservice.AdvanceTurnInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
		Direction:   turnorder.Direction(r.URL.Query().Get("to")),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listParticipants(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.ListParticipants(r.Context(), &encounterservice.ListParticipantsInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Participants)
}

func (h *Handler) addCreatureParticipant(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.AddCreatureParticipant(r.Context(), &encounterservice.AddCreatureParticipantInput{
		OwnerID:     principal(r.Context()).ID,
		EncounterID: r.PathValue("encounterID"),
		CreatureID:  r.PathValue("creatureID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Participant)
}

// createCreatureAndAdd accepts a multipart form: name, max_hp,
// challenge_rating, is_player fields plus optional icon and stat_block
// file parts.
func (h *Handler) createCreatureAndAdd(w http.ResponseWriter, r *http.Request) {
	form, err := parseCreatureForm(r)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.encounters.CreateCreatureAndAdd(r.Context(), &encounterservice.CreateCreatureAndAddInput{
		OwnerID:         principal(r.Context()).ID,
		EncounterID:     r.PathValue("encounterID"),
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
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) updateParticipant(w http.ResponseWriter, r *http.Request) {
	var req participantRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.encounters.UpdateParticipant(r.Context(), &encounterservice.UpdateParticipantInput{
		OwnerID:       principal(r.Context()).ID,
		EncounterID:   r.PathValue("encounterID"),
		ParticipantID: r.PathValue("participantID"),
		HP:            req.HP,
		Initiative:    req.Initiative,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Participant)
}

func (h *Handler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	_, err := h.encounters.RemoveParticipant(r.Context(), &encounterservice.RemoveParticipantInput{
		OwnerID:       principal(r.Context()).ID,
		EncounterID:   r.PathValue("encounterID"),
		ParticipantID: r.PathValue("participantID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) rollInitiative(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounters.RollInitiative(r.Context(), &encounterservice.RollInitiativeInput{
		OwnerID:       principal(r.Context()).ID,
		EncounterID:   r.PathValue("encounterID"),
		ParticipantID: r.PathValue("participantID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) setTrackedChannel(w http.ResponseWriter, r *http.Request) {
	var req channelRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	if req.ChannelID == "" {
		errors.WriteHTTP(w, errors.InvalidArgument("channel_id is required"))
		return
	}

	out, err := h.channels.SetTrackedChannel(r.Context(), &channels.SetTrackedChannelInput{
		UserID:    principal(r.Context()).ID,
		ChannelID: req.ChannelID,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Channel)
}
