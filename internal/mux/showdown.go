package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

type showdownPlayer struct {
	ID     string     `json:"id"`
	Pocket deck.Cards `json:"pocket"`
}

type showdownRequest struct {
	Community deck.Cards       `json:"community"`
	Players   []showdownPlayer `json:"players"`
}

type showdownWinner struct {
	ID string `json:"id"`
	handResponse
	PocketDescription string `json:"pocketDescription"`
}

type showdownResponse struct {
	ID      string           `json:"id"`
	Split   bool             `json:"split"`
	Winners []showdownWinner `json:"winners"`
}

// validate ensures every player can be told apart by their pocket cards
func (s showdownRequest) validate(maxCandidates int) error {
	if len(s.Players) == 0 {
		return errors.New("at least one player is required")
	}

	if len(s.Players) > maxCandidates {
		return fmt.Errorf("too many players: %d, the maximum is %d", len(s.Players), maxCandidates)
	}

	ids := make(map[string]bool, len(s.Players))
	all := s.Community.Clone()
	for _, player := range s.Players {
		if player.ID == "" {
			return errors.New("every player requires an id")
		}

		if ids[player.ID] {
			return fmt.Errorf("duplicate player id: %s", player.ID)
		}

		ids[player.ID] = true

		if len(player.Pocket) == 0 {
			return fmt.Errorf("player %s has no pocket cards", player.ID)
		}

		all = append(all, player.Pocket...)
	}

	if card, ok := all.Duplicate(); ok {
		return fmt.Errorf("card %s was dealt more than once", card.Notation())
	}

	return nil
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req showdownRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if err := req.validate(m.config.maxCandidates); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		candidates := make([]poker.Candidate, len(req.Players))
		players := make(map[uint64]string, len(req.Players))
		for i, player := range req.Players {
			candidates[i] = poker.Candidate{
				PocketCards:    player.Pocket,
				CommunityCards: req.Community,
			}

			players[player.Pocket.Mask()] = player.ID
		}

		results, err := m.evaluator.FindHighestHands(candidates)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		resp := showdownResponse{
			ID:      uuid.New().String(),
			Split:   len(results) > 1,
			Winners: make([]showdownWinner, len(results)),
		}

		for i, result := range results {
			resp.Winners[i] = showdownWinner{
				ID:                players[result.Candidate.PocketCards.Mask()],
				handResponse:      newHandResponse(result.Hand),
				PocketDescription: poker.DescribePocketCards(result.Candidate.PocketCards),
			}
		}

		logrus.WithFields(logrus.Fields{
			"showdown": resp.ID,
			"players":  len(req.Players),
			"winners":  len(resp.Winners),
		}).Info("showdown")

		writeJSON(w, http.StatusOK, resp)
	}
}
