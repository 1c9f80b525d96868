package mux

import (
	"net/http"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

type evaluateRequest struct {
	Cards deck.Cards `json:"cards"`
}

type handResponse struct {
	Rank        poker.HandRank `json:"rank"`
	Strength    int            `json:"strength"`
	RankCards   deck.Cards     `json:"rankCards"`
	KickerCards deck.Cards     `json:"kickerCards"`
	Description string         `json:"description"`
}

func newHandResponse(hand poker.Hand) handResponse {
	return handResponse{
		Rank:        hand.Rank,
		Strength:    hand.Strength,
		RankCards:   hand.RankCards,
		KickerCards: hand.KickerCards,
		Description: poker.Describe(hand).String(),
	}
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hand, err := m.evaluator.ExtractHand(req.Cards)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(hand))
	}
}
