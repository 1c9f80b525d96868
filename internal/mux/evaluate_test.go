package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/poker"
)

func TestMux_postEvaluate(t *testing.T) {
	ts := httptest.NewServer(NewMux("", nil))
	defer ts.Close()

	var resp handResponse
	assertPost(t, ts, "/evaluate", `{"cards":["Kc","Kd","Ks","Qh","Qd","3c","2s"]}`, &resp, 200)
	assert.Equal(t, poker.FullHouse, resp.Rank)
	assert.Equal(t, 7, resp.Strength)
	assert.Equal(t, "Ks,Kd,Kc,Qh,Qd", resp.RankCards.Notation())
	assert.Empty(t, resp.KickerCards)
	assert.Equal(t, "Full house, Kings full of Queens", resp.Description)

	resp = handResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["Tc","Td","Ah","9s","5d"]}`, &resp, 200)
	assert.Equal(t, poker.Pair, resp.Rank)
	assert.Equal(t, "Ah,9s,5d", resp.KickerCards.Notation())
	assert.Equal(t, "Pair Tens, Ace-Nine-Five kickers", resp.Description)
}

func TestMux_postEvaluate_errors(t *testing.T) {
	ts := httptest.NewServer(NewMux("", nil))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/evaluate", `{"cards":[]}`, &errObj, 400)
	assert.Equal(t, "invalid input: no cards to evaluate", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["Ah","Ah"]}`, &errObj, 400)
	assert.Equal(t, "invalid input: duplicate card Ah", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":["Zz"]}`, &errObj, 400)
	assert.Contains(t, errObj.Message, "invalid card")

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"cards":`, &errObj, 400)
	assert.Equal(t, 400, errObj.StatusCode)
}
