package poker

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"showdown-server/pkg/deck"
)

// Options provides options for an Evaluator
type Options struct {
	// CacheSize is how many card sets keep their groupings in memory; 0 disables the cache
	CacheSize int
	// Parallelism is how many candidates are evaluated at once; 1 or less is sequential
	Parallelism int
	Logger      logrus.FieldLogger
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		CacheSize:   0,
		Parallelism: 1,
		Logger:      logrus.StandardLogger(),
	}
}

// Evaluator extracts hands and finds the winners of a showdown.
// An Evaluator is safe for concurrent use.
type Evaluator struct {
	logger      logrus.FieldLogger
	parallelism int
	cache       *lru.Cache[uint64, *analysis]
}

var defaultEvaluator = &Evaluator{
	logger:      logrus.StandardLogger(),
	parallelism: 1,
}

// NewEvaluator returns a new Evaluator
func NewEvaluator(opts Options) (*Evaluator, error) {
	e := &Evaluator{
		logger:      opts.Logger,
		parallelism: opts.Parallelism,
	}

	if e.logger == nil {
		e.logger = logrus.StandardLogger()
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[uint64, *analysis](opts.CacheSize)
		if err != nil {
			return nil, err
		}

		e.cache = cache
	}

	return e, nil
}

// ExtractHand returns the best hand that can be made from the cards
// using the default evaluator
func ExtractHand(cards deck.Cards) (Hand, error) {
	return defaultEvaluator.ExtractHand(cards)
}

// FindHighestHands evaluates every candidate and returns the winner using the
// default evaluator. More than one result means the pot is split.
func FindHighestHands(candidates []Candidate) ([]Result, error) {
	return defaultEvaluator.FindHighestHands(candidates)
}

// ExtractHand returns the best hand that can be made from the cards.
// Usually this is seven cards, but any number of unique cards is accepted.
func (e *Evaluator) ExtractHand(cards deck.Cards) (Hand, error) {
	if len(cards) == 0 {
		return Hand{}, fmt.Errorf("%w: no cards to evaluate", ErrInvalidInput)
	}

	for _, card := range cards {
		if !card.IsValid() {
			return Hand{}, fmt.Errorf("%w: unknown card face=%d suit=%d", ErrInvalidInput, card.Face, card.Suit)
		}
	}

	if card, ok := cards.Duplicate(); ok {
		return Hand{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, card.Notation())
	}

	return extractHand(e.analyze(cards)), nil
}

// analyze returns the groupings for the cards, from the cache if possible.
// The key is a bitmask so that the order of the cards does not matter.
func (e *Evaluator) analyze(cards deck.Cards) *analysis {
	if e.cache == nil {
		return analyze(cards)
	}

	key := cards.Mask()
	if a, ok := e.cache.Get(key); ok {
		return a
	}

	a := analyze(cards)
	e.cache.Add(key, a)

	return a
}

// FindHighestHands evaluates every candidate and returns the winner.
// More than one result means the pot is split between them.
func (e *Evaluator) FindHighestHands(candidates []Candidate) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates to evaluate", ErrInvalidInput)
	}

	results, err := e.evaluate(candidates)
	if err != nil {
		return nil, err
	}

	maxStrength := 0
	for _, result := range results {
		if result.Hand.Strength > maxStrength {
			maxStrength = result.Hand.Strength
		}
	}

	highest := make([]Result, 0, len(results))
	for _, result := range results {
		if result.Hand.Strength == maxStrength {
			highest = append(highest, result)
		}
	}

	if len(highest) == 1 {
		return highest, nil
	}

	best, err := TieBreak(highest)
	if err != nil {
		return nil, err
	}

	winners := make([]Result, len(best))
	for i, index := range best {
		winners[i] = highest[index]
	}

	e.logger.WithFields(logrus.Fields{
		"rank":    winners[0].Hand.Rank.String(),
		"tied":    len(highest),
		"winners": len(winners),
	}).Debug("tie break")

	return winners, nil
}

// evaluate extracts the hand of every candidate, keeping the candidate order
func (e *Evaluator) evaluate(candidates []Candidate) ([]Result, error) {
	results := make([]Result, len(candidates))

	evaluateOne := func(i int) error {
		candidate := candidates[i].clone()
		hand, err := e.ExtractHand(candidate.Cards())
		if err != nil {
			return fmt.Errorf("candidate %d: %w", i, err)
		}

		results[i] = Result{Candidate: candidate, Hand: hand}
		e.logger.WithFields(logrus.Fields{
			"candidate": i,
			"rank":      hand.Rank.String(),
			"strength":  hand.Strength,
		}).Debug("evaluated candidate")

		return nil
	}

	if e.parallelism <= 1 || len(candidates) == 1 {
		for i := range candidates {
			if err := evaluateOne(i); err != nil {
				return nil, err
			}
		}

		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(e.parallelism)
	for i := range candidates {
		i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			return evaluateOne(i)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
