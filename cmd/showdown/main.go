package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"showdown-server/internal/rng"
	"showdown-server/pkg/deck"
	"showdown-server/pkg/poker"
)

var command = flag.String("c", "deal", "specifies the command (deal, evaluate)")
var players = flag.Int("players", 4, "the number of players to deal in")
var seed = flag.Int64("seed", 0, "seeds the shuffle for a reproducible deal, 0 uses crypto/rand")

func main() {
	flag.Parse()

	switch *command {
	case "deal":
		if err := deal(*players, *seed); err != nil {
			logrus.WithError(err).Fatal("could not deal")
		}
	case "evaluate":
		evaluate()
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// formatCards uses suit symbols on a terminal and short notation otherwise
func formatCards(cards deck.Cards) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return cards.String()
	}

	return cards.Notation()
}

func deal(n int, seed int64) error {
	if n < 1 || n > 23 {
		return fmt.Errorf("players must be between 1 and 23, got %d", n)
	}

	var g rng.Generator = rng.Crypto{}
	if seed != 0 {
		g = rng.NewSeeded(seed)
	}

	d := deck.New()
	d.Shuffle(g)

	candidates := make([]poker.Candidate, n)
	for i := range candidates {
		pocket, err := d.DrawN(2)
		if err != nil {
			return err
		}

		candidates[i].PocketCards = pocket
	}

	community, err := d.DrawN(5)
	if err != nil {
		return err
	}

	fmt.Printf("Board: %s\n", formatCards(community))
	for i := range candidates {
		candidates[i].CommunityCards = community

		hand, err := poker.ExtractHand(candidates[i].Cards())
		if err != nil {
			return err
		}

		fmt.Printf("Player %d: %s (%s) %s\n", i+1, formatCards(candidates[i].PocketCards),
			poker.DescribePocketCards(candidates[i].PocketCards), poker.Describe(hand))
	}

	winners, err := poker.FindHighestHands(candidates)
	if err != nil {
		return err
	}

	for _, winner := range winners {
		fmt.Printf("Winner: %s with %s\n", formatCards(winner.Candidate.PocketCards), poker.Describe(winner.Hand))
	}

	return nil
}

func evaluate() {
	for {
		line, err := getInput("Cards (i.e., Ah,Kd,7c)")
		if errors.Is(err, io.EOF) {
			return
		} else if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if line == "" {
			return
		}

		cards, err := deck.ParseCards(line)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			continue
		}

		hand, err := poker.ExtractHand(cards)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Printf("%s: %s\n", hand.Rank, poker.Describe(hand))
		fmt.Printf("  rank cards:   %s\n", formatCards(hand.RankCards))
		fmt.Printf("  kicker cards: %s\n", formatCards(hand.KickerCards))
	}
}

var stdin = bufio.NewReader(os.Stdin)

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	str, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
