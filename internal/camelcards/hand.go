// Package camelcards ranks hands of Camel Cards and computes their total
// winnings (Advent of Code 2023, day 7).
package camelcards

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var (
	ErrInvalidCard   = errors.New("camelcards: invalid card")
	ErrMalformedHand = errors.New("camelcards: malformed hand")
)

// Hand is five cards in the order they were dealt and the bid placed on
// them.
type Hand struct {
	Cards [5]Card
	Bid   int
}

// Category returns the category of the hand.
func (h Hand) Category() Category {
	return Classify(h.Cards)
}

func (h Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards {
		sb.WriteString(c.String())
	}
	fmt.Fprintf(&sb, " %d (%v)", h.Bid, h.Category())
	return sb.String()
}

// ParseHand parses a "<cards> <bid>" line such as "32T3K 765".
func ParseHand(line string, jokers bool) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: %q: want cards and bid", ErrMalformedHand, line)
	}
	labels := []rune(fields[0])
	if len(labels) != 5 {
		return Hand{}, fmt.Errorf("%w: %q: want 5 cards, got %d", ErrMalformedHand, line, len(labels))
	}
	var cards [5]Card
	for i, r := range labels {
		c, err := ParseCard(r, jokers)
		if err != nil {
			return Hand{}, fmt.Errorf("%w in %q", err, line)
		}
		cards[i] = c
	}
	bid, err := strconv.Atoi(fields[1])
	if err != nil || bid < 0 {
		return Hand{}, fmt.Errorf("%w: %q: bad bid %q", ErrMalformedHand, line, fields[1])
	}
	return Hand{Cards: cards, Bid: bid}, nil
}

// ParseHands parses one hand per line, skipping blank lines.
func ParseHands(input string, jokers bool) ([]Hand, error) {
	var hands []Hand
	err := aoc.ForLines(input, func(y int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		h, err := ParseHand(line, jokers)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		hands = append(hands, h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hands, nil
}

// key orders hands by category and then card by card in dealt order.
func (h Hand) key() [6]int {
	return [6]int{
		int(h.Category()),
		int(h.Cards[0]),
		int(h.Cards[1]),
		int(h.Cards[2]),
		int(h.Cards[3]),
		int(h.Cards[4]),
	}
}

// Compare returns -1, 0 or +1 depending on whether a is weaker than, as
// strong as, or stronger than b.
func Compare(a, b Hand) int {
	ka, kb := a.key(), b.key()
	return slices.Compare(ka[:], kb[:])
}

// Rank sorts hands from weakest to strongest.
func Rank(hands []Hand) {
	slices.SortStableFunc(hands, Compare)
}

// Winnings returns the sum over all hands of the hand's bid times its
// rank, where the weakest hand has rank 1. hands is left untouched.
func Winnings(hands []Hand) int {
	ranked := slices.Clone(hands)
	Rank(ranked)
	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}
	return total
}
