package camelcards

import (
	"fmt"
	"strconv"
)

// Card is the rank of a card. Higher ranks beat lower ones.
type Card int8

const (
	Joker Card = 1 // a J when jokers are wild; the weakest card
	Two   Card = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// ParseCard parses a card label. J is a Joker if jokers is set and a Jack
// otherwise.
func ParseCard(r rune, jokers bool) (Card, error) {
	switch r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Card(r - '0'), nil
	case 'T':
		return Ten, nil
	case 'J':
		if jokers {
			return Joker, nil
		}
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidCard, r)
}

func (c Card) String() string {
	switch c {
	case Joker, Jack:
		return "J"
	case Ten:
		return "T"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if c >= Two && c <= Nine {
		return strconv.Itoa(int(c))
	}
	return "?"
}

// Category is the type of a hand. Higher categories beat lower ones.
type Category int8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var categoryNames = [...]string{
	HighCard:     "high card",
	OnePair:      "one pair",
	TwoPair:      "two pair",
	ThreeOfAKind: "three of a kind",
	FullHouse:    "full house",
	FourOfAKind:  "four of a kind",
	FiveOfAKind:  "five of a kind",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int8(c))
	}
	return categoryNames[c]
}

// signature is the shape of a hand: how many groups of equal cards of
// each size it holds, not counting jokers, and how many jokers.
type signature struct {
	pairs, triples, quads, quints int
	jokers                        int
}

func signatureOf(cards [5]Card) signature {
	var counts [Ace + 1]int
	var s signature
	for _, c := range cards {
		if c == Joker {
			s.jokers++
			continue
		}
		counts[c]++
	}
	for _, n := range counts {
		switch n {
		case 2:
			s.pairs++
		case 3:
			s.triples++
		case 4:
			s.quads++
		case 5:
			s.quints++
		}
	}
	return s
}

// categories maps every possible signature of five cards to its category.
// Jokers join whichever group makes the best hand.
var categories = map[signature]Category{
	{}:                     HighCard,
	{pairs: 1}:             OnePair,
	{pairs: 2}:             TwoPair,
	{triples: 1}:           ThreeOfAKind,
	{pairs: 1, triples: 1}: FullHouse,
	{quads: 1}:             FourOfAKind,
	{quints: 1}:            FiveOfAKind,

	{jokers: 5}: FiveOfAKind,
	{jokers: 4}: FiveOfAKind,

	{jokers: 3, pairs: 1}: FiveOfAKind,
	{jokers: 3}:           FourOfAKind,

	{jokers: 2, triples: 1}: FiveOfAKind,
	{jokers: 2, pairs: 1}:   FourOfAKind,
	{jokers: 2}:             ThreeOfAKind,

	{jokers: 1, quads: 1}:   FiveOfAKind,
	{jokers: 1, triples: 1}: FourOfAKind,
	{jokers: 1, pairs: 2}:   FullHouse,
	{jokers: 1, pairs: 1}:   ThreeOfAKind,
	{jokers: 1}:             OnePair,
}

func (s signature) category() Category {
	c, ok := categories[s]
	if !ok {
		panic(fmt.Sprintf("camelcards: impossible hand signature %+v", s))
	}
	return c
}

// Classify returns the category of a hand of five cards.
func Classify(cards [5]Card) Category {
	return signatureOf(cards).category()
}
