package main

import (
	"fmt"

	"github.com/barnettsmart/mentalpoker/card"
	"github.com/barnettsmart/mentalpoker/curve"
)

// Suite is a playing card's suit.
type Suite int

const (
	Clubs Suite = iota
	Diamonds
	Hearts
	Spades
)

func (s Suite) String() string {
	return [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}[s]
}

// Rank is a playing card's rank, Ace through King.
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

func (r Rank) String() string {
	names := [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six",
		"Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}
	return names[r]
}

// StandardDeck maps the 52 standard playing cards to deterministic
// group elements whose discrete logs are unknown to any party, via
// MapToGroup with a per-card domain-separation label. This is a demo
// convenience on top of the opaque card.Card type the core protocol
// operates on; nothing in the core packages depends on card meaning.
func StandardDeck(group curve.Group) ([]card.Card, error) {
	suites := []Suite{Clubs, Diamonds, Hearts, Spades}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	deck := make([]card.Card, 0, len(suites)*len(ranks))
	for _, s := range suites {
		for _, r := range ranks {
			label := fmt.Sprintf("%s-of-%s", r, s)
			c, err := group.Element().MapToGroup([]byte("mpokerdemo-deck"), []byte(label))
			if err != nil {
				return nil, err
			}
			deck = append(deck, c)
		}
	}
	return deck, nil
}
