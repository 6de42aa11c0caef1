package brackets

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/Dosada05/league-standings/models"
)

type PairingMode string

const (
	PairingSeeded PairingMode = "seeded"
	PairingRandom PairingMode = "random"
)

var ErrUnknownPairingMode = errors.New("unknown pairing mode")

// ParsePairingMode accepts "seeded" or "random" in any case; empty means seeded.
func ParsePairingMode(s string) (PairingMode, error) {
	switch PairingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", PairingSeeded:
		return PairingSeeded, nil
	case PairingRandom:
		return PairingRandom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPairingMode, s)
}

// Pair is one elimination tie: [0] plays [1].
type Pair [2]models.StandingRow

// TopNFromTable returns the first n rows of a sorted table.
func TopNFromTable(table []models.StandingRow, n int) []models.StandingRow {
	n = max(0, min(n, len(table)))
	out := make([]models.StandingRow, n)
	copy(out, table)
	return out
}

// TopNEachGroup truncates every group's table to its first n rows.
func TopNEachGroup(grouped map[string][]models.StandingRow, n int) map[string][]models.StandingRow {
	out := make(map[string][]models.StandingRow, len(grouped))
	for g, table := range grouped {
		out[g] = TopNFromTable(table, n)
	}
	return out
}

// Pairer builds elimination pairs. Random mode draws from its own source so a
// bracket can be reproduced from the seed. A Pairer is not safe for
// concurrent use.
type Pairer struct {
	rng *rand.Rand
}

func NewPairer(seed int64) *Pairer {
	return &Pairer{rng: rand.New(rand.NewSource(seed))}
}

// BuildPairsFromList pairs a ranked list with a time-seeded Pairer.
func BuildPairsFromList(list []models.StandingRow, mode PairingMode) []Pair {
	return NewPairer(time.Now().UnixNano()).PairsFromList(list, mode)
}

// BuildCrossPairsFromGroups crosses group qualifiers with a time-seeded Pairer.
func BuildCrossPairsFromGroups(groupedTop map[string][]models.StandingRow, mode PairingMode) []Pair {
	return NewPairer(time.Now().UnixNano()).CrossPairsFromGroups(groupedTop, mode)
}

// PairsFromList pairs best against worst working inwards (seeded), or
// shuffles and pairs neighbours (random). An odd entrant is left out.
func (p *Pairer) PairsFromList(list []models.StandingRow, mode PairingMode) []Pair {
	rows := slices.Clone(list)
	if mode == PairingRandom {
		p.shuffle(rows)
		return consecutivePairs(rows)
	}

	pairs := make([]Pair, 0, len(rows)/2)
	for l, r := 0, len(rows)-1; l < r; l, r = l+1, r-1 {
		pairs = append(pairs, Pair{rows[l], rows[r]})
	}
	return pairs
}

// CrossPairsFromGroups pairs qualifiers of different groups.
//
// With two groups A and B the seeded crossing is A1-B2, B1-A2, A3-B4, B3-A4
// and so on, both groups advancing two places per step; a side that runs out
// simply stops producing pairs. With more than two groups the qualifiers are
// interleaved by rank (every group's first, then every group's second, ...)
// and paired as one list. With fewer than two groups the only group, if
// any, is paired as a list.
func (p *Pairer) CrossPairsFromGroups(groupedTop map[string][]models.StandingRow, mode PairingMode) []Pair {
	labels := make([]string, 0, len(groupedTop))
	for g := range groupedTop {
		labels = append(labels, g)
	}
	slices.Sort(labels)

	switch {
	case len(labels) == 0:
		return p.PairsFromList(nil, mode)
	case len(labels) == 1:
		return p.PairsFromList(groupedTop[labels[0]], mode)
	case len(labels) > 2:
		return p.PairsFromList(interleaveByRank(groupedTop, labels), mode)
	}

	a, b := groupedTop[labels[0]], groupedTop[labels[1]]
	if mode == PairingRandom {
		bag := make([]models.StandingRow, 0, len(a)+len(b))
		bag = append(bag, a...)
		bag = append(bag, b...)
		p.shuffle(bag)
		return consecutivePairs(bag)
	}

	pairs := make([]Pair, 0, max(len(a), len(b)))
	for i := 0; i < max(len(a), len(b)); i += 2 {
		if i < len(a) && i+1 < len(b) {
			pairs = append(pairs, Pair{a[i], b[i+1]})
		}
		if i < len(b) && i+1 < len(a) {
			pairs = append(pairs, Pair{b[i], a[i+1]})
		}
	}
	return pairs
}

func interleaveByRank(groupedTop map[string][]models.StandingRow, labels []string) []models.StandingRow {
	depth := 0
	for _, g := range labels {
		depth = max(depth, len(groupedTop[g]))
	}

	flat := make([]models.StandingRow, 0, depth*len(labels))
	for rank := 0; rank < depth; rank++ {
		for _, g := range labels {
			if rank < len(groupedTop[g]) {
				flat = append(flat, groupedTop[g][rank])
			}
		}
	}
	return flat
}

func consecutivePairs(rows []models.StandingRow) []Pair {
	pairs := make([]Pair, 0, len(rows)/2)
	for i := 0; i+1 < len(rows); i += 2 {
		pairs = append(pairs, Pair{rows[i], rows[i+1]})
	}
	return pairs
}

// shuffle is an in-place Fisher-Yates shuffle.
func (p *Pairer) shuffle(rows []models.StandingRow) {
	for i := len(rows) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// KnockoutRoundLabel names an elimination round by the number of ties in it.
func KnockoutRoundLabel(numPairs int) string {
	switch {
	case numPairs >= 16:
		return "Round of 32"
	case numPairs == 8:
		return "Round of 16"
	case numPairs == 4:
		return "Quarterfinal"
	case numPairs == 2:
		return "Semifinal"
	}
	return "Final"
}
