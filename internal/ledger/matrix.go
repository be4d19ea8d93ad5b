package ledger

import "github.com/shopspring/decimal"

// Epsilon is the currency resolution. Debts at or below it are noise.
var Epsilon = decimal.RequireFromString("0.01")

// Debt returns what i owes j. Negative means j owes i.
func Debt(i, j string, agg Aggregates) decimal.Decimal {
	if i == j {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(agg.N()))
	return agg.EqualShare[j].Sub(agg.EqualShare[i]).Div(n).
		Add(agg.ItemDebts[Pair{From: i, To: j}]).
		Sub(agg.ItemDebts[Pair{From: j, To: i}]).
		Sub(agg.DirectPayments[Pair{From: i, To: j}]).
		Add(agg.DirectPayments[Pair{From: j, To: i}])
}

// Matrix is the full pairwise debt table over participants and ghosts.
type Matrix struct {
	Names []string
	cells map[Pair]decimal.Decimal
}

// NewMatrix computes every pairwise debt of agg.
func NewMatrix(agg Aggregates) Matrix {
	names := agg.Names()
	m := Matrix{
		Names: names,
		cells: make(map[Pair]decimal.Decimal, len(names)*len(names)),
	}
	for _, i := range names {
		for _, j := range names {
			m.cells[Pair{From: i, To: j}] = Debt(i, j, agg)
		}
	}
	return m
}

// Debt returns what i owes j. Names outside the matrix read as zero.
func (m Matrix) Debt(i, j string) decimal.Decimal {
	return m.cells[Pair{From: i, To: j}]
}

// Net returns what everyone else owes name, minus what name owes them.
// Positive means name is owed money overall.
func (m Matrix) Net(name string) decimal.Decimal {
	net := decimal.Zero
	for _, other := range m.Names {
		net = net.Add(m.Debt(other, name))
	}
	return net
}
