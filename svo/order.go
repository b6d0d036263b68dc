package svo

import (
	"strings"

	sent "github.com/revelaction/svocheck/sentence"
)

// Order is the outcome of the order and voice check.
type Order int

const (
	Incomplete Order = iota
	Active
	Passive
)

// passive auxiliary labels: spaCy (ClearNLP) and Universal Dependencies
var passiveAuxDeps = []string{"auxpass", "aux:pass"}

func (o Order) String() string {
	switch o {
	case Active:
		return "active"
	case Passive:
		return "passive"
	}

	return "incomplete"
}

// Message is the checker's own verdict for the order.
func (o Order) Message() string {
	switch o {
	case Active:
		return "Sentence is in correct SVM/SVO order. You can proceed."
	case Passive:
		return "Passive voice detected. Suggested active sentence."
	}

	return "Something is missing from your sentence (subject, verb, or object)."
}

func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Check returns Incomplete unless the triple has all three roles. A complete
// triple is Passive when any token carries a passive auxiliary label.
func Check(tokens []sent.Token, triple Triple) Order {
	if !triple.Complete() {
		return Incomplete
	}

	for _, t := range tokens {
		if isPassiveAux(t) {
			return Passive
		}
	}

	return Active
}

func isPassiveAux(t sent.Token) bool {
	dep := strings.ToLower(t.Dep)
	for _, p := range passiveAuxDeps {
		if dep == p {
			return true
		}
	}

	return false
}
