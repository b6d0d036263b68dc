package feedback

import (
	"strings"

	"github.com/revelaction/svocheck/svo"
)

const maxSimpleWords = 10

// Classify selects the feedback category of a sentence.
//
// The rules are evaluated in order and the first one that applies wins. Text
// rules test raw substrings of the sentence, case sensitive, as typed. Four
// catalog categories (run on sentence, inverted order, wrong word order and
// excessive passive voice) have no rule.
func Classify(raw string, t svo.Triple, o svo.Order) Category {
	switch {
	case !t.HasSubject():
		return MissingSubject
	case !t.HasVerb():
		return MissingVerb
	case !t.HasObject():
		return MissingObject
	case strings.Contains(raw, "not"):
		return NegativeSentence
	case wordCount(t.Subject) > 1:
		return MultipleSubjects
	case strings.Contains(raw, "quickly"):
		return AdverbPlacement
	case wordCount(raw) > maxSimpleWords:
		return ComplexSentence
	case distinct(t.Subject, t.Verb, t.Object):
		return FromOrder(o)
	case wordCount(t.Subject) > 2:
		return CompoundSentence
	case strings.Contains(raw, "enjoys"):
		return IncorrectNounUsage
	case strings.Contains(raw, "doesn't need no"):
		return DoubleNegative
	case strings.Contains(raw, "almost"):
		return MisplacedModifier
	case strings.Contains(raw, ","):
		return CommaSplice
	}

	return FromOrder(o)
}

// FromOrder maps the outcome of the order check to its category.
func FromOrder(o svo.Order) Category {
	switch o {
	case svo.Passive:
		return PassiveVoice
	case svo.Active:
		return CorrectOrder
	}

	return Incomplete
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func distinct(a, b, c string) bool {
	return a != b && b != c && a != c
}
