// Package feedback classifies an analyzed sentence into one feedback category
// and maps every category to its message.
package feedback

import (
	"fmt"
)

// Category is the closed set of feedback outcomes.
type Category int

const (
	MissingSubject Category = iota
	MissingVerb
	MissingObject
	PassiveVoice
	AdverbPlacement
	NegativeSentence
	MultipleSubjects
	ComplexSentence
	CompoundSentence
	IncorrectNounUsage
	DoubleNegative
	MisplacedModifier
	RunOnSentence
	CommaSplice
	InvertedOrder
	WrongWordOrder
	ExcessivePassiveVoice

	// outcomes of the order check
	CorrectOrder
	Incomplete

	numCategories
)

var categoryNames = [numCategories]string{
	MissingSubject:        "missing_subject",
	MissingVerb:           "missing_verb",
	MissingObject:         "missing_object",
	PassiveVoice:          "passive_voice",
	AdverbPlacement:       "adverb_placement",
	NegativeSentence:      "negative_sentence",
	MultipleSubjects:      "multiple_subjects",
	ComplexSentence:       "complex_sentence",
	CompoundSentence:      "compound_sentence",
	IncorrectNounUsage:    "incorrect_noun_usage",
	DoubleNegative:        "double_negative",
	MisplacedModifier:     "misplaced_modifier",
	RunOnSentence:         "run_on_sentence",
	CommaSplice:           "comma_splice",
	InvertedOrder:         "inverted_order",
	WrongWordOrder:        "wrong_word_order",
	ExcessivePassiveVoice: "excessive_passive_voice",
	CorrectOrder:          "correct_order",
	Incomplete:            "incomplete",
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}

	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// ParseCategory returns the category for its snake_case name.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Categories returns every category in declaration order.
func Categories() []Category {
	all := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		all = append(all, c)
	}

	return all
}
