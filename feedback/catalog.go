package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned for a category outside the declared set.
var ErrUnknownCategory = errors.New("component type not recognized")

// Entry is the message of a category: a headline, an explanation and an
// illustrative example with a short note on it.
type Entry struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation,omitempty"`
	Example     string   `json:"example,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// Markdown formats the entry the way it is displayed to the user.
func (e Entry) Markdown() string {
	var b strings.Builder
	b.WriteString("**" + e.Title + "**")
	if e.Explanation != "" {
		b.WriteString(" " + e.Explanation)
	}

	if e.Example == "" {
		return b.String()
	}

	b.WriteString("\n\n**Example**:  \n")
	b.WriteString("`" + e.Example + "`  \n")
	if e.Note != "" {
		b.WriteString("(" + e.Note + ")")
	}

	return b.String()
}

// catalog is indexed by Category. The keyed array literal and the
// TestCatalogComplete test keep it exhaustive.
var catalog = [numCategories]Entry{
	MissingSubject: {
		Title:       "No subject was detected.",
		Explanation: "It is advisable to include a subject in your sentence. A subject answers **who** or **what** performs the action in the sentence.",
		Example:     "I went to the park.",
		Note:        `Here, "I" is the subject performing the action.`,
	},
	MissingVerb: {
		Title:       "No verb was detected.",
		Explanation: "A verb describes the action being performed in the sentence.",
		Example:     "She ate lunch.",
		Note:        `Here, "ate" is the verb describing what the subject did.`,
	},
	MissingObject: {
		Title:       "No object was detected.",
		Explanation: "The object receives the action of the verb.",
		Example:     "She ate the cake.",
		Note:        `Here, "the cake" is the object receiving the action.`,
	},
	PassiveVoice: {
		Title:       "The sentence is in passive voice.",
		Explanation: "We suggest changing it to active voice for clearer expression.",
		Example:     "John threw the ball.",
		Note:        "Active voice is often more direct and clear.",
	},
	AdverbPlacement: {
		Title:       "The adverb is incorrectly placed.",
		Explanation: "Adverbs should generally come after the subject and verb or at the end of the sentence.",
		Example:     "She quickly ran to the park.",
		Note:        `Correct placement of adverb "quickly"`,
	},
	NegativeSentence: {
		Title:       "Negative sentences detected.",
		Explanation: "It’s important to use the right placement for negations to make the sentence clear.",
		Example:     "She does not like coffee.",
		Note:        "Negative sentences are perfectly valid but should be placed properly for clarity.",
	},
	MultipleSubjects: {
		Title:       "Multiple subjects detected.",
		Explanation: "If there are multiple subjects, ensure that the verb agrees with both subjects.",
		Example:     "John and Mary went to the park.",
		Note:        "This is a valid sentence, but keep subject-verb agreement in mind.",
	},
	ComplexSentence: {
		Title:       "Complex sentence detected.",
		Explanation: "Consider breaking it into shorter sentences or using proper conjunctions for clarity.",
		Example:     "She went to the store, and then she went home.",
		Note:        "Proper punctuation and conjunctions can help make complex sentences more readable.",
	},
	CompoundSentence: {
		Title:       "Compound sentence detected.",
		Explanation: "Ensure that each clause is properly connected with conjunctions and that subject-verb agreement is maintained.",
		Example:     "I went to the store, and I bought coffee.",
		Note:        "Use conjunctions like 'and', 'but', etc., for smooth transitions.",
	},
	IncorrectNounUsage: {
		Title:       "Incorrect noun usage detected.",
		Explanation: "Ensure that your sentence uses nouns correctly, and avoid confusion.",
		Example:     "She enjoys running.",
		Note:        `The gerund "running" works better here than the noun "run."`,
	},
	DoubleNegative: {
		Title:       "Double negative detected.",
		Explanation: "Double negatives can create confusion. Avoid using two negative words in the same sentence unless necessary.",
		Example:     "She doesn't need any help.",
		Note:        `Avoid saying "She doesn't need no help."`,
	},
	MisplacedModifier: {
		Title:       "Misplaced modifier detected.",
		Explanation: "Modifiers should be placed near the word they modify to avoid confusion.",
		Example:     "She quickly ran to the store.",
		Note:        `The modifier "quickly" should describe the action "ran."`,
	},
	RunOnSentence: {
		Title:       "Run-on sentence detected.",
		Explanation: "Consider splitting the sentence into two or more sentences or using proper punctuation.",
		Example:     "She went to the store, she bought some coffee.",
		Note:        "This should be two sentences: `She went to the store. She bought some coffee.`",
	},
	CommaSplice: {
		Title:       "Comma splice detected.",
		Explanation: "You should avoid using commas to join independent clauses without a conjunction or semicolon.",
		Example:     "She went to the store, she bought coffee.",
		Note:        "Corrected: `She went to the store; she bought coffee.`",
	},
	InvertedOrder: {
		Title:       "The sentence order is inverted.",
		Explanation: "For NLP and SEO purposes, it is advisable to follow the standard Subject-Verb-Object (SVO) structure.",
		Example:     "She ran to the park.",
		Note:        `Standard order with subject "She" performing the action "ran".`,
	},
	WrongWordOrder: {
		Title:       "Incorrect word order detected.",
		Explanation: "It’s important to follow the correct word order for clearer writing and better SEO.",
		Example:     "The cat quickly ran to the park.",
		Note:        "In NLP-friendly content, adverbs should come after the verb.",
	},
	ExcessivePassiveVoice: {
		Title:       "Excessive use of passive voice detected.",
		Explanation: "Too many passive constructions can make your content less engaging. Try using active voice for more clarity.",
		Example:     "The cake was baked by Mary.",
		Note:        "Rephrased to active voice: `Mary baked the cake.`",
	},
	CorrectOrder: {
		Title: "Sentence is in correct SVM/SVO order. You can proceed.",
	},
	Incomplete: {
		Title: "Something is missing from your sentence (subject, verb, or object).",
	},
}

func init() {
	for c := range catalog {
		catalog[c].Category = Category(c)
	}
}

// Lookup returns the catalog entry of c.
func Lookup(c Category) (Entry, error) {
	if !c.Valid() {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}

	return catalog[c], nil
}

// Message returns the formatted message of c.
func Message(c Category) (string, error) {
	e, err := Lookup(c)
	if err != nil {
		return "", err
	}

	return e.Markdown(), nil
}

// Catalog returns a copy of every entry in declaration order.
func Catalog() []Entry {
	entries := make([]Entry, len(catalog))
	copy(entries, catalog[:])
	return entries
}
