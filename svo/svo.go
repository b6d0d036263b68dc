// Package svo extracts the subject, verb and object of a parsed sentence and
// checks its voice.
package svo

import (
	"strings"

	sent "github.com/revelaction/svocheck/sentence"
)

const (
	verbPos = "VERB"

	subjectMarker = "subj"
	objectMarker  = "obj"

	prepObjectDep = "pobj"
	agentDep      = "agent"
	dativeDep     = "dative"
)

// Role is the sentence role a token was assigned to.
type Role int

const (
	NoRole Role = iota
	Subject
	Verb
	Object
)

func (r Role) String() string {
	switch r {
	case Subject:
		return "subject"
	case Verb:
		return "verb"
	case Object:
		return "object"
	}

	return "none"
}

// Triple holds the surface text of the first subject, verb and object found
// in a sentence. An empty field means the role is absent.
type Triple struct {
	Subject string `json:"subject,omitempty"`
	Verb    string `json:"verb,omitempty"`
	Object  string `json:"object,omitempty"`

	// sentence indexes of the tokens that filled the roles, -1 if absent
	subjectIndex int
	verbIndex    int
	objectIndex  int
}

func (t Triple) HasSubject() bool { return t.Subject != "" }
func (t Triple) HasVerb() bool    { return t.Verb != "" }
func (t Triple) HasObject() bool  { return t.Object != "" }

// Complete reports whether all three roles were found.
func (t Triple) Complete() bool {
	return t.HasSubject() && t.HasVerb() && t.HasObject()
}

// RoleOf returns the role the token at sentence index idx was assigned to.
func (t Triple) RoleOf(idx int) Role {
	switch {
	case t.HasSubject() && t.subjectIndex == idx:
		return Subject
	case t.HasVerb() && t.verbIndex == idx:
		return Verb
	case t.HasObject() && t.objectIndex == idx:
		return Object
	}

	return NoRole
}

// Extract scans the tokens in parse order and keeps the first token found for
// each role.
//
// The role tests run in a fixed order, subject, verb, object, and the first
// test a token passes decides its role: a token is never considered for a
// later role, even when the role it matched is already taken.
func Extract(tokens []sent.Token) Triple {
	triple := Triple{subjectIndex: -1, verbIndex: -1, objectIndex: -1}

	for _, t := range tokens {
		switch {
		case IsSubject(t):
			if !triple.HasSubject() {
				triple.Subject = t.Text
				triple.subjectIndex = t.Index
			}
		case IsVerb(t):
			if !triple.HasVerb() {
				triple.Verb = t.Text
				triple.verbIndex = t.Index
			}
		case IsObject(tokens, t):
			if !triple.HasObject() {
				triple.Object = t.Text
				triple.objectIndex = t.Index
			}
		}
	}

	return triple
}

// IsSubject reports whether the dependency label of t belongs to the subject
// family (nsubj, nsubjpass, csubj, expl:subj...).
func IsSubject(t sent.Token) bool {
	return strings.Contains(strings.ToLower(t.Dep), subjectMarker)
}

// IsVerb reports whether t is tagged as a verb. Auxiliaries are not verbs.
func IsVerb(t sent.Token) bool {
	return t.Pos == verbPos
}

// IsObject reports whether the dependency label of t belongs to the object
// family: direct and indirect objects, datives, and the object of a passive
// agent phrase ("by Mary"). Objects of other prepositions ("to the park") are
// not objects of the verb.
func IsObject(tokens []sent.Token, t sent.Token) bool {
	dep := strings.ToLower(t.Dep)

	if dep == dativeDep {
		return true
	}

	if !strings.Contains(dep, objectMarker) {
		return false
	}

	if dep != prepObjectDep {
		return true
	}

	head, ok := sent.HeadToken(tokens, t)
	return ok && strings.ToLower(head.Dep) == agentDep
}
