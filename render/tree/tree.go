// Package tree draws the dependency tree of a parsed sentence.
package tree

import (
	"fmt"
	"html"
	"strings"

	sent "github.com/revelaction/svocheck/sentence"
)

const (
	indent = "  "

	wordSpacing = 110
	arcStep     = 36
	marginX     = 40
	marginY     = 20
	arrowSize   = 5
)

// children returns the dependents of each token, by slice position, and the
// positions of the roots. A token is a root when it is its own head or when
// its head is not in the sentence.
func children(tokens []sent.Token) (map[int][]int, []int) {
	pos := positions(tokens)

	kids := map[int][]int{}
	var roots []int
	for i, t := range tokens {
		h, ok := pos[t.Head]
		if !ok || h == i {
			roots = append(roots, i)
			continue
		}

		kids[h] = append(kids[h], i)
	}

	return kids, roots
}

func positions(tokens []sent.Token) map[int]int {
	pos := make(map[int]int, len(tokens))
	for i, t := range tokens {
		pos[t.Index] = i
	}

	return pos
}

// Text renders the tree as indented lines, roots first, each dependent below
// its head in sentence order:
//
//	threw (ROOT, VERB)
//	  John (nsubj, PROPN)
//	  ball (dobj, NOUN)
//	    the (det, DET)
//	  . (punct, PUNCT)
func Text(tokens []sent.Token) string {
	kids, roots := children(tokens)

	var b strings.Builder
	seen := map[int]bool{}

	var walk func(i, depth int)
	walk = func(i, depth int) {
		if seen[i] {
			return
		}
		seen[i] = true

		t := tokens[i]
		fmt.Fprintf(&b, "%s%s (%s, %s)\n", strings.Repeat(indent, depth), t.Text, t.Dep, t.Pos)
		for _, k := range kids[i] {
			walk(k, depth+1)
		}
	}

	for _, r := range roots {
		walk(r, 0)
	}

	// heads forming a cycle have no root
	for i := range tokens {
		walk(i, 0)
	}

	return b.String()
}

// SVG renders the tree as an arc diagram: the words on one line, one labeled
// arc from each head to its dependent. The arrow points to the dependent.
func SVG(tokens []sent.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	pos := positions(tokens)

	maxLevel := 1
	for i, t := range tokens {
		if h, ok := pos[t.Head]; ok && h != i {
			if l := abs(h - i); l > maxLevel {
				maxLevel = l
			}
		}
	}

	wordY := marginY + maxLevel*arcStep + 20
	width := 2*marginX + (len(tokens)-1)*wordSpacing
	height := wordY + 40

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" class="svocheck-tree" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	b.WriteString("\n")

	for i, t := range tokens {
		x := marginX + i*wordSpacing
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle"><tspan class="word">%s</tspan><tspan x="%d" dy="16" class="pos">%s</tspan></text>`,
			x, wordY, html.EscapeString(t.Text), x, html.EscapeString(t.Pos))
		b.WriteString("\n")
	}

	for i, t := range tokens {
		h, ok := pos[t.Head]
		if !ok || h == i {
			continue
		}

		writeArc(&b, h, i, wordY, html.EscapeString(t.Dep))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writeArc(b *strings.Builder, head, dep, wordY int, label string) {
	from, to := head, dep
	if from > to {
		from, to = to, from
	}

	x1 := marginX + from*wordSpacing
	x2 := marginX + to*wordSpacing
	y := wordY - 16
	top := y - (to-from)*arcStep

	fmt.Fprintf(b, `<path class="arc" d="M%d,%d C%d,%d %d,%d %d,%d" fill="none" stroke="currentColor"/>`,
		x1, y, x1, top, x2, top, x2, y)
	b.WriteString("\n")

	fmt.Fprintf(b, `<text class="label" x="%d" y="%d" text-anchor="middle" font-size="11">%s</text>`,
		(x1+x2)/2, y-(to-from)*arcStep*3/4-4, label)
	b.WriteString("\n")

	ax := marginX + dep*wordSpacing
	fmt.Fprintf(b, `<path class="arrow" d="M%d,%d L%d,%d L%d,%d Z" fill="currentColor"/>`,
		ax, y, ax-arrowSize, y-2*arrowSize, ax+arrowSize, y-2*arrowSize)
	b.WriteString("\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
