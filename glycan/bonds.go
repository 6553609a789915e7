// Package glycan extracts bond triples from IUPAC-condensed glycan strings.
//
// A glycan string encodes a tree of monosaccharides read toward the reducing
// end, e.g. "Gal(b1-4)[Fuc(a1-3)]GlcNAc": bonds sit in parentheses after the
// sugar they originate from, and square brackets delimit side branches that
// attach to the next sugar at the enclosing level.
package glycan

// edge is a sugar waiting for its parent, together with the bond it will
// attach through.
type edge struct {
	sugar string
	bond  string
}

// ExtractBonds returns every bond in the glycan as "sugarA*bond*sugarB"
// triples, where sugarA is the child and sugarB the parent toward the
// reducing end. Triples are emitted in left-to-right order of their parent
// sugar, outer-chain edges before branch edges attaching to the same parent.
//
// Bracket balance is a precondition: unbalanced strings produce a
// best-effort result, never a panic.
func ExtractBonds(glycan string) []string {
	var (
		triples []string
		stack   [][]edge // pending edges of enclosing bracket levels
		pending []edge   // edges at the current level awaiting a parent
	)

	i := 0
	for i < len(glycan) {
		switch glycan[i] {
		case '[':
			stack = append(stack, pending)
			pending = nil
			i++
		case ']':
			// The branch is complete; its dangling edges attach to the
			// next sugar at the enclosing level, after that level's own.
			if n := len(stack); n > 0 {
				pending = append(stack[n-1], pending...)
				stack = stack[:n-1]
			}
			i++
		case '(':
			j := i + 1
			for j < len(glycan) && glycan[j] != ')' {
				j++
			}
			if len(pending) > 0 {
				pending[len(pending)-1].bond = glycan[i+1 : j]
			}
			if j < len(glycan) {
				j++ // consume ')'
			}
			i = j
		default:
			j := i
			for j < len(glycan) && !isStructural(glycan[j]) {
				j++
			}
			sugar := glycan[i:j]
			i = j
			if sugar == "" {
				continue
			}
			// This sugar is the parent of every pending edge at this level.
			for _, e := range pending {
				triples = append(triples, e.sugar+"*"+e.bond+"*"+sugar)
			}
			pending = pending[:0]
			pending = append(pending, edge{sugar: sugar})
		}
	}
	return triples
}

func isStructural(c byte) bool {
	return c == '(' || c == ')' || c == '[' || c == ']'
}
