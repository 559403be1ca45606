//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package logic

// Parse converts text into a normalized token sequence. Each operator
// spelling becomes its canonical token; every other code point becomes
// a literal token.
func (t *Table) Parse(text string) Tokens {
	ts, _ := t.Simplify(Literals(text))
	return ts
}

// Simplify collapses operator spellings found in ts into canonical operator
// tokens. It returns the normalized sequence and the number of tokens removed.
// Simplify is idempotent and does not modify ts.
func (t *Table) Simplify(ts Tokens) (Tokens, int) {
	out, _ := t.SimplifyAt(ts, 0)
	return out, len(ts) - len(out)
}

// SimplifyAt normalizes ts like Simplify and maps pos, a boundary between
// tokens of ts, to the corresponding boundary of the result. A boundary
// inside a collapsed spelling moves to just after its operator.
func (t *Table) SimplifyAt(ts Tokens, pos int) (Tokens, int) {
	current := ts
	for {
		next, groups := t.scan(current)
		pos = mapBoundary(groups, pos)
		if next.Equal(current) {
			return next, pos
		}
		current = next
	}
}

// scan makes one left-to-right pass, replacing the longest spelling at each
// position. groups[i] is the number of input tokens behind output token i.
func (t *Table) scan(ts Tokens) (Tokens, []int) {
	out := make(Tokens, 0, len(ts))
	groups := make([]int, 0, len(ts))
	for i := 0; i < len(ts); {
		k, n := t.match(ts[i:])
		if n == 0 {
			out = append(out, ts[i])
			groups = append(groups, 1)
			i++
			continue
		}
		out = append(out, Operator(k))
		groups = append(groups, n)
		i += n
	}
	return out, groups
}

// match finds the first spelling, in table order, that ts begins with.
func (t *Table) match(ts Tokens) (Kind, int) {
	for _, sp := range t.spellings {
		if n, ok := t.cover(ts, sp.text); ok {
			return sp.kind, n
		}
	}
	return KindLiteral, 0
}

// cover reports whether a prefix of ts spells text exactly, and how many
// tokens it takes. An operator token stands for any of its own spellings.
func (t *Table) cover(ts Tokens, text []rune) (int, bool) {
	if len(text) == 0 {
		return 0, true
	}
	if len(ts) == 0 {
		return 0, false
	}
	tok := ts[0]
	if tok.Kind == KindLiteral {
		if tok.Char != text[0] {
			return 0, false
		}
		n, ok := t.cover(ts[1:], text[1:])
		return n + 1, ok
	}
	for _, form := range t.forms[tok.Kind] {
		if !hasPrefix(text, form) {
			continue
		}
		if n, ok := t.cover(ts[1:], text[len(form):]); ok {
			return n + 1, true
		}
	}
	return 0, false
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// mapBoundary counts the output tokens whose input group starts before pos.
func mapBoundary(groups []int, pos int) int {
	start, n := 0, 0
	for _, g := range groups {
		if start >= pos {
			break
		}
		start += g
		n++
	}
	return n
}
