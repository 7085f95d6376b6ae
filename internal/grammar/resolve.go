package grammar

import (
	"sillyfmt/internal/token"
)

// Role is what the resolution pass decided about one token.
type Role uint8

const (
	// RoleNone: not a bracket, or not yet decided.
	RoleNone Role = iota
	// RoleOpen opens a container; see Resolution.End and Resolution.Closed.
	RoleOpen
	// RoleClose closes the container opened at Resolution.Partner.
	RoleClose
	// RoleStray is a ')' ']' '}' with no open to pair with. It reads as text.
	RoleStray
	// RoleConflicting is a '<' or '>' that could not pair. It reads as an operator.
	RoleConflicting
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleOpen:
		return "open"
	case RoleClose:
		return "close"
	case RoleStray:
		return "stray"
	case RoleConflicting:
		return "conflicting"
	default:
		return "Role(?)"
	}
}

// Resolution is the result of Resolve, indexed like the token slice.
type Resolution struct {
	Roles []Role
	// End holds, for every RoleOpen, the exclusive end of the container's
	// interior: the index of its close, of the close that cut it off, or
	// len(tokens).
	End []int
	// Closed is true for a RoleOpen whose close token was found.
	Closed []bool
	// Partner links a RoleClose to its open and a closed RoleOpen to its close.
	// -1 elsewhere.
	Partner []int
	// Cut lists opens of ( [ { that were terminated by a close of another family.
	Cut []int
	// Unterminated lists opens of ( [ { still pending at end of input.
	Unterminated []int
}

// Role returns the role of token i.
func (r *Resolution) Role(i int) Role { return r.Roles[i] }

// IsOpen reports whether token i opens a container.
func (r *Resolution) IsOpen(i int) bool { return r.Roles[i] == RoleOpen }

// Resolve decides every bracket in one linear pass over tokens. It never
// fails and allocates O(len(tokens)).
//
//   - ( [ { < push;
//   - a close pairs with the nearest open of its family: round, square and
//     curly opens above it are cut off at the close, angle opens above it
//     become conflicting;
//   - a close with no open of its family is stray, and every '<' above the
//     topmost non-angle open becomes conflicting;
//   - '>' pairs only with a '<' on top of the stack, otherwise it conflicts;
//   - at end of input pending ( [ { are unterminated, pending '<' conflict.
func Resolve(tokens []token.Token) Resolution {
	n := len(tokens)
	res := Resolution{
		Roles:   make([]Role, n),
		End:     make([]int, n),
		Closed:  make([]bool, n),
		Partner: make([]int, n),
	}
	for i := range res.Partner {
		res.Partner[i] = -1
	}

	stack := make([]int, 0, 16)
	conflictAngles := func(from int) {
		for _, idx := range stack[from:] {
			res.Roles[idx] = RoleConflicting
		}
	}

	for i, tok := range tokens {
		switch {
		case tok.Kind.IsOpen():
			stack = append(stack, i)
			res.Roles[i] = RoleOpen

		case tok.Kind == token.RAngle:
			if top := len(stack) - 1; top >= 0 && tokens[stack[top]].Kind == token.LAngle {
				res.pair(stack[top], i)
				stack = stack[:top]
				continue
			}
			res.Roles[i] = RoleConflicting

		case tok.Kind.IsClose():
			fam := tok.Family()
			match := -1
			for j := len(stack) - 1; j >= 0; j-- {
				if tokens[stack[j]].Family() == fam {
					match = j
					break
				}
			}
			if match < 0 {
				res.Roles[i] = RoleStray
				// '<' над последней не-угловой скобкой уже не закроются
				base := len(stack)
				for base > 0 && tokens[stack[base-1]].Kind == token.LAngle {
					base--
				}
				conflictAngles(base)
				stack = stack[:base]
				continue
			}
			for _, idx := range stack[match+1:] {
				if tokens[idx].Kind == token.LAngle {
					res.Roles[idx] = RoleConflicting
					continue
				}
				res.End[idx] = i
				res.Cut = append(res.Cut, idx)
			}
			res.pair(stack[match], i)
			stack = stack[:match]

		default:
			// остальные токены остаются RoleNone
		}
	}

	for _, idx := range stack {
		if tokens[idx].Kind == token.LAngle {
			res.Roles[idx] = RoleConflicting
			continue
		}
		res.End[idx] = n
		res.Unterminated = append(res.Unterminated, idx)
	}
	return res
}

func (r *Resolution) pair(open, closeIdx int) {
	r.Roles[open] = RoleOpen
	r.Roles[closeIdx] = RoleClose
	r.End[open] = closeIdx
	r.Closed[open] = true
	r.Partner[open] = closeIdx
	r.Partner[closeIdx] = open
}
