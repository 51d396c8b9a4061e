package cubelet

import "fmt"

func invalidState(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidState}, args...)...)
}

// Validate checks the puzzle invariants:
//
//   - the 26 pieces occupy the 26 non-zero positions, each exactly once
//   - a piece shows a side color on exactly the faces that lie on the
//     puzzle's boundary at its position, and interior elsewhere
//   - no piece carries a color twice or two opposite side colors
//   - no two pieces carry the same set of side colors
//
// Together these mean every piece still holds the six colors it started
// with. A State built by InitialState and ApplyMove always passes; a
// failure means the state was corrupted. The returned error wraps
// ErrInvalidState.
func Validate(s State) error {
	var occupied [27]bool
	// Indexed by the bit set of side colors a piece carries (bits 1-6).
	var seenSets [1 << 7]bool
	var setOwner [1 << 7]Position

	for i, p := range s.pieces {
		if !p.Position.IsValid() {
			return invalidState("piece %d at invalid position %v", i, p.Position)
		}
		idx := p.Position.index()
		if occupied[idx] {
			return invalidState("duplicate position %v", p.Position)
		}
		occupied[idx] = true

		var set uint8
		for _, d := range Directions {
			c := p.Colors[d]
			onBoundary := p.Position[d.Axis()] == d.Sign()
			if c == Interior {
				if onBoundary {
					return invalidState("piece at %v shows interior on boundary face %v", p.Position, d)
				}
				continue
			}
			if !c.IsCanonical() {
				return invalidState("piece at %v has unknown color %d on face %v", p.Position, c, d)
			}
			if !onBoundary {
				return invalidState("piece at %v shows %s on hidden face %v", p.Position, c.Name(), d)
			}
			bit := uint8(1) << c
			if set&bit != 0 {
				return invalidState("piece at %v shows %s twice", p.Position, c.Name())
			}
			set |= bit
		}

		for _, d := range []Direction{PosX, PosY, PosZ} {
			pair := uint8(1)<<d.Color() | uint8(1)<<d.Opposite().Color()
			if set&pair == pair {
				return invalidState("piece at %v shows opposite colors %s and %s",
					p.Position, d.Color().Name(), d.Opposite().Color().Name())
			}
		}

		if seenSets[set] {
			return invalidState("pieces at %v and %v carry the same colors", setOwner[set], p.Position)
		}
		seenSets[set] = true
		setOwner[set] = p.Position
	}

	return nil
}
