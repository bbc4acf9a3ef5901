package cheats

import "fmt"

// Patch is a single decoded cheat code normalized from either the Game
// Genie or GameShark wire format into one address/value/compare shape.
type Patch struct {
	Address    uint16
	Value      uint8
	Compare    uint8
	HasCompare bool
}

// Engine holds the decoded patches currently in effect and applies
// them as a read-intercept against cartridge ROM reads. An Engine with
// no patches added is a no-op, matching the spec's "additive, defaults
// to empty/disabled" requirement.
type Engine struct {
	patches []Patch
}

// NewEngine returns an Engine with no patches loaded.
func NewEngine() *Engine {
	return &Engine{}
}

// Decode parses a single code in either Game Genie (AAA-BBB-CCC,
// 11 characters including hyphens) or GameShark (AABBCCDD, 8 hex
// digits) format.
func Decode(code string) (Patch, error) {
	switch len(code) {
	case 11:
		c, err := parseCode(code)
		if err != nil {
			return Patch{}, err
		}
		return Patch{Address: c.Address, Value: c.NewData, Compare: c.OldData, HasCompare: true}, nil
	case 8:
		c, err := parseGameSharkCode(code)
		if err != nil {
			return Patch{}, err
		}
		return Patch{Address: c.Address, Value: c.NewData}, nil
	default:
		return Patch{}, fmt.Errorf("cheats: invalid code length: %d", len(code))
	}
}

// Add decodes code and adds it as an enabled patch.
func (e *Engine) Add(code string) error {
	p, err := Decode(code)
	if err != nil {
		return err
	}
	e.patches = append(e.patches, p)
	return nil
}

// Intercept returns the patched value for a ROM read at address, if
// any loaded patch applies. Game Genie patches only apply when the
// ROM's real stored byte matches the code's expected old value.
func (e *Engine) Intercept(address uint16, oldValue uint8) (uint8, bool) {
	for _, p := range e.patches {
		if p.Address != address {
			continue
		}
		if p.HasCompare && p.Compare != oldValue {
			continue
		}
		return p.Value, true
	}
	return 0, false
}
