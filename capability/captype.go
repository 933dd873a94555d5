package capability

import "fmt"

// CapType selects one of the kernel's per-thread capability sets.
//
// Only EFFECTIVE, PERMITTED and INHERITABLE are carried by the capget/capset
// structure; BOUNDING and AMBIENT are valid selector values but are managed
// through prctl and are rejected by every operation in this repository.
type CapType int

const (
	EFFECTIVE CapType = iota
	PERMITTED
	INHERITABLE
	BOUNDING
	AMBIENT
)

func (t CapType) String() string {
	switch t {
	case EFFECTIVE:
		return "effective"
	case PERMITTED:
		return "permitted"
	case INHERITABLE:
		return "inheritable"
	case BOUNDING:
		return "bounding"
	case AMBIENT:
		return "ambient"
	}
	return fmt.Sprintf("unknown-cap-type-%d", int(t))
}

// ParseCapType maps a selector name, as printed by String, back to its CapType.
func ParseCapType(name string) (CapType, error) {
	for _, t := range []CapType{EFFECTIVE, PERMITTED, INHERITABLE, BOUNDING, AMBIENT} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("capability: unknown capability set %q", name)
}
