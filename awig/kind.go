package awig

// Kind is the kind of a storage element.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_REGISTER = Kind(0) // register
	KIND_MEMORY   = Kind(1) // memory
)

// args returns the payload arguments of an accessor of this kind.
func (k Kind) args() []string {
	if k == KIND_MEMORY {
		return []string{ARG_ADDR, ARG_SEL}
	}
	return []string{ARG_SEL}
}
