package alphabet

// X11 keysyms for the characters an alphabet may use. For digits and
// lowercase Latin letters the keysym equals the Latin-1 code point.
const (
	keysymDigit0 uint32 = 0x0030
	keysymDigit9 uint32 = 0x0039
	keysymLowerA uint32 = 0x0061
	keysymLowerZ uint32 = 0x007a
)

// Keysym returns the X11 keysym for s, if s is one of 0-9 or a-z.
func Keysym(s Symbol) (uint32, bool) {
	ks := uint32(s)
	if validKeysym(ks) {
		return ks, true
	}

	return 0, false
}

// FromKeysym returns the symbol for an X11 keysym, if it is one of 0-9 or a-z.
// Other keysyms (modifiers, function keys, uppercase letters) report false;
// folding case or mapping keypads is up to the caller.
func FromKeysym(ks uint32) (Symbol, bool) {
	if validKeysym(ks) {
		return Symbol(ks), true
	}

	return 0, false
}

func validKeysym(ks uint32) bool {
	return (ks >= keysymDigit0 && ks <= keysymDigit9) ||
		(ks >= keysymLowerA && ks <= keysymLowerZ)
}

// Lookup resolves a keysym against a, reporting false when the key is not part of it.
func (a Alphabet) Lookup(ks uint32) (Symbol, bool) {
	s, ok := FromKeysym(ks)
	if !ok || !a.Contains(s) {
		return 0, false
	}

	return s, true
}
