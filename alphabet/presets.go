package alphabet

// Character pools for the presets below.
const (
	HomeRowPool   = "asdfghjkl"
	DigitsPool    = "1234567890"
	LowercasePool = "abcdefghijklmnopqrstuvwxyz"
)

// Ready-made alphabets. Order follows the pool strings, so HomeRow hands out
// 'a' first and Digits hands out '1' first.
var (
	HomeRow   = MustParse(HomeRowPool)
	Digits    = MustParse(DigitsPool)
	Lowercase = MustParse(LowercasePool)
)
