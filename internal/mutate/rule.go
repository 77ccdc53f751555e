package mutate

import (
	"math/rand"
	"unicode"
)

// Rule mutates a password in place. Implementations never change its length.
type Rule interface {
	Name() string
	Apply(pw []rune, rng *rand.Rand) error
}

// SubstituteLetter replaces one random character with a different
// lowercase letter.
type SubstituteLetter struct{}

func (r *SubstituteLetter) Name() string { return "SubstituteLetter" }

func (r *SubstituteLetter) Apply(pw []rune, rng *rand.Rand) error {
	if len(pw) == 0 {
		return nil
	}
	idx := rng.Intn(len(pw))
	orig := pw[idx]
	for pw[idx] == orig {
		pw[idx] = 'a' + rune(rng.Intn(26))
	}
	return nil
}

// CapitalizeLetter uppercases one random character if it is an ASCII
// lowercase letter.
type CapitalizeLetter struct{}

func (r *CapitalizeLetter) Name() string { return "CapitalizeLetter" }

func (r *CapitalizeLetter) Apply(pw []rune, rng *rand.Rand) error {
	if len(pw) == 0 {
		return nil
	}
	idx := rng.Intn(len(pw))
	if isLowerASCII(pw[idx]) {
		pw[idx] -= 'a' - 'A'
	}
	return nil
}

type CapitalizeAll struct{}

func (r *CapitalizeAll) Name() string { return "CapitalizeAll" }

func (r *CapitalizeAll) Apply(pw []rune, rng *rand.Rand) error {
	for i, c := range pw {
		if isLowerASCII(c) {
			pw[i] = unicode.ToUpper(c)
		}
	}
	return nil
}

type LowerAll struct{}

func (r *LowerAll) Name() string { return "LowerAll" }

func (r *LowerAll) Apply(pw []rune, rng *rand.Rand) error {
	for i, c := range pw {
		if c >= 'A' && c <= 'Z' {
			pw[i] = unicode.ToLower(c)
		}
	}
	return nil
}

func isLowerASCII(c rune) bool {
	return c >= 'a' && c <= 'z'
}
