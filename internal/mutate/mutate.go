package mutate

import (
	"fmt"
	"math/rand"
)

// Mutator applies an ordered rule list with one shared generator.
// It is not safe for concurrent use.
type Mutator struct {
	Rules []Rule
	rng   *rand.Rand
}

func New(rules []Rule, seed int64) *Mutator {
	return &Mutator{Rules: rules, rng: rand.New(rand.NewSource(seed))}
}

func (m *Mutator) Mutate(password string) (string, error) {
	if password == "" {
		return password, nil
	}
	pw := []rune(password)
	for _, r := range m.Rules {
		if err := r.Apply(pw, m.rng); err != nil {
			return "", fmt.Errorf("apply %s: %w", r.Name(), err)
		}
	}
	return string(pw), nil
}

func (m *Mutator) RuleNames() []string {
	names := make([]string, len(m.Rules))
	for i, r := range m.Rules {
		names[i] = r.Name()
	}
	return names
}
