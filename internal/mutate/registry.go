package mutate

import (
	"fmt"
	"math/rand"
	"strings"
)

// PluginFunc is the signature plugins export under the Rules symbol.
type PluginFunc func(password string, rng *rand.Rand) string

type Factory func() Rule

var registry = map[string]Factory{}

func Register(name string, factory Factory) {
	if name == "" || factory == nil {
		return
	}
	registry[strings.ToLower(name)] = factory
}

// Build resolves a rule by name. Registered names take precedence over
// the built-in ones.
func Build(name string) (Rule, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if factory, ok := registry[key]; ok {
		return factory(), nil
	}
	if factory, ok := builtins[key]; ok {
		return factory(), nil
	}
	return nil, fmt.Errorf("unknown rule: %s", name)
}

var builtins = map[string]Factory{
	"substitute":       func() Rule { return &SubstituteLetter{} },
	"substituteletter": func() Rule { return &SubstituteLetter{} },
	"capitalize":       func() Rule { return &CapitalizeLetter{} },
	"capitalizeletter": func() Rule { return &CapitalizeLetter{} },
	"capitalizeall":    func() Rule { return &CapitalizeAll{} },
	"lowerall":         func() Rule { return &LowerAll{} },
}

// IsBuiltin reports whether name resolves to a built-in rule when nothing
// was registered under it.
func IsBuiltin(name string) bool {
	_, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// BuildAll resolves names in order and stops at the first unknown one.
func BuildAll(names []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		r, err := Build(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func registerPlugin(name string, fn PluginFunc) {
	Register(name, func() Rule {
		return &PluginRule{name: name, fn: fn}
	})
}

type PluginRule struct {
	name string
	fn   PluginFunc
}

func (r *PluginRule) Name() string { return r.name }

func (r *PluginRule) Apply(pw []rune, rng *rand.Rand) error {
	if r.fn == nil {
		return fmt.Errorf("plugin rule %s not initialized", r.name)
	}
	out := []rune(r.fn(string(pw), rng))
	if len(out) != len(pw) {
		return fmt.Errorf("plugin rule %s changed password length from %d to %d", r.name, len(pw), len(out))
	}
	copy(pw, out)
	return nil
}
