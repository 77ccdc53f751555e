package mutate

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestSubstituteLetter(t *testing.T) {
	inputs := []string{"abcdef", "zzzz", "PASS123", "a"}
	for _, in := range inputs {
		for seed := int64(0); seed < 200; seed++ {
			pw := []rune(in)
			if err := (&SubstituteLetter{}).Apply(pw, rand.New(rand.NewSource(seed))); err != nil {
				t.Fatal(err)
			}
			changed := 0
			for i := range pw {
				if pw[i] == rune(in[i]) {
					continue
				}
				changed++
				if pw[i] < 'a' || pw[i] > 'z' {
					t.Fatalf("%q seed %d: substituted %q is not lowercase", in, seed, pw[i])
				}
			}
			if changed != 1 {
				t.Fatalf("%q seed %d: expected exactly one change, got %q", in, seed, string(pw))
			}
		}
	}
}

func TestCapitalizeLetter(t *testing.T) {
	allowed := map[string]bool{"Abc": true, "aBc": true, "abC": true}
	m := New([]Rule{&CapitalizeLetter{}}, 1)
	for i := 0; i < 200; i++ {
		out, err := m.Mutate("abc")
		if err != nil {
			t.Fatal(err)
		}
		if !allowed[out] {
			t.Fatalf("unexpected output %q", out)
		}
	}
}

func TestCapitalizeLetterNeverLowercases(t *testing.T) {
	in := "aB3{`z~Q"
	m := New([]Rule{&CapitalizeLetter{}}, 7)
	for i := 0; i < 200; i++ {
		out, err := m.Mutate(in)
		if err != nil {
			t.Fatal(err)
		}
		for j, c := range out {
			orig := rune(in[j])
			if c == orig {
				continue
			}
			if orig < 'a' || orig > 'z' || c != orig-32 {
				t.Fatalf("position %d: %q became %q", j, orig, c)
			}
		}
	}
}

func TestWholePasswordRules(t *testing.T) {
	m := New([]Rule{&CapitalizeAll{}}, 1)
	out, err := m.Mutate("pa55word!ß")
	if err != nil {
		t.Fatal(err)
	}
	if out != "PA55WORD!ß" {
		t.Fatalf("unexpected output: %q", out)
	}
	m = New([]Rule{&LowerAll{}}, 1)
	out, err = m.Mutate("PaSS")
	if err != nil {
		t.Fatal(err)
	}
	if out != "pass" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestMutateKeepsLength(t *testing.T) {
	m := New(append(DefaultRules(), &CapitalizeAll{}, &SubstituteLetter{}), 99)
	for _, in := range []string{"x", "hunter2", "pässwörd", strings.Repeat("q", 120)} {
		out, err := m.Mutate(in)
		if err != nil {
			t.Fatal(err)
		}
		if len([]rune(out)) != len([]rune(in)) {
			t.Fatalf("length changed: %q -> %q", in, out)
		}
	}
	out, err := m.Mutate("")
	if err != nil || out != "" {
		t.Fatalf("empty password: %q, %v", out, err)
	}
}

func TestSameSeedSameOutput(t *testing.T) {
	a := New(DefaultRules(), 42)
	b := New(DefaultRules(), 42)
	for _, in := range []string{"password", "letmein", "qwerty"} {
		outA, _ := a.Mutate(in)
		outB, _ := b.Mutate(in)
		if outA != outB {
			t.Fatalf("seeded runs differ: %q vs %q", outA, outB)
		}
	}
}

func TestParseCodes(t *testing.T) {
	rules, invalid, err := ParseCodes([]string{"1", "9", "2", "1"})
	if err != nil {
		t.Fatal(err)
	}
	got := New(rules, 0).RuleNames()
	want := []string{"SubstituteLetter", "CapitalizeLetter", "SubstituteLetter"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("rules = %v, want %v", got, want)
	}
	if len(invalid) != 1 {
		t.Fatalf("expected one invalid token, got %v", invalid)
	}
	var ire *InvalidRuleError
	if !errors.As(invalid[0], &ire) || ire.Token != "9" {
		t.Fatalf("unexpected invalid error: %v", invalid[0])
	}

	rules, invalid, err = ParseCodes([]string{"9", "capitalize"})
	if !errors.Is(err, ErrNoValidRules) {
		t.Fatalf("expected ErrNoValidRules, got %v", err)
	}
	if rules != nil || len(invalid) != 2 {
		t.Fatalf("unexpected result: %v %v", rules, invalid)
	}

	rules, invalid, err = ParseCodes(nil)
	if err != nil || rules != nil || invalid != nil {
		t.Fatalf("empty tokens: %v %v %v", rules, invalid, err)
	}
}

func TestBuild(t *testing.T) {
	rules, err := BuildAll([]string{"Substitute", "capitalize", "CapitalizeAll", "lowerall"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"SubstituteLetter", "CapitalizeLetter", "CapitalizeAll", "LowerAll"}
	if got := New(rules, 0).RuleNames(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("rules = %v, want %v", got, want)
	}
	if _, err := Build("reverse"); err == nil {
		t.Fatal("expected error for unknown rule")
	}
}

func TestPluginRule(t *testing.T) {
	registerPlugin("TestSwapCase", func(s string, _ *rand.Rand) string {
		return strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' {
				return r - 32
			}
			return r + 32
		}, s)
	})
	registerPlugin("TestTruncate", func(s string, _ *rand.Rand) string {
		return s[:len(s)-1]
	})

	r, err := Build("testswapcase")
	if err != nil {
		t.Fatal(err)
	}
	out, err := New([]Rule{r}, 0).Mutate("abCD")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ABcd" {
		t.Fatalf("unexpected output: %q", out)
	}

	r, err = Build("testtruncate")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New([]Rule{r}, 0).Mutate("abcd"); err == nil {
		t.Fatal("expected length error from plugin rule")
	}
}
