package resolver

import (
	"slices"
	"strings"
	"testing"

	"github.com/ppiankov/footbot/internal/knowledge"
)

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestResolve_KeywordMatch(t *testing.T) {
	base := knowledge.Default()
	r := New(base, fixedRand(1))

	got := r.Resolve("Me fale sobre o MESSI")
	if got != base.Keywords[2].Answers[1] {
		t.Errorf("expected second messi answer, got %q", got)
	}
}

func TestResolve_FirstKeywordWins(t *testing.T) {
	base := knowledge.Default()
	r := New(base, fixedRand(0))

	// "messi" and "copa do mundo" both match; "copa do mundo" is registered first.
	got, src := r.ResolveWithSource("o messi ganhou a copa do mundo?")
	if src != SourceKeyword {
		t.Fatalf("expected keyword source, got %s", src)
	}
	if got != base.Keywords[0].Answers[0] {
		t.Errorf("expected copa do mundo answer, got %q", got)
	}
}

func TestResolve_OrderIsTableOrder(t *testing.T) {
	base := &knowledge.Base{
		Keywords: []knowledge.Entry{
			{Key: "b", Answers: []string{"answer b"}},
			{Key: "a", Answers: []string{"answer a"}},
		},
		OutOfDomain: "default",
	}
	r := New(base, fixedRand(0))

	for i := 0; i < 20; i++ {
		if got := r.Resolve("a b"); got != "answer b" {
			t.Fatalf("expected earliest registered keyword to win, got %q", got)
		}
	}
}

func TestResolve_FAQ(t *testing.T) {
	base := knowledge.Default()
	r := New(base, fixedRand(0))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "input contains question",
			input: "Qual o maior clube do mundo? Quero saber",
			want:  base.FAQ[1].Answers[0],
		},
		{
			name:  "question contains input",
			input: "maior clube",
			want:  base.FAQ[1].Answers[0],
		},
		{
			name:  "selection question",
			input: "qual seleção tem mais títulos",
			want:  base.FAQ[3].Answers[0],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src := r.ResolveWithSource(tt.input)
			if src != SourceFAQ {
				t.Errorf("expected faq source, got %s", src)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolve_DomainTokenFact(t *testing.T) {
	base := knowledge.Default()
	r := New(base, fixedRand(3))

	got, src := r.ResolveWithSource("eu gosto muito de futebol")
	if src != SourceFact {
		t.Fatalf("expected fact source, got %s", src)
	}
	want := base.FactPrefix + base.Facts[3] + base.FactSuffix
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolve_DefaultVerbatim(t *testing.T) {
	base := knowledge.Default()
	r := New(base, nil)

	inputs := []string{
		"qual a capital da frança?",
		"",
		"   ",
		"pele", // accents are matched literally
	}
	for _, in := range inputs {
		if got := r.Resolve(in); got != base.OutOfDomain {
			t.Errorf("input %q: expected default message, got %q", in, got)
		}
	}
}

func TestResolve_AccentsAreLiteral(t *testing.T) {
	base := knowledge.Default()
	r := New(base, fixedRand(0))

	_, src := r.ResolveWithSource("Quem foi PELÉ?")
	if src != SourceKeyword {
		t.Errorf("expected keyword match for accented input, got %s", src)
	}
}

func TestResolve_KeywordNeverFallsThrough(t *testing.T) {
	base := knowledge.Default()
	r := New(base, nil)

	for _, entry := range base.Keywords {
		input := "conte algo sobre " + entry.Key + " e o jogo de futebol"
		got := r.Resolve(input)

		found := false
		for _, a := range entry.Answers {
			if got == a {
				found = true
				break
			}
		}
		// Earlier keywords may also appear in the input; only check when this one is first.
		if !found && firstMatch(base, input) == entry.Key {
			t.Errorf("keyword %q: answer %q is not one of its candidates", entry.Key, got)
		}
		if strings.HasPrefix(got, base.FactPrefix) || got == base.OutOfDomain {
			t.Errorf("keyword %q: got fallback answer %q", entry.Key, got)
		}
	}
}

func firstMatch(base *knowledge.Base, input string) string {
	input = strings.ToLower(input)
	for _, e := range base.Keywords {
		if strings.Contains(input, e.Key) {
			return e.Key
		}
	}
	return ""
}

func TestResolve_Totality(t *testing.T) {
	r := New(nil, nil)
	inputs := []string{"a", "?", "copa", "time", "🚨", "Quando é a próxima Copa do Mundo?", strings.Repeat("x", 1000)}
	for _, in := range inputs {
		if got := r.Resolve(in); got == "" {
			t.Errorf("input %q: expected non-empty answer", in)
		}
	}
}

func TestWithSeed_Deterministic(t *testing.T) {
	inputs := []string{"messi", "quero um fato sobre futebol", "cristiano ronaldo"}
	for _, in := range inputs {
		a := WithSeed(nil, 42).Resolve(in)
		b := WithSeed(nil, 42).Resolve(in)
		if a != b {
			t.Errorf("input %q: expected identical answers for the same seed, got %q and %q", in, a, b)
		}
	}
}

func TestSuggestions(t *testing.T) {
	r := New(nil, nil)
	if len(r.Suggestions()) == 0 {
		t.Error("expected suggested questions")
	}
}

func TestSampleSuggestions(t *testing.T) {
	r := WithSeed(nil, 7)
	all := r.Suggestions()

	got := r.SampleSuggestions(4)
	if len(got) != 4 {
		t.Fatalf("expected 4 suggestions, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = true
		if !slices.Contains(all, s) {
			t.Errorf("unknown suggestion %q", s)
		}
	}

	if n := len(r.SampleSuggestions(len(all) + 10)); n != len(all) {
		t.Errorf("expected sample capped at %d, got %d", len(all), n)
	}
	if all[0] != knowledge.Default().Suggestions[0] {
		t.Error("expected sampling not to reorder the knowledge base")
	}
}
