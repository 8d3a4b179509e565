// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/case-tracker/pkg/types"
)

func TestNormalize(t *testing.T) {
	n := New(types.NormalizeConfig{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses whitespace runs",
			input: "Smith  v.\n\tJones   was   filed",
			want:  "Smith v. Jones was filed",
		},
		{
			name:  "decodes entities",
			input: "Barnes &amp; Noble &ndash; summary",
			want:  "Barnes & Noble – summary",
		},
		{
			name:  "strips residual markup",
			input: "<div><p>Getty Images</p><p>v. Stability AI</p><script>track()</script></div>",
			want:  "Getty Images v. Stability AI",
		},
		{
			name:  "drops nav and footer chrome",
			input: "<nav>Home | About</nav><p>Doe v. OpenAI</p><footer>© 2026</footer>",
			want:  "Doe v. OpenAI",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeRepairs(t *testing.T) {
	n := New(types.NormalizeConfig{
		Repairs: map[string]string{
			"tificial intelligence": "artificial intelligence",
		},
	})

	got := n.Normalize("a tificial intelligence case tracker")
	assert.Equal(t, "a artificial intelligence case tracker", got)

	// Repairs must not fire inside an already-intact word.
	intact := "an artificial intelligence case tracker"
	assert.Equal(t, intact, n.Normalize(intact))
}

// Normalizing already-normalized text must yield the same text, with
// the default repair table included.
func TestNormalizeIdempotent(t *testing.T) {
	n := New(types.DefaultPipelineConfig().Normalize)

	inputs := []string{
		"Smith  v.  Jones &amp; Co over a nerative AI dataset",
		"<p>Doe v. OpenAI</p> pyright infringement claim",
		"plain text, already clean",
		"",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "input %q", input)
	}
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "a b c", Collapse("  a\tb \n c "))
	assert.Equal(t, Collapse("a b"), Collapse(Collapse("a   b")))
}
