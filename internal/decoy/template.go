package decoy

import (
	"fmt"
	"math/rand"

	"github.com/mmr-tortoise/chaffgen/internal/model"
	"github.com/mmr-tortoise/chaffgen/internal/naming"
)

// Template pairs a skeleton with the vars function that fills its slots.
//
// The vars function is the explicit record of which synthesized
// identifiers flow into which placeholders. It must draw from the
// Synthesizer in a fixed source order so that a seeded random source
// reproduces the same class text.
type Template struct {
	// Kind identifies the template shape for reporting and the manifest.
	Kind model.DecoyKind

	skeleton string
	vars     func(s *naming.Synthesizer) map[string]string
}

// Generate renders one decoy class from this template, drawing all
// variable identifiers from the given Synthesizer.
func (t Template) Generate(s *naming.Synthesizer) (string, error) {
	text, err := Render(t.skeleton, t.vars(s))
	if err != nil {
		// A render failure means a skeleton/vars mismatch — a programming
		// error, but surfaced as a normal error so callers can report it.
		return "", fmt.Errorf("template %s: %w", t.Kind, err)
	}
	return text, nil
}

// Registry returns the fixed template set in model.AllDecoyKinds order.
// The slice is rebuilt on each call; templates are value types and the
// registry is tiny, so sharing state is not worth the aliasing risk.
func Registry() []Template {
	return []Template{
		{
			Kind:     model.KindNetworkService,
			skeleton: networkServiceSkeleton,
			vars: func(s *naming.Synthesizer) map[string]string {
				return map[string]string{
					"CLASS_NAME":   s.ClassName(),
					"REQUEST_TAG":  s.StringLiteral(),
					"RESET_METHOD": s.MethodName(),
				}
			},
		},
		{
			Kind:     model.KindDataManager,
			skeleton: dataManagerSkeleton,
			vars: func(s *naming.Synthesizer) map[string]string {
				return map[string]string{
					"CLASS_NAME":     s.ClassName(),
					"QUEUE_SUFFIX":   fmt.Sprintf("%d", s.QueueLabelSuffix()),
					"STATE_PROPERTY": s.PropertyName(),
				}
			},
		},
		{
			Kind:     model.KindUIHelper,
			skeleton: uiHelperSkeleton,
			vars: func(s *naming.Synthesizer) map[string]string {
				return map[string]string{
					"CLASS_NAME":     s.ClassName(),
					"THEME_PROPERTY": s.PropertyName(),
					"THEME_LITERAL":  s.StringLiteral(),
				}
			},
		},
		{
			Kind:     model.KindJSONParser,
			skeleton: jsonParserSkeleton,
			vars: func(s *naming.Synthesizer) map[string]string {
				return map[string]string{
					"CLASS_NAME":      s.ClassName(),
					"VALIDATE_METHOD": s.MethodName(),
				}
			},
		},
		{
			Kind:     model.KindValidator,
			skeleton: validatorSkeleton,
			vars: func(s *naming.Synthesizer) map[string]string {
				return map[string]string{
					"CLASS_NAME":  s.ClassName(),
					"FAILURE_TAG": s.StringLiteral(),
				}
			},
		},
		{
			Kind:     model.KindCacheManager,
			skeleton: cacheManagerSkeleton,
			vars: func(s *naming.Synthesizer) map[string]string {
				return map[string]string{
					"CLASS_NAME":      s.ClassName(),
					"MARKER_PROPERTY": s.PropertyName(),
					"MARKER_LITERAL":  s.StringLiteral(),
				}
			},
		},
	}
}

// Pick selects one template uniformly at random from the registry.
func Pick(rng *rand.Rand) Template {
	templates := Registry()
	return templates[rng.Intn(len(templates))]
}

// RenderRandom picks a random template and renders one decoy class.
// It returns the class text and the kind that produced it.
func RenderRandom(rng *rand.Rand, s *naming.Synthesizer) (string, model.DecoyKind, error) {
	tmpl := Pick(rng)
	text, err := tmpl.Generate(s)
	if err != nil {
		return "", "", err
	}
	return text, tmpl.Kind, nil
}
