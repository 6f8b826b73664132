package llm

import (
	"math"
	"testing"

	"github.com/abhisek/wordflash/internal/store"
)

func TestUsageCost(t *testing.T) {
	cost, ok := UsageCost(store.ModelUsage{Model: "gpt-4o-mini", InputTokens: 1_000_000, OutputTokens: 500_000})
	if !ok {
		t.Fatal("expected gpt-4o-mini to be priced")
	}
	if math.Abs(cost-0.45) > 1e-9 {
		t.Fatalf("cost = %v, want 0.45", cost)
	}

	if _, ok := UsageCost(store.ModelUsage{Model: "mock"}); ok {
		t.Fatal("mock should not be priced")
	}
}

func TestDefaultModelsArePriced(t *testing.T) {
	cfg := DefaultConfig()
	for _, id := range []string{
		resolveModel(cfg.Anthropic.Model, anthropicModels),
		resolveModel(cfg.OpenAI.Model, openaiModels),
		resolveModel(cfg.Gemini.Model, geminiModels),
	} {
		if LookupCost(id) == nil {
			t.Errorf("default model %q has no price", id)
		}
	}
}
