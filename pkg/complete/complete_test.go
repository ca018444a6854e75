package complete_test

import (
	"testing"

	"github.com/craftide/textcore/pkg/complete"
)

func TestComplete_PrefixTooShort(t *testing.T) {
	t.Parallel()

	index := complete.NewIndex()

	if got := index.Complete(""); got != nil {
		t.Errorf("expected nil for empty prefix, got %v", got)
	}
	if got := index.Complete("c"); got != nil {
		t.Errorf("expected nil for one-character prefix, got %v", got)
	}
}

func TestComplete_CatalogOrder(t *testing.T) {
	t.Parallel()

	index := complete.NewIndex()
	candidates := index.Complete("cla")

	// Keywords are searched before API types, so "class" precedes the
	// uppercase type names regardless of case.
	expected := []complete.Candidate{
		{Kind: complete.KindKeyword, Text: "class"},
		{Kind: complete.KindMethod, Text: "clear"},
	}

	if len(candidates) != len(expected) {
		t.Fatalf("expected %d candidates, got %v", len(expected), candidates)
	}
	for i, exp := range expected {
		if candidates[i] != exp {
			t.Errorf("candidate %d: expected %+v, got %+v", i, exp, candidates[i])
		}
	}
}

func TestComplete_CaseInsensitive(t *testing.T) {
	t.Parallel()

	index := complete.NewIndex()

	candidates := index.Complete("ITEM")

	expected := []complete.Candidate{
		{Kind: complete.KindClass, Text: "Item"},
		{Kind: complete.KindClass, Text: "ItemStack"},
	}

	if len(candidates) != len(expected) {
		t.Fatalf("expected %d candidates, got %v", len(expected), candidates)
	}
	for i, exp := range expected {
		if candidates[i] != exp {
			t.Errorf("candidate %d: expected %+v, got %+v", i, exp, candidates[i])
		}
	}
}

func TestComplete_Cap(t *testing.T) {
	t.Parallel()

	// Many catalog entries share this prefix across keywords and methods;
	// the result must stop at the cap.
	index := complete.NewIndexWith([]string{
		"co1", "co2", "co3", "co4", "co5", "co6", "co7", "co8", "co9", "co10",
	}, nil, nil, 0)

	candidates := index.Complete("co")

	if len(candidates) != complete.MaxCandidates {
		t.Errorf("expected %d candidates, got %d", complete.MaxCandidates, len(candidates))
	}
}

func TestComplete_NoMatches(t *testing.T) {
	t.Parallel()

	index := complete.NewIndex()

	if got := index.Complete("zz"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestNewIndexWith_ExtrasAndLimit(t *testing.T) {
	t.Parallel()

	index := complete.NewIndexWith(
		[]string{"yield"},
		[]string{"yieldValue"},
		[]string{"YieldCurve"},
		2,
	)

	candidates := index.Complete("yi")

	expected := []complete.Candidate{
		{Kind: complete.KindKeyword, Text: "yield"},
		{Kind: complete.KindMethod, Text: "yieldValue"},
	}

	if len(candidates) != len(expected) {
		t.Fatalf("expected %d candidates (limit), got %v", len(expected), candidates)
	}
	for i, exp := range expected {
		if candidates[i] != exp {
			t.Errorf("candidate %d: expected %+v, got %+v", i, exp, candidates[i])
		}
	}
}

func TestComplete_MethodCatalog(t *testing.T) {
	t.Parallel()

	index := complete.NewIndex()
	candidates := index.Complete("to")

	expected := []complete.Candidate{
		{Kind: complete.KindMethod, Text: "toString"},
		{Kind: complete.KindMethod, Text: "toLowerCase"},
		{Kind: complete.KindMethod, Text: "toUpperCase"},
	}

	if len(candidates) != len(expected) {
		t.Fatalf("expected %d candidates, got %v", len(expected), candidates)
	}
	for i, exp := range expected {
		if candidates[i] != exp {
			t.Errorf("candidate %d: expected %+v, got %+v", i, exp, candidates[i])
		}
	}
}
