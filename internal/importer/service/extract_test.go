package service

import "testing"

func TestExtract(t *testing.T) {
	row := map[string]string{
		"Title":      "",
		"title":      "  State vs Doe  ",
		"Case Title": "ignored, earlier alias wins",
		"CNR":        "GJHC-24-000001-2020",
	}

	if got := Extract(row, []string{"Title", "title", "Case Title"}); got != "State vs Doe" {
		t.Errorf("Extract title = %q", got)
	}
	if got := Extract(row, []string{"Reference Number", "Ref No"}); got != "" {
		t.Errorf("Extract on absent aliases = %q, want empty", got)
	}
	// keys are case-sensitive; "cnr" is not "CNR"
	if got := Extract(row, []string{"cnr"}); got != "" {
		t.Errorf("Extract(cnr) = %q, want empty", got)
	}
	if got := Extract(row, []string{"cnr", "CNR"}); got != "GJHC-24-000001-2020" {
		t.Errorf("Extract cnr fallback = %q", got)
	}
}

func TestExtractDeterministic(t *testing.T) {
	row := map[string]string{"A": "1", "B": "2"}
	aliases := []string{"B", "A"}
	first := Extract(row, aliases)
	for i := 0; i < 50; i++ {
		if got := Extract(row, aliases); got != first {
			t.Fatalf("Extract unstable: %q then %q", first, got)
		}
	}
	if first != "2" {
		t.Errorf("Extract order ignored: got %q, want alias order to win", first)
	}
}
