package service

import (
	"testing"

	"caseimport-service/internal/config"
	"caseimport-service/internal/store"
)

func newTestValidator(clients ...store.Client) *Validator {
	return NewValidator(config.DefaultAliases(), BuildClientLookup(clients))
}

func hasError(errs []string, want string) bool {
	for _, e := range errs {
		if e == want {
			return true
		}
	}
	return false
}

func TestValidateMissingTitle(t *testing.T) {
	v := newTestValidator()
	got := v.Validate(2, map[string]string{"CNR": "GJHC-24-000002-2020"})

	if !hasError(got.Errors, "Missing Title") {
		t.Errorf("errors = %v, want Missing Title", got.Errors)
	}
	if got.HasRequiredFields {
		t.Error("HasRequiredFields should be false without a title")
	}
}

func TestValidateNoIdentifier(t *testing.T) {
	v := newTestValidator()
	got := v.Validate(3, map[string]string{"Title": "Case C"})

	if !hasError(got.Errors, "Need at least one: CNR, Case Number, or Reference Number") {
		t.Errorf("errors = %v, want the identifier message", got.Errors)
	}
	if got.HasRequiredFields {
		t.Error("HasRequiredFields should be false without an identifier")
	}
}

func TestValidateAnyIdentifierSuffices(t *testing.T) {
	v := newTestValidator()
	for _, row := range []map[string]string{
		{"Title": "A", "CNR": "GJHC-24-000001-2020"},
		{"Title": "A", "Case Number": "123/2020"},
		{"Title": "A", "Reference Number": "REF-9"},
	} {
		got := v.Validate(2, row)
		if !got.HasRequiredFields || len(got.Errors) != 0 {
			t.Errorf("row %v: valid=%v errors=%v", row, got.HasRequiredFields, got.Errors)
		}
	}
}

func TestValidateClientMissIsAdvisory(t *testing.T) {
	v := newTestValidator(store.Client{ID: "c1", FullName: "John Doe"})
	got := v.Validate(2, map[string]string{
		"Title":  "Case A",
		"CNR":    "GJHC-24-000001-2020",
		"Client": "Unknown Person",
	})

	if !hasError(got.Errors, "Client not found") {
		t.Errorf("errors = %v, want advisory Client not found", got.Errors)
	}
	if !got.HasRequiredFields {
		t.Error("client miss must not block the row")
	}
	if blocking := blockingErrors(got.Errors); len(blocking) != 0 {
		t.Errorf("blockingErrors = %v, want none", blocking)
	}
}

func TestValidateMatchedClient(t *testing.T) {
	v := newTestValidator(store.Client{ID: "c1", FullName: "John Doe"})
	got := v.Validate(2, map[string]string{
		"Title":  "Case A",
		"CNR":    "GJHC-24-000001-2020",
		"Client": "Mr. John Doe",
	})

	if got.MatchedClientID != "c1" || got.MatchedClient != "John Doe" {
		t.Errorf("matched = %q/%q, want c1/John Doe", got.MatchedClientID, got.MatchedClient)
	}
	if got.Identifier != "GJHC240000012020" {
		t.Errorf("identifier = %q, want normalized CNR", got.Identifier)
	}
	if len(got.Errors) != 0 {
		t.Errorf("errors = %v, want none", got.Errors)
	}
}
