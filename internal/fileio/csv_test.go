package fileio

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	csv := "Title,CNR,Client\nCase A,GJHC-24-000001-2020,John Doe\n,,\nCase B,,ABC & Co\n"
	rows, err := ReadAnyMaps(strings.NewReader(csv), "cases.csv", 1)
	if err != nil {
		t.Fatalf("ReadAnyMaps: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank line skipped)", len(rows))
	}
	if rows[0]["Title"] != "Case A" || rows[0]["CNR"] != "GJHC-24-000001-2020" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[1]["Title"] != "Case B" || rows[1]["Client"] != "ABC & Co" {
		t.Errorf("rows[1] = %v", rows[1])
	}
}

func TestReadCSVHeaderRowOffset(t *testing.T) {
	csv := "exported 2024-05-01,,\nTitle,CNR,Client\nCase A,CNR1,X\n"
	rows, err := ReadAnyMaps(strings.NewReader(csv), "cases.csv", 2)
	if err != nil {
		t.Fatalf("ReadAnyMaps: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["Title"] != "Case A" {
		t.Errorf("rows[0] = %v", rows[0])
	}
}

func TestReadCSVBlankHeaderGetsColumnName(t *testing.T) {
	csv := "Title,,CNR\nCase A,extra,CNR1\n"
	rows, err := ReadAnyMaps(strings.NewReader(csv), "cases.csv", 1)
	if err != nil {
		t.Fatalf("ReadAnyMaps: %v", err)
	}
	if rows[0]["Column 2"] != "extra" {
		t.Errorf("blank header not substituted: %v", rows[0])
	}
}

func TestReadAnyMapsUnsupported(t *testing.T) {
	if _, err := ReadAnyMaps(strings.NewReader("x"), "cases.pdf", 1); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
