package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Aliases lists the accepted spreadsheet header spellings per field, in
// lookup order. Exports from different court portals and clerks disagree on
// header casing and wording, so the lists are long and case-sensitive.
type Aliases struct {
	Title           []string `yaml:"title"`
	CNR             []string `yaml:"cnr"`
	CaseNumber      []string `yaml:"case_number"`
	ReferenceNumber []string `yaml:"reference_number"`
	ClientName      []string `yaml:"client_name"`
	CourtType       []string `yaml:"court_type"`
	CourtName       []string `yaml:"court_name"`
	ByAgainst       []string `yaml:"by_against"`
	FilingDate      []string `yaml:"filing_date"`
	DisposalDate    []string `yaml:"disposal_date"`
	DecisionDate    []string `yaml:"decision_date"`
	NextHearingDate []string `yaml:"next_hearing_date"`
}

// DefaultAliases covers the header variants seen in real exports so far.
func DefaultAliases() Aliases {
	return Aliases{
		Title:           []string{"Title", "title", "TITLE", "Case Title", "case title", "CASE TITLE", "Case Name"},
		CNR:             []string{"CNR", "cnr", "Cnr", "CNR Number", "CNR NUMBER", "cnr number", "CNR No", "CNR No."},
		CaseNumber:      []string{"Case Number", "case number", "CASE NUMBER", "Case No", "Case No.", "CaseNumber"},
		ReferenceNumber: []string{"Reference Number", "reference number", "REFERENCE NUMBER", "Ref No", "Ref No.", "Reference No"},
		ClientName:      []string{"Client", "client", "CLIENT", "Client Name", "client name", "CLIENT NAME"},
		CourtType:       []string{"Court Type", "court type", "COURT TYPE", "CourtType"},
		CourtName:       []string{"Court", "court", "COURT", "Court Name", "court name", "COURT NAME"},
		ByAgainst:       []string{"By/Against", "by/against", "By Against", "Party Type", "party type"},
		FilingDate:      []string{"Filing Date", "filing date", "FILING DATE", "Date of Filing", "Filed On"},
		DisposalDate:    []string{"Disposal Date", "disposal date", "DISPOSAL DATE", "Date of Disposal", "Disposed On"},
		DecisionDate:    []string{"Decision Date", "decision date", "DECISION DATE", "Date of Decision", "Decided On"},
		NextHearingDate: []string{"Next Hearing", "next hearing", "Next Hearing Date", "next hearing date", "NEXT HEARING DATE", "Next Date"},
	}
}

// LoadAliases reads an alias file and fills any list the operator left
// empty from the defaults. path == "" means defaults only.
func LoadAliases(path string) (Aliases, error) {
	def := DefaultAliases()
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("read alias file: %w", err)
	}
	var a Aliases
	if err := yaml.Unmarshal(b, &a); err != nil {
		return def, fmt.Errorf("parse alias file: %w", err)
	}
	fill := func(dst *[]string, from []string) {
		if len(*dst) == 0 {
			*dst = from
		}
	}
	fill(&a.Title, def.Title)
	fill(&a.CNR, def.CNR)
	fill(&a.CaseNumber, def.CaseNumber)
	fill(&a.ReferenceNumber, def.ReferenceNumber)
	fill(&a.ClientName, def.ClientName)
	fill(&a.CourtType, def.CourtType)
	fill(&a.CourtName, def.CourtName)
	fill(&a.ByAgainst, def.ByAgainst)
	fill(&a.FilingDate, def.FilingDate)
	fill(&a.DisposalDate, def.DisposalDate)
	fill(&a.DecisionDate, def.DecisionDate)
	fill(&a.NextHearingDate, def.NextHearingDate)
	return a, nil
}
