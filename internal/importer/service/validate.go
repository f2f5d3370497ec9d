package service

import (
	"caseimport-service/internal/config"
	"caseimport-service/internal/importer/model"
	"caseimport-service/internal/store"
)

const (
	errMissingTitle  = "Missing Title"
	errNoIdentifier  = "Need at least one: CNR, Case Number, or Reference Number"
	errClientMissing = "Client not found"
)

// Validator applies the required-field and identifier rules to one row. The
// preview and the commit path share this single implementation.
type Validator struct {
	aliases config.Aliases
	lookup  map[string]store.Client
}

func NewValidator(aliases config.Aliases, lookup map[string]store.Client) *Validator {
	return &Validator{aliases: aliases, lookup: lookup}
}

// Validate is side-effect free. "Client not found" is advisory: it never
// flips HasRequiredFields, since the client link is optional on the
// persisted record.
func (v *Validator) Validate(rowNumber int, row map[string]string) model.RowValidation {
	title := Extract(row, v.aliases.Title)
	cnr := Extract(row, v.aliases.CNR)
	caseNo := Extract(row, v.aliases.CaseNumber)
	refNo := Extract(row, v.aliases.ReferenceNumber)
	clientName := Extract(row, v.aliases.ClientName)

	var errs []string
	if title == "" {
		errs = append(errs, errMissingTitle)
	}
	if cnr == "" && caseNo == "" && refNo == "" {
		errs = append(errs, errNoIdentifier)
	}

	matched := ""
	matchedID := ""
	if clientName != "" {
		if c, ok := ResolveClient(v.lookup, clientName); ok {
			matched = c.FullName
			matchedID = c.ID
		} else {
			errs = append(errs, errClientMissing)
		}
	}

	identifier := firstNonEmpty(NormalizeCNR(cnr), caseNo, refNo)
	return model.RowValidation{
		RowNumber:         rowNumber,
		Title:             title,
		Identifier:        identifier,
		ClientName:        clientName,
		MatchedClient:     matched,
		MatchedClientID:   matchedID,
		HasRequiredFields: title != "" && identifier != "",
		Errors:            errs,
	}
}

// blockingErrors filters out the advisory client miss, leaving only what
// should stop the row from being persisted.
func blockingErrors(errs []string) []string {
	out := errs[:0:0]
	for _, e := range errs {
		if e != errClientMissing {
			out = append(out, e)
		}
	}
	return out
}
