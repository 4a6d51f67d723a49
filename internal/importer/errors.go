package importer

import "errors"

var (
	// ErrInvalidFile reports content that does not look like GEDCOM.
	ErrInvalidFile = errors.New("not a GEDCOM file")
	// ErrParseFailed reports a parse with blocking errors and no individuals.
	ErrParseFailed = errors.New("GEDCOM parse failed")
	// ErrFileTooLarge reports a file above the configured size limit.
	ErrFileTooLarge = errors.New("GEDCOM file too large")
	// ErrUnsupportedDecision reports a decision the importer cannot apply yet.
	ErrUnsupportedDecision = errors.New("unsupported duplicate decision")
	// ErrUnknownIndividual reports a decision for an id that is not a probable duplicate.
	ErrUnknownIndividual = errors.New("decision does not match a probable duplicate")
	// ErrImportLocked reports that another import held the commit lock past the timeout.
	ErrImportLocked = errors.New("another import is in progress")
)
