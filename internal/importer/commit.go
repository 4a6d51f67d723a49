package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"familygarden/internal/duplicates"
	"familygarden/internal/gedcom"
	"familygarden/internal/logging"
	"familygarden/internal/store"
)

// Summary reports what a commit wrote.
type Summary struct {
	BatchID           string   `json:"batch_id"`
	Label             string   `json:"label"`
	SourceFile        string   `json:"source_file"`
	Created           int      `json:"created"`
	Skipped           int      `json:"skipped"`
	DuplicatesCreated int      `json:"duplicates_created"`
	Families          int      `json:"families"`
	Warnings          []string `json:"warnings"`
}

func newID() string {
	return uuid.NewString()
}

// Commit resolves decisions against the preview and writes the result as
// one import batch. Only one commit per data directory runs at a time; a
// commit waits up to the configured lock timeout before failing with
// ErrImportLocked.
func (i *Importer) Commit(ctx context.Context, preview *Preview, decisions map[string]duplicates.Decision) (*Summary, error) {
	if preview == nil || preview.Parse == nil {
		return nil, errors.New("commit requires a preview")
	}
	plan, err := preview.Resolve(decisions)
	if err != nil {
		return nil, err
	}

	batchID := i.newID()
	ctx = logging.WithBatchID(logging.WithSourceFile(ctx, preview.SourceFile), batchID)
	logger := logging.WithContext(ctx, i.logger)

	lock, err := i.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release import lock", logging.Error(err))
		}
	}()

	persons, refs := i.buildPersons(batchID, plan)
	families := i.buildFamilies(batchID, preview.Parse.Families, refs)

	batch := store.Batch{
		ID:           batchID,
		Label:        preview.Label,
		SourceFile:   preview.SourceFile,
		SourceSHA256: preview.Checksum,
		CreatedAt:    i.now(),
		Duplicates:   len(preview.Detection.Duplicates),
		Skipped:      len(plan.Skip),
	}
	if err := i.store.CommitImport(ctx, batch, persons, families); err != nil {
		logging.EventCommitFailed.Fail(ctx, logger, "import commit failed", logging.Error(err))
		return nil, fmt.Errorf("commit import: %w", err)
	}

	logger.Info("import committed",
		logging.String("label", batch.Label),
		logging.Int("created", len(persons)),
		logging.Int("skipped", len(plan.Skip)),
		logging.Int("duplicates_created", plan.DuplicatesCreated),
		logging.Int("families", len(families)),
	)

	warnings := make([]string, len(preview.Parse.Warnings))
	copy(warnings, preview.Parse.Warnings)
	return &Summary{
		BatchID:           batchID,
		Label:             batch.Label,
		SourceFile:        batch.SourceFile,
		Created:           len(persons),
		Skipped:           len(plan.Skip),
		DuplicatesCreated: plan.DuplicatesCreated,
		Families:          len(families),
		Warnings:          warnings,
	}, nil
}

// acquireLock takes the data directory's import lock through a handle of
// its own, so concurrent commits in one process exclude each other the same
// way commits from separate processes do.
func (i *Importer) acquireLock(ctx context.Context) (*flock.Flock, error) {
	path := i.cfg.LockPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	lockCtx, cancel := context.WithTimeout(ctx, i.cfg.LockTimeout())
	defer cancel()

	ok, err := lock.TryLockContext(lockCtx, i.lockRetry)
	if ok {
		return lock, nil
	}
	_ = lock.Close()
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	return nil, fmt.Errorf("%w: lock %s held for more than %s", ErrImportLocked, path, i.cfg.LockTimeout().Round(time.Second))
}

// buildPersons assigns stored ids to the individuals being created and
// returns the GEDCOM id to stored id mapping used for family links.
// Skipped duplicates map to the existing person they matched.
func (i *Importer) buildPersons(batchID string, plan *Plan) ([]store.Person, map[string]string) {
	refs := make(map[string]string, len(plan.Create)+len(plan.Skip))
	persons := make([]store.Person, 0, len(plan.Create))
	for _, ind := range plan.Create {
		person := personFromIndividual(ind)
		person.ID = i.newID()
		person.BatchID = batchID
		if _, seen := refs[ind.ID]; !seen {
			refs[ind.ID] = person.ID
		}
		persons = append(persons, person)
	}
	for _, match := range plan.Skip {
		if _, seen := refs[match.ImportedPerson.ID]; !seen {
			refs[match.ImportedPerson.ID] = match.ExistingPerson.ID
		}
	}
	return persons, refs
}

func (i *Importer) buildFamilies(batchID string, parsed []gedcom.ParsedFamily, refs map[string]string) []store.Family {
	families := make([]store.Family, 0, len(parsed))
	for _, fam := range parsed {
		family := store.Family{
			ID:            i.newID(),
			BatchID:       batchID,
			GedcomID:      fam.ID,
			HusbandID:     refs[fam.HusbandID],
			WifeID:        refs[fam.WifeID],
			HusbandRef:    fam.HusbandID,
			WifeRef:       fam.WifeID,
			Children:      make([]store.FamilyChild, 0, len(fam.ChildrenIDs)),
			MarriageDate:  fam.MarriageDate,
			MarriagePlace: fam.MarriagePlace,
			DivorceDate:   fam.DivorceDate,
		}
		for _, childRef := range fam.ChildrenIDs {
			family.Children = append(family.Children, store.FamilyChild{PersonID: refs[childRef], Ref: childRef})
		}
		families = append(families, family)
	}
	return families
}

func personFromIndividual(ind gedcom.ParsedIndividual) store.Person {
	return store.Person{
		GedcomID:   ind.ID,
		FirstNames: ind.FirstName,
		LastName:   ind.LastName,
		MaidenName: ind.MaidenName,
		Gender:     ind.Gender,
		BirthDate:  ind.BirthDate,
		BirthPlace: ind.BirthPlace,
		DeathDate:  ind.DeathDate,
		DeathPlace: ind.DeathPlace,
		Occupation: ind.Occupation,
		Notes:      ind.Notes,
	}
}
