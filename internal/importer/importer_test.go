package importer_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"familygarden/internal/config"
	"familygarden/internal/duplicates"
	"familygarden/internal/gedcom"
	"familygarden/internal/importer"
	"familygarden/internal/store"
	"familygarden/internal/testsupport"
)

func newImporter(t *testing.T, cfg *config.Config) (*importer.Importer, *store.Store) {
	t.Helper()
	st := testsupport.MustOpenStore(t, cfg)
	imp, err := importer.New(st, cfg, nil)
	if err != nil {
		t.Fatalf("importer.New: %v", err)
	}
	return imp, st
}

func TestImportIntoEmptyTree(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp, st := newImporter(t, cfg)
	ctx := context.Background()
	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "famille_dupont.ged", testsupport.FamilyGEDCOM)

	preview, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if preview.Label != "Famille Dupont" {
		t.Fatalf("label = %q", preview.Label)
	}
	if len(preview.Detection.Duplicates) != 0 || len(preview.Detection.UniquePersons) != 3 {
		t.Fatalf("expected all individuals unique, got %#v", preview.Detection)
	}
	if preview.Threshold != duplicates.DefaultThreshold {
		t.Fatalf("threshold = %d", preview.Threshold)
	}

	summary, err := imp.Commit(ctx, preview, nil)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if summary.Created != 3 || summary.Skipped != 0 || summary.Families != 1 {
		t.Fatalf("unexpected summary %#v", summary)
	}

	persons, err := st.ListPersons(ctx, summary.BatchID)
	if err != nil {
		t.Fatalf("ListPersons: %v", err)
	}
	if len(persons) != 3 || persons[0].GedcomID != "I1" || persons[1].MaidenName != "Durand" {
		t.Fatalf("unexpected persons %#v", persons)
	}
	if persons[0].Occupation != "Boulanger" || persons[0].BirthDate != "1900-03-12" {
		t.Fatalf("individual details not stored: %#v", persons[0])
	}

	families, err := st.ListFamilies(ctx, summary.BatchID)
	if err != nil {
		t.Fatalf("ListFamilies: %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("expected one family, got %d", len(families))
	}
	fam := families[0]
	if fam.HusbandID != persons[0].ID || fam.WifeID != persons[1].ID {
		t.Fatalf("spouses not linked: %#v", fam)
	}
	if len(fam.Children) != 1 || fam.Children[0].PersonID != persons[2].ID {
		t.Fatalf("child not linked: %#v", fam.Children)
	}
}

func TestReimportDetectsDuplicatesAndSkipLinksExisting(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp, st := newImporter(t, cfg)
	ctx := context.Background()
	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "dupont.ged", testsupport.FamilyGEDCOM)

	first, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	firstSummary, err := imp.Commit(ctx, first, nil)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	original, err := st.ListPersons(ctx, firstSummary.BatchID)
	if err != nil {
		t.Fatalf("ListPersons: %v", err)
	}

	second, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("second Preview failed: %v", err)
	}
	if first.PreviousImport != nil {
		t.Fatalf("first preview should not see a previous import: %#v", first.PreviousImport)
	}
	if second.PreviousImport == nil || second.PreviousImport.ID != firstSummary.BatchID {
		t.Fatalf("expected previous import %s, got %#v", firstSummary.BatchID, second.PreviousImport)
	}
	if second.Checksum != first.Checksum || len(second.Checksum) != 64 {
		t.Fatalf("checksum mismatch %q vs %q", first.Checksum, second.Checksum)
	}
	if second.ExistingCount != 3 {
		t.Fatalf("existing count = %d, want 3", second.ExistingCount)
	}
	if len(second.Detection.Duplicates) != 3 {
		t.Fatalf("expected every individual flagged, got %#v", second.Detection.Duplicates)
	}
	if got := second.Detection.Duplicates[0]; got.Confidence != 100 || got.ExistingPerson.ID != original[0].ID {
		t.Fatalf("unexpected match for I1: %#v", got)
	}

	summary, err := imp.Commit(ctx, second, second.SkipAll())
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if summary.Created != 0 || summary.Skipped != 3 {
		t.Fatalf("unexpected summary %#v", summary)
	}
	count, err := st.CountPersons(ctx)
	if err != nil || count != 3 {
		t.Fatalf("CountPersons = %d, %v; want 3", count, err)
	}

	families, err := st.ListFamilies(ctx, summary.BatchID)
	if err != nil {
		t.Fatalf("ListFamilies: %v", err)
	}
	if len(families) != 1 || families[0].HusbandID != original[0].ID || families[0].Children[0].PersonID != original[2].ID {
		t.Fatalf("skipped individuals should link to existing persons: %#v", families)
	}
}

func TestCommitDefaultsDuplicatesToCreate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp, _ := newImporter(t, cfg)
	ctx := context.Background()
	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "tree.ged", testsupport.FamilyGEDCOM)

	preview, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if _, err := imp.Commit(ctx, preview, nil); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	again, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	summary, err := imp.Commit(ctx, again, map[string]duplicates.Decision{
		"I1": duplicates.DecisionSkip,
		"I2": duplicates.DecisionCreate,
	})
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if summary.Created != 2 || summary.Skipped != 1 || summary.DuplicatesCreated != 2 {
		t.Fatalf("unexpected summary %#v", summary)
	}
}

func TestSkipKeepsUniqueIndividualSharingPointer(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithThreshold(50))
	imp, st := newImporter(t, cfg)
	ctx := context.Background()
	existing := testsupport.SeedPersons(t, st, store.Person{FirstNames: "Jean", LastName: "Dupont", Gender: gedcom.GenderUnknown})

	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "merged.ged", `0 HEAD
		0 @I1@ INDI
		1 NAME Zoe /Nguyen/
		0 @I1@ INDI
		1 NAME Jean /Dupont/
		0 TRLR
		`)
	preview, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if len(preview.Detection.Duplicates) != 1 || len(preview.Detection.UniquePersons) != 1 {
		t.Fatalf("unexpected detection %#v", preview.Detection)
	}

	plan, err := preview.Resolve(preview.SkipAll())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(plan.Create) != 1 || plan.Create[0].FirstName != "Zoe" {
		t.Fatalf("unique individual must be created: %#v", plan.Create)
	}
	if len(plan.Skip) != 1 || plan.Skip[0].ExistingPerson.ID != existing[0].ID {
		t.Fatalf("unexpected skip list %#v", plan.Skip)
	}

	summary, err := imp.Commit(ctx, preview, preview.SkipAll())
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if summary.Created != 1 || summary.Skipped != 1 {
		t.Fatalf("unexpected summary %#v", summary)
	}
	persons, err := st.ListPersons(ctx, summary.BatchID)
	if err != nil {
		t.Fatalf("ListPersons: %v", err)
	}
	if len(persons) != 1 || persons[0].LastName != "Nguyen" {
		t.Fatalf("unexpected persons %#v", persons)
	}
}

func TestCommitRejectsBadDecisions(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp, st := newImporter(t, cfg)
	ctx := context.Background()
	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "tree.ged", testsupport.FamilyGEDCOM)

	preview, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if _, err := imp.Commit(ctx, preview, nil); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	again, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	_, err = imp.Commit(ctx, again, map[string]duplicates.Decision{"I1": duplicates.DecisionMerge})
	if !errors.Is(err, importer.ErrUnsupportedDecision) {
		t.Fatalf("expected ErrUnsupportedDecision, got %v", err)
	}
	_, err = imp.Commit(ctx, again, map[string]duplicates.Decision{"I99": duplicates.DecisionSkip})
	if !errors.Is(err, importer.ErrUnknownIndividual) {
		t.Fatalf("expected ErrUnknownIndividual, got %v", err)
	}

	count, err := st.CountPersons(ctx)
	if err != nil || count != 3 {
		t.Fatalf("rejected commits must not write: count=%d err=%v", count, err)
	}
}

func TestPreviewRejectsBadFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxFileMB(1))
	imp, _ := newImporter(t, cfg)
	ctx := context.Background()
	dir := testsupport.BaseDir(cfg)

	notGedcom := testsupport.WriteGEDCOM(t, dir, "notes.txt", "Dear diary,\nnothing to see\n")
	if _, err := imp.Preview(ctx, notGedcom); !errors.Is(err, importer.ErrInvalidFile) {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}

	headerOnly := testsupport.WriteGEDCOM(t, dir, "empty.ged", "0 HEAD\n1 CHAR UTF-8\n0 TRLR\n")
	if _, err := imp.Preview(ctx, headerOnly); !errors.Is(err, importer.ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}

	large := filepath.Join(dir, "large.ged")
	testsupport.WriteFile(t, large, 2*1024*1024)
	if _, err := imp.Preview(ctx, large); !errors.Is(err, importer.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	if _, err := imp.Preview(ctx, filepath.Join(dir, "missing.ged")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCommitFailsWhileLockHeld(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp, st := newImporter(t, cfg)
	ctx := context.Background()
	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "tree.ged", testsupport.FamilyGEDCOM)

	preview, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	holder := flock.New(cfg.LockPath())
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock = %v, %v", ok, err)
	}
	defer holder.Unlock()

	if _, err := imp.Commit(ctx, preview, nil); !errors.Is(err, importer.ErrImportLocked) {
		t.Fatalf("expected ErrImportLocked, got %v", err)
	}
	count, err := st.CountPersons(ctx)
	if err != nil || count != 0 {
		t.Fatalf("locked commit must not write: count=%d err=%v", count, err)
	}
}

type failingStore struct{}

func (failingStore) ListExistingPersons(context.Context) ([]duplicates.ExistingPerson, error) {
	return nil, nil
}

func (failingStore) CommitImport(context.Context, store.Batch, []store.Person, []store.Family) error {
	return errors.New("disk full")
}

func (failingStore) FindBatchByChecksum(context.Context, string) (*store.Batch, error) {
	return nil, nil
}

func TestCommitWrapsStoreErrors(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	imp, err := importer.New(failingStore{}, cfg, nil)
	if err != nil {
		t.Fatalf("importer.New: %v", err)
	}
	ctx := context.Background()
	path := testsupport.WriteGEDCOM(t, testsupport.BaseDir(cfg), "tree.ged", testsupport.FamilyGEDCOM)

	preview, err := imp.Preview(ctx, path)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if _, err := imp.Commit(ctx, preview, nil); err == nil || err.Error() != "commit import: disk full" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := importer.New(nil, testsupport.NewConfig(t), nil); err == nil {
		t.Fatal("expected error without store")
	}
}
