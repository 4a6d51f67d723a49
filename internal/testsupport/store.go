package testsupport

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"familygarden/internal/config"
	"familygarden/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedPersons commits persons as a single batch and returns them with ids
// assigned.
func SeedPersons(t testing.TB, st *store.Store, persons ...store.Person) []store.Person {
	t.Helper()

	batch := store.Batch{ID: uuid.NewString(), Label: "Seed", SourceFile: "seed.ged"}
	for i := range persons {
		if persons[i].ID == "" {
			persons[i].ID = uuid.NewString()
		}
		persons[i].BatchID = batch.ID
	}
	if err := st.CommitImport(context.Background(), batch, persons, nil); err != nil {
		t.Fatalf("store.CommitImport: %v", err)
	}
	return persons
}
