package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferRepositoryLoad(t *testing.T) {
	repo := NewOfferRepository(filepath.Join("testdata", "admissions.csv"))

	records, err := repo.Load()
	require.NoError(t, err)

	// Seven file rows: the metadata line under the header is skipped
	// and the "not reported" average row is dropped.
	require.Len(t, records, 5)

	first := records[0]
	assert.Equal(t, "Waterloo", first.University)
	assert.Equal(t, "Software Engineering", first.ProgramName)
	assert.Equal(t, "Offer", first.Decision)
	assert.InDelta(t, 92.5, first.Top6Average, 1e-9)
	assert.Equal(t, "Yes", first.SuppApp)
	assert.Equal(t, "robotics team captain", first.SuppNotes)

	// The Toronto offer row has a "not reported" average and must not
	// survive the load; only the numeric Toronto rejection does.
	for _, r := range records {
		if r.University == "Toronto" {
			assert.Equal(t, "Rejected", r.Decision)
		}
	}
}

func TestOfferRepositoryLoadKeepsRejections(t *testing.T) {
	// Filtering by decision belongs to the estimator; the loader keeps
	// every parseable row.
	repo := NewOfferRepository(filepath.Join("testdata", "admissions.csv"))

	records, err := repo.Load()
	require.NoError(t, err)

	decisions := map[string]int{}
	for _, r := range records {
		decisions[r.Decision]++
	}
	assert.Equal(t, 1, decisions["Rejected"])
}

func TestOfferRepositoryMissingFile(t *testing.T) {
	repo := NewOfferRepository(filepath.Join("testdata", "nope.csv"))
	_, err := repo.Load()
	assert.Error(t, err)
}

func TestOfferRepositoryMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("University,Decision\nWaterloo,Offer\n"), 0o644))

	repo := NewOfferRepository(path)
	_, err := repo.Load()
	assert.ErrorContains(t, err, "missing required columns")
}

func TestOfferRepositoryHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	header := "University,Program name,Decision,Top 6 Average,Supp App?,Notable info from supp app,Comments\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	repo := NewOfferRepository(path)
	records, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}
