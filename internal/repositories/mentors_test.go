package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentorRepositoryLoad(t *testing.T) {
	repo := NewMentorRepository(filepath.Join("testdata", "mentors.json"))

	dir := repo.Directory()
	require.Len(t, dir.Mentors, 3)
	assert.Equal(t, "m1", dir.Mentors[0].ID)
	assert.Contains(t, dir.ProgramMentors, "Waterloo_Software Engineering")
}

func TestMentorRepositoryMissingFile(t *testing.T) {
	repo := NewMentorRepository(filepath.Join("testdata", "missing_mentors.json"))

	dir := repo.Directory()
	assert.Empty(t, dir.Mentors)
	assert.Empty(t, dir.ProgramMentors)
}
