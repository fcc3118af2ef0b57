package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linku/linku-api/internal/models"
)

type fakeMentors struct {
	dir models.MentorDirectory
}

func (f *fakeMentors) Directory() models.MentorDirectory { return f.dir }

func mentorDirectory() models.MentorDirectory {
	return models.MentorDirectory{
		Mentors: []models.Mentor{
			{ID: "m1", Name: "Priya Sharma", School: "University of Waterloo", Program: "Software Engineering"},
			{ID: "m2", Name: "Daniel Okafor", School: "Queen's University", Program: "Commerce"},
			{ID: "m3", Name: "Mei Lin", School: "University of Waterloo", Program: "Computer Science"},
			{ID: "m4", Name: "Sam Torres", School: "University of Waterloo", Program: "Mechatronics"},
		},
		ProgramMentors: map[string][]string{
			"Waterloo_Software Engineering": {"m1", "m3"},
		},
	}
}

func TestMentorsForProgramDirectIDs(t *testing.T) {
	svc := NewMentorService(&fakeMentors{dir: mentorDirectory()})

	got := svc.ForProgram("Waterloo_Software Engineering")
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m3", got[1].ID)
}

func TestMentorsForProgramUniversityFallback(t *testing.T) {
	svc := NewMentorService(&fakeMentors{dir: mentorDirectory()})

	// No id mapping for this key; three Waterloo mentors exist but the
	// fallback is capped at two.
	got := svc.ForProgram("Waterloo_Biomedical Engineering")
	require.Len(t, got, 2)
	for _, mentor := range got {
		assert.Contains(t, mentor.School, "Waterloo")
	}
}

func TestMentorsForProgramRandomFallback(t *testing.T) {
	svc := NewMentorService(&fakeMentors{dir: mentorDirectory()})

	got := svc.ForProgram("McGill_Physics")
	assert.Len(t, got, 2)
}

func TestMentorsForProgramEmptyDirectory(t *testing.T) {
	svc := NewMentorService(&fakeMentors{})

	assert.Empty(t, svc.ForProgram("Waterloo_Software Engineering"))
	assert.Empty(t, svc.AllMentors())
}
