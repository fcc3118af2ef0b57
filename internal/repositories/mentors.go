package repositories

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"linku/linku-api/internal/models"
)

// MentorRepository serves the mentor directory, loaded once at startup.
// A missing or unreadable file degrades to an empty directory so mentor
// lookups never fail a request.
type MentorRepository interface {
	Directory() models.MentorDirectory
}

type mentorRepository struct {
	directory models.MentorDirectory
}

func NewMentorRepository(path string) MentorRepository {
	directory := models.MentorDirectory{
		ProgramMentors: map[string][]string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("mentors file unavailable, serving empty directory")
		return &mentorRepository{directory: directory}
	}
	if err := json.Unmarshal(data, &directory); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("mentors file unreadable, serving empty directory")
		directory = models.MentorDirectory{ProgramMentors: map[string][]string{}}
	}
	if directory.ProgramMentors == nil {
		directory.ProgramMentors = map[string][]string{}
	}

	return &mentorRepository{directory: directory}
}

func (r *mentorRepository) Directory() models.MentorDirectory {
	return r.directory
}
