package services

import (
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/repositories"
)

const fallbackMentorCount = 2

type MentorService interface {
	AllMentors() []models.Mentor
	// ForProgram resolves mentors for a "University_Program" key with a
	// fallback chain: program-specific ids, then mentors from the same
	// university, then a random pick. Worst case is an empty list,
	// never an error.
	ForProgram(programKey string) []models.Mentor
}

type mentorService struct {
	mentors repositories.MentorRepository
}

func NewMentorService(mentors repositories.MentorRepository) MentorService {
	return &mentorService{mentors: mentors}
}

func (m *mentorService) AllMentors() []models.Mentor {
	return m.mentors.Directory().Mentors
}

func (m *mentorService) ForProgram(programKey string) []models.Mentor {
	dir := m.mentors.Directory()

	ids := dir.ProgramMentors[programKey]
	if matched := mentorsByID(dir.Mentors, ids); len(matched) > 0 {
		return matched
	}

	university := strings.SplitN(programKey, "_", 2)[0]
	if university != "" {
		var sameSchool []models.Mentor
		for _, mentor := range dir.Mentors {
			if strings.Contains(strings.ToLower(mentor.School), strings.ToLower(university)) {
				sameSchool = append(sameSchool, mentor)
			}
		}
		if len(sameSchool) > 0 {
			if len(sameSchool) > fallbackMentorCount {
				sameSchool = sameSchool[:fallbackMentorCount]
			}
			return sameSchool
		}
	}

	log.Debug().Str("program_key", programKey).Msg("no mentor match, picking at random")
	return randomMentors(dir.Mentors, fallbackMentorCount)
}

func mentorsByID(mentors []models.Mentor, ids []string) []models.Mentor {
	if len(ids) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var matched []models.Mentor
	for _, mentor := range mentors {
		if _, ok := wanted[mentor.ID]; ok {
			matched = append(matched, mentor)
		}
	}
	return matched
}

func randomMentors(mentors []models.Mentor, n int) []models.Mentor {
	if len(mentors) == 0 {
		return []models.Mentor{}
	}
	shuffled := make([]models.Mentor, len(mentors))
	copy(shuffled, mentors)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
