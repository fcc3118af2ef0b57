package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/repositories"
)

// ErrInvalidWeights marks a quiz payload whose weight triple cannot be
// normalized (non-positive sum or a negative weight). Dividing through
// by such a sum would produce NaN/Inf scores, so the request fails
// instead.
var ErrInvalidWeights = errors.New("weights must be non-negative and sum to a positive value")

type MatcherService interface {
	// ComputeMatches scores every catalog profile against the answer
	// set and returns the top numResults ranked descending by overall
	// score. numResults <= 0 returns the full ranking.
	ComputeMatches(answers models.AnswerSet, numResults int) ([]models.MatchResult, error)
}

type matcherService struct {
	catalog repositories.CatalogRepository
}

func NewMatcherService(catalog repositories.CatalogRepository) MatcherService {
	return &matcherService{catalog: catalog}
}

func (m *matcherService) ComputeMatches(answers models.AnswerSet, numResults int) ([]models.MatchResult, error) {
	if answers.AcademicWeight < 0 || answers.CampusWeight < 0 || answers.SocialWeight < 0 {
		return nil, ErrInvalidWeights
	}
	weightSum := answers.WeightSum()
	if weightSum <= 0 {
		return nil, ErrInvalidWeights
	}

	profiles := m.catalog.All()
	results := make([]models.MatchResult, 0, len(profiles))

	for _, p := range profiles {
		result, err := scoreProgram(p, answers, weightSum)
		if err != nil {
			// One bad profile never aborts the batch.
			log.Warn().
				Str("university", p.University).
				Str("program", p.Program).
				Err(err).
				Msg("skipping profile")
			continue
		}
		results = append(results, result)
	}

	// Stable keeps catalog order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Overall > results[j].Overall
	})

	if numResults > 0 && numResults < len(results) {
		results = results[:numResults]
	}
	return results, nil
}

func scoreProgram(p models.ProgramProfile, answers models.AnswerSet, weightSum float64) (result models.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scoring panic: %v", r)
		}
	}()

	if p.University == "" || p.Program == "" {
		return models.MatchResult{}, errors.New("profile missing identity")
	}

	a := scoreAcademic(p, answers)
	c := scoreCampus(p, answers)
	s := scoreSocial(p, answers)

	overall := (answers.AcademicWeight*a + answers.CampusWeight*c + answers.SocialWeight*s) / weightSum

	return models.MatchResult{
		School:   p.University,
		Program:  p.Program,
		Overall:  overall,
		Academic: a,
		Campus:   c,
		Social:   s,
	}, nil
}

// interestScore applies the partial-credit ladder over the normalized
// match count: one matched category is worth 0.6, two 0.8, three or
// more the full 1.0.
func interestScore(userInterests, programInterests []string) float64 {
	if len(userInterests) == 0 {
		return 0
	}
	switch n := len(normalizeTags(programInterests, userInterests, interestMappings)); {
	case n == 0:
		return 0
	case n == 1:
		return 0.6
	case n == 2:
		return 0.8
	default:
		return 1.0
	}
}

// courseScore is the normalized-match ratio over the user's liked
// courses, capped at 1.0.
func courseScore(userCourses, programCourses []string) float64 {
	if len(userCourses) == 0 || len(programCourses) == 0 {
		return 0
	}
	matched := normalizeTags(programCourses, userCourses, courseMappings)
	ratio := float64(len(matched)) / math.Max(float64(len(userCourses)), 1)
	return math.Min(ratio, 1.0)
}

// numericAttributes fixes the iteration order of the eight rated
// attributes; similarity per attribute is linear on the 1-5 scale.
var numericAttributes = []string{
	"learning_style", "first_year_specialization", "coop_importance",
	"research_importance", "creativity_orientation", "career_certainty",
	"math_enjoyment", "collaboration_preference",
}

func scoreAcademic(p models.ProgramProfile, answers models.AnswerSet) float64 {
	iScore := interestScore(answers.Interests, p.Academic.Interests) * 0.4
	lcScore := courseScore(answers.LikedCourses, p.Academic.LikedHSCourses) * 0.2

	altScore := 0.0
	if len(answers.Alternatives) > 0 {
		matched := 0
		for _, alt := range answers.Alternatives {
			if containsString(p.Academic.AltToEngineering, alt) {
				matched++
			}
		}
		altScore = float64(matched) / math.Max(float64(len(answers.Alternatives)), 1) * 0.1
	}

	userValues := map[string]float64{
		"learning_style":            answers.LearningStyle,
		"first_year_specialization": answers.FirstYearSpecialization,
		"coop_importance":           answers.CoopImportance,
		"research_importance":       answers.ResearchImportance,
		"creativity_orientation":    answers.CreativityOrientation,
		"career_certainty":          answers.CareerCertainty,
		"math_enjoyment":            answers.MathEnjoyment,
		"collaboration_preference":  answers.CollaborationPreference,
	}

	// Strongly held preferences count extra toward the similarity.
	attrWeights := map[string]float64{
		"learning_style":            1.2,
		"first_year_specialization": 1.0,
		"coop_importance":           boostIf(answers.CoopImportance >= 4, 1.5),
		"research_importance":       boostIf(answers.ResearchImportance >= 4, 1.5),
		"creativity_orientation":    boostIf(answers.CreativityOrientation >= 4, 1.2),
		"career_certainty":          1.0,
		"math_enjoyment":            1.3,
		"collaboration_preference":  1.0,
	}

	totalWeight := 0.0
	for _, w := range attrWeights {
		totalWeight += w
	}

	weighted := 0.0
	for _, key := range numericAttributes {
		similarity := 1 - math.Abs(p.Academic.Rating(key)-userValues[key])/4.0
		weighted += similarity * attrWeights[key]
	}
	numScore := weighted / totalWeight * 0.3

	return iScore + lcScore + numScore + altScore
}

func boostIf(cond bool, boosted float64) float64 {
	if cond {
		return boosted
	}
	return 1.0
}

func scoreCampus(p models.ProgramProfile, answers models.AnswerSet) float64 {
	total := classSizeScore(answers.ClassSize, p.Campus.ClassSizeBin) +
		settingScore(answers.Setting, p.Campus.Setting) +
		housingScore(answers.HousingStyles, p.Campus.HousingStyles) +
		campusSizeScore(answers.CampusSize, p.Campus.CampusSize)
	return total / 4
}

// classSizeScore gives half credit only for the two specific adjacency
// pairs; "< 60" against "200+" never earns partial credit.
func classSizeScore(requested, actual string) float64 {
	if requested == actual {
		return 1.0
	}
	if requested == "< 60" && actual == "60-200" {
		return 0.5
	}
	if requested == "200+" && actual == "60-200" {
		return 0.5
	}
	return 0.0
}

var (
	urbanSettings = map[string]bool{"Urban": true, "Suburban": true}
	ruralSettings = map[string]bool{"Small-town": true, "Rural": true}
)

func settingScore(requested, actual string) float64 {
	if requested == actual {
		return 1.0
	}
	if urbanSettings[requested] && urbanSettings[actual] {
		return 0.5
	}
	if ruralSettings[requested] && ruralSettings[actual] {
		return 0.5
	}
	return 0.0
}

func housingScore(userStyles, programStyles []string) float64 {
	if len(programStyles) == 0 {
		return 0.0
	}
	if len(userStyles) == 0 {
		return 0.0
	}
	matched := 0
	for _, style := range userStyles {
		if containsString(programStyles, style) {
			matched++
		}
	}
	return float64(matched) / float64(len(userStyles))
}

var campusSizes = []string{"Small", "Medium", "Large"}

func campusSizeScore(requested, actual string) float64 {
	if requested == actual {
		return 1.0
	}
	reqIdx, actIdx := indexOf(campusSizes, requested), indexOf(campusSizes, actual)
	if reqIdx == -1 || actIdx == -1 {
		return 0.0
	}
	if abs(reqIdx-actIdx) == 1 {
		return 0.5
	}
	return 0.0
}

func scoreSocial(p models.ProgramProfile, answers models.AnswerSet) float64 {
	nsScore := 1 - math.Abs(p.Social.NightSceneValue()-answers.NightScene)/4.0

	var sportScore float64
	if containsString(answers.Sports, "None") {
		// Indifference to sports is full satisfaction.
		sportScore = 1.0
	} else {
		matched := 0
		for _, sport := range answers.Sports {
			if containsString(p.Social.Sports, sport) {
				matched++
			}
		}
		sportScore = float64(matched) / math.Max(float64(len(answers.Sports)), 1)
	}

	clubScore := 0.5
	if len(answers.Clubs) > 0 {
		matched := 0
		for _, club := range answers.Clubs {
			if containsString(p.Social.Clubs, club) {
				matched++
			}
		}
		clubScore = float64(matched) / math.Max(float64(len(answers.Clubs)), 1)
	}

	cevScore := 1 - math.Abs(p.Social.CulturalEventValue()-answers.CulturalEventFreq)/4.0

	return (nsScore + sportScore + clubScore + cevScore) / 4
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
