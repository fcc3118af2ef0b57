package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/repositories"
)

// Verdict labels returned by the admission estimator.
const (
	VerdictVeryLikely = "Very likely"
	VerdictLikely     = "Likely"
	VerdictPossible   = "Possible, but below average"
	VerdictUnlikely   = "Unlikely"
	VerdictNoData     = "No offer data found for that program"
)

const maxECBonus = 3.0

type ChanceService interface {
	// PredictChance estimates admission likelihood for the requested
	// university/program cohort. A cohort with no historical offers
	// yields a NoData result, not an error; only a failed read of the
	// admissions table errors.
	PredictChance(university, program string, average float64, ecs []string) (*models.ChanceResult, error)
}

type chanceService struct {
	offers repositories.OfferRepository
}

func NewChanceService(offers repositories.OfferRepository) ChanceService {
	return &chanceService{offers: offers}
}

func (c *chanceService) PredictChance(university, program string, average float64, ecs []string) (*models.ChanceResult, error) {
	// The admissions table is small and re-read on every call, so
	// concurrent requests never share a parse cursor.
	records, err := c.offers.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load admissions data: %w", err)
	}

	cohort := filterOffers(records, university, program)
	if len(cohort) == 0 {
		log.Info().
			Str("university", university).
			Str("program", program).
			Msg("no historical offers matched")
		return &models.ChanceResult{
			University: university,
			Program:    program,
			Verdict:    VerdictNoData,
			NoData:     true,
		}, nil
	}

	avgAccept, minAccept, maxAccept := offerStats(cohort)
	suppRequired := anySuppRequired(cohort)

	bonus := 0.0
	if suppRequired && len(ecs) > 0 {
		bonus = ecBonus(ecs, cohort)
	}
	adjusted := average + bonus

	score, verdict := placeScore(adjusted, minAccept, avgAccept, maxAccept)

	return &models.ChanceResult{
		University:            university,
		Program:               program,
		SupplementaryRequired: suppRequired,
		Average:               average,
		Bonus:                 bonus,
		AdjustedAverage:       adjusted,
		HistoricalAvg:         avgAccept,
		HistoricalMin:         minAccept,
		HistoricalMax:         maxAccept,
		Score:                 score,
		Verdict:               verdict,
	}, nil
}

// filterOffers keeps rows for the exact university (case-insensitive),
// a program name containing the requested program, and an "offer"
// decision.
func filterOffers(records []models.OfferRecord, university, program string) []models.OfferRecord {
	programLower := strings.ToLower(program)
	var cohort []models.OfferRecord
	for _, r := range records {
		if !strings.EqualFold(r.University, university) {
			continue
		}
		if !strings.Contains(strings.ToLower(r.ProgramName), programLower) {
			continue
		}
		if !strings.EqualFold(r.Decision, "offer") {
			continue
		}
		cohort = append(cohort, r)
	}
	return cohort
}

func offerStats(cohort []models.OfferRecord) (avg, min, max float64) {
	min = cohort[0].Top6Average
	max = cohort[0].Top6Average
	sum := 0.0
	for _, r := range cohort {
		sum += r.Top6Average
		if r.Top6Average < min {
			min = r.Top6Average
		}
		if r.Top6Average > max {
			max = r.Top6Average
		}
	}
	return sum / float64(len(cohort)), min, max
}

// anySuppRequired reports whether any cohort row carries a non-blank
// supplementary-application marker. Any text at all counts, matching
// the source data's loose bookkeeping.
func anySuppRequired(cohort []models.OfferRecord) bool {
	for _, r := range cohort {
		if strings.TrimSpace(r.SuppApp) != "" {
			return true
		}
	}
	return false
}

// ecBonus counts each (row, extracurricular) pair where the EC string
// appears inside the row's combined notes, then adds a base point when
// the user listed three or more ECs. Capped at maxECBonus, rounded to
// one decimal.
func ecBonus(ecs []string, cohort []models.OfferRecord) float64 {
	matchCount := 0
	for _, r := range cohort {
		note := strings.ToLower(r.SuppNotes + " " + r.Comments)
		for _, ec := range ecs {
			if ec == "" {
				continue
			}
			if strings.Contains(note, strings.ToLower(ec)) {
				matchCount++
			}
		}
	}

	base := 0.0
	if len(ecs) >= 3 {
		base = 1.0
	}
	return round1(math.Min(base+0.5*float64(matchCount), maxECBonus))
}

// placeScore maps the adjusted average to a score and verdict by its
// position against [min, avg, max]. Zero-width bands snap to the band
// floor instead of interpolating, so a single-offer cohort stays
// defined.
func placeScore(adjusted, min, avg, max float64) (float64, string) {
	var score float64
	var verdict string

	switch {
	case adjusted >= max:
		score = 95 + ((adjusted-max)/5)*5
		verdict = VerdictVeryLikely
	case adjusted >= avg:
		score = 75
		if max > avg {
			score = 75 + ((adjusted-avg)/(max-avg))*19
		}
		verdict = VerdictLikely
	case adjusted >= min:
		score = 50
		if avg > min {
			score = 50 + ((adjusted-min)/(avg-min))*24
		}
		verdict = VerdictPossible
	default:
		score = 10
		if min > 0 {
			score = math.Max(10, (adjusted/min)*40)
		}
		verdict = VerdictUnlikely
	}

	return math.Min(round1(score), 100), verdict
}

// SplitECs parses the frontend's comma-separated extracurricular field.
func SplitECs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ecs []string
	for _, part := range strings.Split(raw, ",") {
		if ec := strings.TrimSpace(part); ec != "" {
			ecs = append(ecs, ec)
		}
	}
	return ecs
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
