package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"linku/linku-api/internal/models"
	"linku/linku-api/internal/services"
)

type MatchHandler struct {
	matcher        services.MatcherService
	defaultResults int
	fullResults    int
}

func NewMatchHandler(matcher services.MatcherService, defaultResults, fullResults int) *MatchHandler {
	return &MatchHandler{
		matcher:        matcher,
		defaultResults: defaultResults,
		fullResults:    fullResults,
	}
}

// HandleMatch handles POST /api/match
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	matches, err := h.computeFromBody(c, h.defaultResults)
	if err != nil {
		return matchError(c, err)
	}
	return c.JSON(matches)
}

// HandleFullMatches handles POST /api/full-matches
func (h *MatchHandler) HandleFullMatches(c *fiber.Ctx) error {
	matches, err := h.computeFromBody(c, h.fullResults)
	if err != nil {
		return matchError(c, err)
	}
	return c.JSON(models.FullMatchesResponse{
		Success: true,
		Matches: matches,
	})
}

var errBadPayload = errors.New("invalid request payload")

func (h *MatchHandler) computeFromBody(c *fiber.Ctx, numResults int) ([]models.MatchResult, error) {
	var answers models.QuizAnswers
	if err := c.BodyParser(&answers); err != nil {
		return nil, errBadPayload
	}

	requestID := uuid.NewString()
	log.Info().
		Str("request_id", requestID).
		Int("num_results", numResults).
		Msg("computing matches")

	matches, err := h.matcher.ComputeMatches(answers.Resolve(), numResults)
	if err != nil {
		log.Error().Str("request_id", requestID).Err(err).Msg("match computation failed")
		return nil, err
	}

	log.Info().
		Str("request_id", requestID).
		Int("returned", len(matches)).
		Msg("matches computed")
	return matches, nil
}

func matchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBadPayload), errors.Is(err, services.ErrInvalidWeights):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
