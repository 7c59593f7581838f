package insight

import (
	"context"
	"fmt"
	"log/slog"

	"paradecast/internal/config"
	"paradecast/internal/providers/gemini"
	"paradecast/internal/types"
)

// FailureMessage is shown verbatim when the language-model call fails. The
// failure is never propagated as an error; there is no retry.
const FailureMessage = "Sorry, an insight could not be generated right now. Please try again later."

const systemPrompt = "You are a friendly AI assistant providing weather insights. " +
	"Summarize the adverse-condition likelihoods for the user in two or three sentences, " +
	"in plain language, without repeating the raw numbers for every axis."

// TextProvider generates natural-language text from a prompt pair
type TextProvider interface {
	GenerateText(ctx context.Context, systemPrompt, userQuery string) (string, error)
}

// Request carries everything the insight prompt needs. The likelihoods are
// passed explicitly by the caller rather than read from server state.
type Request struct {
	Likelihoods         types.LikelihoodResult `json:"likelihoods"`
	Location            string                 `json:"location"`
	Dates               types.DateRange        `json:"dates"`
	DiscomfortThreshold float64                `json:"discomfort_threshold"`
}

// Response is the generated text. Generated is false when the fixed
// failure message was substituted.
type Response struct {
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
}

// Service produces natural-language summaries of likelihood results
type Service interface {
	GetInsight(ctx context.Context, req Request) Response
}

type insightService struct {
	provider TextProvider
	logger   *slog.Logger
}

// NewService creates an insight service backed by the Gemini API
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithProvider(gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model), logger)
}

// NewServiceWithProvider creates an insight service with a custom text
// provider. This is useful for testing with mock providers.
func NewServiceWithProvider(provider TextProvider, logger *slog.Logger) Service {
	return &insightService{
		provider: provider,
		logger:   logger.With("component", "insight-service"),
	}
}

// GetInsight asks the language model for a summary. Any failure resolves to
// the fixed failure message so the caller always has text to display.
func (s *insightService) GetInsight(ctx context.Context, req Request) Response {
	text, err := s.provider.GenerateText(ctx, systemPrompt, buildUserQuery(req))
	if err != nil {
		s.logger.Warn("insight generation failed", "error", err)
		return Response{Text: FailureMessage}
	}

	return Response{Text: text, Generated: true}
}

func buildUserQuery(req Request) string {
	return fmt.Sprintf(
		"Location: %s\nDates: %s\nDiscomfort threshold: %.1f°C\n"+
			"Likelihoods (percent): veryHot=%d, veryCold=%d, veryWindy=%d, veryWet=%d, veryUncomfortable=%d",
		req.Location,
		req.Dates.String(),
		req.DiscomfortThreshold,
		req.Likelihoods.VeryHot,
		req.Likelihoods.VeryCold,
		req.Likelihoods.VeryWindy,
		req.Likelihoods.VeryWet,
		req.Likelihoods.VeryUncomfortable,
	)
}
