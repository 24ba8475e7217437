package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/ExamPortal/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrFeedbackDisabled is returned when no model is configured.
var ErrFeedbackDisabled = errors.New("answer feedback is not configured")

// FeedbackGenerator explains a wrong answer to the reviewing faculty member.
// Its output is advisory and never changes a grade.
type FeedbackGenerator interface {
	Enabled() bool
	ExplainAnswer(ctx context.Context, questionText, correctAnswer, studentAnswer string) (string, error)
	// Close releases the model client; the generator is disabled afterwards.
	Close() error
}

type geminiFeedbackService struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewFeedbackGenerator(cfg *config.Config) (FeedbackGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Review feedback is disabled.")
		return &geminiFeedbackService{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel("gemini-1.5-flash")
	m.SetTemperature(0.2)
	return &geminiFeedbackService{client: client, model: m, timeout: 15 * time.Second}, nil
}

func (s *geminiFeedbackService) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client, s.model = nil, nil
	return err
}

func (s *geminiFeedbackService) Enabled() bool {
	return s.model != nil
}

func (s *geminiFeedbackService) ExplainAnswer(ctx context.Context, questionText, correctAnswer, studentAnswer string) (string, error) {
	if s.model == nil {
		return "", ErrFeedbackDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildFeedbackPrompt(questionText, correctAnswer, studentAnswer)))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}

func buildFeedbackPrompt(questionText, correctAnswer, studentAnswer string) string {
	var b strings.Builder
	b.WriteString("You are helping a teacher review a graded school exam.\n")
	b.WriteString("The answer was graded by exact match after trimming and ignoring case, and was marked wrong.\n")
	b.WriteString("In at most two sentences, explain the likely misunderstanding. Do not change the grade.\n\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(questionText)
	b.WriteString("\n---\nExpected answer: ")
	b.WriteString(correctAnswer)
	b.WriteString("\nStudent answer: ")
	if strings.TrimSpace(studentAnswer) == "" {
		b.WriteString("(no answer)")
	} else {
		b.WriteString(studentAnswer)
	}
	b.WriteString("\n")
	return b.String()
}
