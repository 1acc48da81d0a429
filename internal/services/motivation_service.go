package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/neo11221/wenhong-cramschool/pkg/genai"
)

// Quote is a fallback encouragement line with attribution
type Quote struct {
	Text   string
	Author string
}

// fallbackQuotes is the fixed local quote table used whenever the
// generative API is unavailable or misbehaves.
var fallbackQuotes = []Quote{
	{"Education is not the filling of a pail, but the lighting of a fire.", "William Butler Yeats"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"Anyone who stops learning is old, whether at twenty or eighty.", "Henry Ford"},
	{"Education is the most powerful weapon which you can use to change the world.", "Nelson Mandela"},
	{"Your time is limited, so don't waste it living someone else's life.", "Steve Jobs"},
	{"The road ahead is long; I shall search high and low.", "Qu Yuan"},
	{"Diligence is the path up the mountain of books; hard work is the boat across the sea of learning.", "Han Yu"},
	{"We are what we repeatedly do. Excellence, then, is not an act, but a habit.", "Aristotle"},
	{"Genius is one percent inspiration and ninety-nine percent perspiration.", "Thomas Edison"},
	{"Action is the foundational key to all success.", "Pablo Picasso"},
}

// TextGenerator is the slice of the genai client the service needs
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// MotivationService produces encouragement text and daily missions. Its
// contract is total: both operations always return a usable value and
// never surface an error, falling back to local data on any failure so
// this enrichment can never block a core flow.
type MotivationService struct {
	generator TextGenerator
}

// NewMotivationService creates a new MotivationService
func NewMotivationService(generator TextGenerator) *MotivationService {
	return &MotivationService{
		generator: generator,
	}
}

// GetEncouragement returns a short encouragement string for the profile.
// On any failure it returns a quote from the local table instead.
func (s *MotivationService) GetEncouragement(ctx context.Context, profile *models.Profile, rank models.RankTitle) string {
	fallback := s.fallbackEncouragement()
	if s.generator == nil {
		return fallback
	}

	prompt := fmt.Sprintf(
		"You are a warm, humorous mentor at a learning workshop.\n"+
			"Student info:\n- Name: %s\n- Current title: %s\n- Spendable points: %d\n- Lifetime earned points: %d\n\n"+
			"Write a short (30-60 words) encouragement that praises their progress and quotes a famous saying with its author. "+
			"Use a friendly, older-sibling tone.",
		profile.Name, rank.Name, profile.Points, profile.TotalEarned,
	)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

// GenerateDailyMission returns a daily learning mission for the profile.
// On any failure it returns the fixed default mission instead.
func (s *MotivationService) GenerateDailyMission(ctx context.Context, profile *models.Profile) models.Mission {
	if s.generator == nil {
		return models.DefaultMission()
	}

	prompt := fmt.Sprintf(
		"Generate a random daily learning mission for a workshop student with %d lifetime points.\n"+
			"Answer with JSON only: {\"title\": \"...\", \"description\": \"...\", \"points\": <50-200>}",
		profile.TotalEarned,
	)

	text, err := s.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return models.DefaultMission()
	}

	var mission models.Mission
	if err := json.Unmarshal([]byte(text), &mission); err != nil {
		return models.DefaultMission()
	}
	if mission.Title == "" || mission.Description == "" {
		return models.DefaultMission()
	}
	mission.ClampPoints()
	return mission
}

func (s *MotivationService) fallbackEncouragement() string {
	q := fallbackQuotes[rand.Intn(len(fallbackQuotes))]
	return fmt.Sprintf("%q — %s", q.Text, q.Author)
}

// Compile-time check to ensure the genai client satisfies TextGenerator
var _ TextGenerator = (*genai.Client)(nil)
