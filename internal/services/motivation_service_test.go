package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/neo11221/wenhong-cramschool/internal/models"
	"github.com/stretchr/testify/assert"
)

// stubGenerator lets each test script the generator's behavior
type stubGenerator struct {
	text    string
	jsonOut string
	err     error
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.text, g.err
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return g.jsonOut, g.err
}

func testProfile() *models.Profile {
	return &models.Profile{Name: "Mia Lin", Points: 800, TotalEarned: 1800, Role: models.RoleStudent}
}

func TestGetEncouragementUsesGeneratorText(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{text: "Great run this week, Mia!"})
	got := svc.GetEncouragement(context.Background(), testProfile(), models.ResolveRank(1800))
	assert.Equal(t, "Great run this week, Mia!", got)
}

func TestGetEncouragementFallsBackOnError(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{err: errors.New("upstream down")})
	got := svc.GetEncouragement(context.Background(), testProfile(), models.ResolveRank(1800))
	assert.NotEmpty(t, got)
	assertIsFallbackQuote(t, got)
}

func TestGetEncouragementFallsBackOnBlankText(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{text: "   "})
	got := svc.GetEncouragement(context.Background(), testProfile(), models.ResolveRank(1800))
	assertIsFallbackQuote(t, got)
}

func TestGetEncouragementWithoutGenerator(t *testing.T) {
	svc := NewMotivationService(nil)
	got := svc.GetEncouragement(context.Background(), testProfile(), models.ResolveRank(1800))
	assertIsFallbackQuote(t, got)
}

func assertIsFallbackQuote(t *testing.T, got string) {
	t.Helper()
	for _, q := range fallbackQuotes {
		if strings.Contains(got, q.Text) && strings.Contains(got, q.Author) {
			return
		}
	}
	t.Fatalf("expected a quote from the local table, got %q", got)
}

func TestGenerateDailyMissionParsesAndClamps(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{
		jsonOut: `{"title":"Speed Math","description":"Finish 20 arithmetic drills.","points":999}`,
	})
	mission := svc.GenerateDailyMission(context.Background(), testProfile())
	assert.Equal(t, "Speed Math", mission.Title)
	assert.Equal(t, models.MissionMaxPoints, mission.Points)
}

func TestGenerateDailyMissionFallsBackOnError(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{err: errors.New("upstream down")})
	mission := svc.GenerateDailyMission(context.Background(), testProfile())
	assert.Equal(t, models.DefaultMission(), mission)
}

func TestGenerateDailyMissionFallsBackOnBadJSON(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{jsonOut: "not json at all"})
	mission := svc.GenerateDailyMission(context.Background(), testProfile())
	assert.Equal(t, models.DefaultMission(), mission)
}

func TestGenerateDailyMissionFallsBackOnMissingFields(t *testing.T) {
	svc := NewMotivationService(&stubGenerator{jsonOut: `{"points":120}`})
	mission := svc.GenerateDailyMission(context.Background(), testProfile())
	assert.Equal(t, models.DefaultMission(), mission)
}

func TestGenerateDailyMissionWithoutGenerator(t *testing.T) {
	svc := NewMotivationService(nil)
	mission := svc.GenerateDailyMission(context.Background(), testProfile())
	assert.Equal(t, models.DefaultMission(), mission)
}
