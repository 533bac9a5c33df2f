package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/hireloop-ai/hireloop/internal/models"
)

// DefaultCount is how many candidates are fabricated per role.
const DefaultCount = 10

const (
	scoreMin = 60
	scoreMax = 100
)

var firstNames = []string{
	"Aarav", "Liam", "Emma", "Noah", "Olivia", "Aria", "Ethan", "Mia",
	"Sophia", "Lucas", "Aaliyah", "Zara", "Jayden", "Alina", "David",
}

var lastNames = []string{
	"Patel", "Johnson", "Singh", "Garcia", "Kumar", "Williams", "Chen",
	"Khan", "Brown", "Rodriguez", "Ali", "Davis", "Nguyen", "Lee", "Shah",
}

var companies = []string{"TechNova", "DataSphere", "InnovateX", "CodeWorks", "NextGen"}

var locations = []string{"San Francisco, CA", "Austin, TX", "Bangalore, India", "Dubai, UAE", "Remote"}

var matchReasons = []string{
	"Relevant experience in similar role",
	"Strong technical skills matching JD",
	"Excellent cultural alignment",
	"Recent experience at high-growth startup",
	"Highly recommended by references",
}

// Generator fabricates synthetic candidate profiles. The data is dummy:
// uncorrelated with the job description beyond interpolating its title.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by rng. Pass nil for a time-seeded source;
// tests pass a fixed seed for deterministic batches.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate fabricates count candidate profiles for the given role title.
// Every attribute is sampled uniformly and independently; duplicate names
// across a batch are possible and acceptable.
func (g *Generator) Generate(roleTitle string, count int) []models.Candidate {
	titles := []string{
		"Senior " + roleTitle,
		roleTitle + " II",
		"Lead " + roleTitle,
		roleTitle + " Specialist",
		roleTitle + " Consultant",
	}

	candidates := make([]models.Candidate, 0, count)
	for i := 0; i < count; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		candidates = append(candidates, models.Candidate{
			Name:            first + " " + last,
			CurrentTitle:    g.pick(titles),
			Company:         g.pick(companies),
			Location:        g.pick(locations),
			LinkedIn:        "https://linkedin.com/in/" + strings.ToLower(first) + strings.ToLower(last),
			MatchReason:     g.pick(matchReasons),
			FitScore:        g.score(),
			CultureScore:    g.score(),
			ExperienceScore: g.score(),
		})
	}
	return candidates
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) score() int {
	return scoreMin + g.rng.Intn(scoreMax-scoreMin+1)
}
