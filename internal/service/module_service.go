package service

import (
	"errors"
	"strings"

	"learning-service/internal/models"
)

var ErrModuleNotFound = errors.New("module not found")

// ModuleService serves the built-in NCERT-style module catalog. The catalog
// is static; a database-backed version can replace it without touching the
// handler.
type ModuleService struct {
	catalog []models.LearningModule
}

func NewModuleService() *ModuleService {
	return &ModuleService{catalog: defaultCatalog()}
}

func (s *ModuleService) List(subject string) []models.LearningModule {
	if subject == "" {
		return s.catalog
	}
	filtered := []models.LearningModule{}
	for _, m := range s.catalog {
		if strings.EqualFold(m.Subject, subject) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func (s *ModuleService) Get(id string) (*models.LearningModule, error) {
	for _, m := range s.catalog {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, ErrModuleNotFound
}

func defaultCatalog() []models.LearningModule {
	return []models.LearningModule{
		{
			ID:            "sci-solar",
			Title:         "Solar System",
			Subject:       "Science",
			Description:   "Explore planets, stars, and our solar system with 3D models",
			Difficulty:    "Beginner",
			EstimatedTime: "30 mins",
			Content:       "The Solar System consists of the Sun and everything that orbits it, including planets, moons, asteroids, and comets.",
		},
		{
			ID:            "math-fractions",
			Title:         "Understanding Fractions",
			Subject:       "Mathematics",
			Description:   "Learn fractions with visual examples and practice",
			Difficulty:    "Beginner",
			EstimatedTime: "25 mins",
			Content:       "A fraction represents a part of a whole. It consists of a numerator (top number) and denominator (bottom number).",
		},
		{
			ID:            "sci-circuits",
			Title:         "Electric Circuits",
			Subject:       "Science",
			Description:   "Understand electricity and circuits with interactive diagrams",
			Difficulty:    "Intermediate",
			EstimatedTime: "40 mins",
			Content:       "An electric circuit is a closed path through which electric current flows. It includes a power source, wires, and load.",
		},
		{
			ID:            "math-algebra",
			Title:         "Basic Algebra",
			Subject:       "Mathematics",
			Description:   "Introduction to variables and equations",
			Difficulty:    "Intermediate",
			EstimatedTime: "35 mins",
			Content:       "Algebra uses letters to represent numbers in equations. For example: x + 5 = 10, where x = 5.",
		},
		{
			ID:            "social-india",
			Title:         "Geography of India",
			Subject:       "Social Studies",
			Description:   "Learn about Indian states, rivers, and geography",
			Difficulty:    "Beginner",
			EstimatedTime: "30 mins",
			Content:       "India is the 7th largest country by area. It has diverse geography including mountains, plains, deserts, and coastal regions.",
		},
		{
			ID:            "sci-plants",
			Title:         "Plant Life Cycle",
			Subject:       "Science",
			Description:   "Discover how plants grow and reproduce",
			Difficulty:    "Beginner",
			EstimatedTime: "20 mins",
			Content:       "Plants go through stages: seed, germination, growth, reproduction, and seed dispersal.",
		},
	}
}
