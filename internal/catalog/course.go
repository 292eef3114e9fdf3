package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Level is a course difficulty level. The zero value is not valid.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelAll          Level = "All Levels"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAll:
		return true
	}
	return false
}

// LessonType distinguishes curriculum entries.
type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
)

type Instructor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Bio      string  `json:"bio"`
	Rating   float64 `json:"rating"`
	Courses  int     `json:"courses"`
	Students int     `json:"students"`
}

type Lesson struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Duration string     `json:"duration"`
	Type     LessonType `json:"type"`
	Preview  bool       `json:"preview"`
}

type Section struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Curriculum is an ordered list of sections, each an ordered list of
// lessons. Ordering is significant and stable.
type Curriculum struct {
	Sections []Section `json:"sections"`
}

// LessonCount counts the lessons actually present in the curriculum,
// which for this dataset is a sample and smaller than Course.Lessons.
func (c Curriculum) LessonCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Lessons)
	}
	return n
}

// Course is an immutable catalog record. DiscountPrice, when set, is
// strictly less than Price.
type Course struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Category      string           `json:"category"`
	Level         Level            `json:"level"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Enrollments   int              `json:"enrollments"`
	Duration      string           `json:"duration"`
	Lessons       int              `json:"lessons"`
	Featured      bool             `json:"featured"`
	Bestseller    bool             `json:"bestseller"`
	Tags          []string         `json:"tags"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Instructor    Instructor       `json:"instructor"`
	Curriculum    Curriculum       `json:"curriculum"`
}

// EffectivePrice is what the course actually costs: the discount price
// when one is set, the full price otherwise.
func (c Course) EffectivePrice() decimal.Decimal {
	if c.DiscountPrice != nil {
		return *c.DiscountPrice
	}
	return c.Price
}
