package metrics

import "math"

// Health-score category weights (points out of 100 when every input is known).
const (
	scoreMaxBMI       = 20.0
	scoreMaxActivity  = 20.0
	scoreMaxHydration = 15.0
	scoreMaxNutrition = 25.0
	scoreMaxCardio    = 20.0
)

// CategoryScore is one scored component of the composite health score.
type CategoryScore struct {
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"max_points"`
}

// HealthScore is the weighted composite result. Score is normalized to the
// maximum achievable given which inputs were present, so a missing hydration
// or nutrition input shrinks the denominator instead of being defaulted.
type HealthScore struct {
	Score           int             `json:"score"` // 0-100
	Rating          string          `json:"rating"`
	Categories      []CategoryScore `json:"categories"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

// HealthScoreInput carries the already-computed pipeline values the score
// consumes. HydrationPct and NutritionPct are percentage-of-target numbers
// (0-100+); nil means the target or intake is unknown and the category is
// skipped entirely. A nil VO2Max scores the cardio category at a neutral 10.
type HealthScoreInput struct {
	BMI           float64
	ActivityLevel ActivityLevel
	VO2Max        *float64
	HydrationPct  *float64
	NutritionPct  *float64
	Age           int
	Gender        Gender
}

// CalculateHealthScore builds the composite score, rating, and up to five
// recommendations targeting categories scoring below 70% of their weight.
func CalculateHealthScore(in HealthScoreInput) HealthScore {
	categories := []CategoryScore{
		{Name: "bmi", Points: scoreBMI(in.BMI), MaxPoints: scoreMaxBMI},
		{Name: "activity", Points: scoreActivity(in.ActivityLevel), MaxPoints: scoreMaxActivity},
	}
	if in.HydrationPct != nil {
		categories = append(categories, CategoryScore{
			Name: "hydration", Points: scoreHydration(*in.HydrationPct), MaxPoints: scoreMaxHydration,
		})
	}
	if in.NutritionPct != nil {
		categories = append(categories, CategoryScore{
			Name: "nutrition", Points: scoreNutrition(*in.NutritionPct), MaxPoints: scoreMaxNutrition,
		})
	}
	categories = append(categories, CategoryScore{
		Name: "cardio", Points: scoreCardio(in.VO2Max, in.Age, in.Gender), MaxPoints: scoreMaxCardio,
	})

	var points, maxPoints float64
	for _, c := range categories {
		points += c.Points
		maxPoints += c.MaxPoints
	}

	score := int(math.Round(points / maxPoints * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return HealthScore{
		Score:           score,
		Rating:          scoreRating(score),
		Categories:      categories,
		Recommendations: scoreRecommendations(categories),
	}
}

/* ─── Category scorers ───────────────────────────────────────────────── */

// scoreBMI awards full points in the 18.5-24.9 band and tapers to zero
// beyond 35 or below 15.
func scoreBMI(bmi float64) float64 {
	switch {
	case bmi >= 18.5 && bmi < 25.0:
		return 20
	case bmi >= 25.0 && bmi < 28.0:
		return 14
	case bmi >= 28.0 && bmi < 30.0:
		return 10
	case bmi >= 30.0 && bmi < 32.5:
		return 6
	case bmi >= 32.5 && bmi < 35.0:
		return 3
	case bmi >= 17.0 && bmi < 18.5:
		return 12
	case bmi >= 15.0 && bmi < 17.0:
		return 5
	default: // < 15 or >= 35
		return 0
	}
}

var activityScorePoints = map[ActivityLevel]float64{
	ActivitySedentary:  5,
	ActivityLight:      10,
	ActivityModerate:   15,
	ActivityActive:     18,
	ActivityVeryActive: 20,
}

func scoreActivity(level ActivityLevel) float64 {
	return activityScorePoints[level]
}

// scoreHydration grades percent-of-target water intake.
func scoreHydration(pct float64) float64 {
	switch {
	case pct >= 100:
		return 15
	case pct >= 80:
		return 12
	case pct >= 60:
		return 8
	case pct >= 40:
		return 4
	default:
		return 1
	}
}

// scoreNutrition grades percent-of-target adherence to the macro plan.
func scoreNutrition(pct float64) float64 {
	switch {
	case pct >= 90:
		return 25
	case pct >= 75:
		return 20
	case pct >= 60:
		return 14
	case pct >= 40:
		return 8
	default:
		return 3
	}
}

// scoreCardio grades VO2max against the age/gender classification bands; a
// missing estimate scores a neutral 10 rather than skipping the category.
func scoreCardio(vo2 *float64, age int, gender Gender) float64 {
	if vo2 == nil {
		return 10
	}
	switch ClassifyVO2Max(*vo2, age, gender) {
	case "Excellent":
		return 20
	case "Good":
		return 16
	case "Above Average":
		return 13
	case "Average":
		return 10
	default:
		return 5
	}
}

/* ─── Rating and recommendations ─────────────────────────────────────── */

func scoreRating(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "very_good"
	case score >= 70:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "poor"
	}
}

var categoryRecommendations = map[string]string{
	"bmi":       "Move toward the normal BMI band with a moderate calorie adjustment.",
	"activity":  "Increase weekly activity; even one level up meaningfully raises TDEE.",
	"hydration": "Raise daily water intake toward your computed hydration target.",
	"nutrition": "Tighten adherence to your macro targets, starting with protein.",
	"cardio":    "Add 2-3 weekly cardio sessions in zone 2 to raise aerobic capacity.",
}

// scoreRecommendations flags every category scoring below 70% of its weight,
// capped at five.
func scoreRecommendations(categories []CategoryScore) []string {
	var recs []string
	for _, c := range categories {
		if c.Points < 0.7*c.MaxPoints {
			if rec, ok := categoryRecommendations[c.Name]; ok {
				recs = append(recs, rec)
			}
		}
		if len(recs) == 5 {
			break
		}
	}
	return recs
}
