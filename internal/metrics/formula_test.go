package metrics

import (
	"errors"
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

// baseProfile returns a fully-populated profile for formula tests; individual
// tests override fields to exercise specific cascade branches.
func baseProfile() UserProfile {
	return UserProfile{
		Age:           30,
		Gender:        GenderMale,
		Country:       "DE",
		WeightKG:      70,
		HeightCM:      175,
		ActivityLevel: ActivityModerate,
		DietType:      DietOmnivore,
		Goal:          GoalMaintenance,
		Experience:    ExperienceIntermediate,
	}
}

/* ─── Selection cascade ──────────────────────────────────────────────── */

// TestSelectBMRFormula_Cascade walks each branch of the priority cascade in
// order and checks formula, accuracy band, and confidence.
func TestSelectBMRFormula_Cascade(t *testing.T) {
	cases := []struct {
		name       string
		mutFn      func(p *UserProfile)
		formula    BMRFormula
		confidence int
		accuracy   string
	}{
		{
			"DEXA body fat picks Katch-McArdle at 95",
			func(p *UserProfile) { p.BodyFatPercent = floatPtr(18); p.BodyFatSource = BodyFatDEXA },
			FormulaKatchMcArdle, 95, "±5%",
		},
		{
			"BodPod body fat picks Katch-McArdle at 95",
			func(p *UserProfile) { p.BodyFatPercent = floatPtr(18); p.BodyFatSource = BodyFatBodPod },
			FormulaKatchMcArdle, 95, "±5%",
		},
		{
			"elite experience picks Cunningham at 90",
			func(p *UserProfile) { p.Experience = ExperienceElite },
			FormulaCunningham, 90, "±5%",
		},
		{
			"3+ training years with sub-15 body fat picks Cunningham",
			func(p *UserProfile) {
				p.TrainingYears = 4
				p.BodyFatPercent = floatPtr(12)
				p.BodyFatSource = BodyFatManual
			},
			FormulaCunningham, 90, "±5%",
		},
		{
			"calipers picks Katch-McArdle at 80",
			func(p *UserProfile) { p.BodyFatPercent = floatPtr(20); p.BodyFatSource = BodyFatCalipers },
			FormulaKatchMcArdle, 80, "±7%",
		},
		{
			"photo estimate picks Katch-McArdle at 70",
			func(p *UserProfile) { p.BodyFatPercent = floatPtr(20); p.BodyFatSource = BodyFatAIEstimate },
			FormulaKatchMcArdle, 70, "±10%",
		},
		{
			"no body fat defaults to Mifflin-St Jeor at 85",
			func(p *UserProfile) {},
			FormulaMifflinStJeor, 85, "±10%",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseProfile()
			tc.mutFn(&p)
			got := SelectBMRFormula(p)
			if got.Formula != tc.formula {
				t.Errorf("formula = %s, want %s", got.Formula, tc.formula)
			}
			if got.Confidence != tc.confidence {
				t.Errorf("confidence = %d, want %d", got.Confidence, tc.confidence)
			}
			if got.Accuracy != tc.accuracy {
				t.Errorf("accuracy = %q, want %q", got.Accuracy, tc.accuracy)
			}
			if got.Reason == "" {
				t.Error("expected a human-readable reason")
			}
		})
	}
}

/* ─── BMR values ─────────────────────────────────────────────────────── */

// TestCalculateBMR_MifflinMale pins the male Mifflin-St Jeor value:
// 10·70 + 6.25·175 − 5·30 + 5 = 1648.75.
func TestCalculateBMR_MifflinMale(t *testing.T) {
	bmr, err := CalculateBMR(baseProfile(), FormulaMifflinStJeor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmr-1648.75) > 0.01 {
		t.Errorf("male Mifflin BMR = %.2f, want 1648.75", bmr)
	}
}

// TestCalculateBMR_MifflinGenderConstants checks the female and
// other/unspecified gender constants (−161, and the −78 average).
func TestCalculateBMR_MifflinGenderConstants(t *testing.T) {
	p := baseProfile()
	base := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)

	p.Gender = GenderFemale
	bmr, err := CalculateBMR(p, FormulaMifflinStJeor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmr-(base-161)) > 0.01 {
		t.Errorf("female BMR = %.2f, want %.2f", bmr, base-161)
	}

	p.Gender = GenderOther
	bmr, err = CalculateBMR(p, FormulaMifflinStJeor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmr-(base-78)) > 0.01 {
		t.Errorf("other-gender BMR = %.2f, want %.2f", bmr, base-78)
	}
}

// TestCalculateBMR_KatchMcArdle pins the lean-mass formula for a female
// profile with 22% body fat via DEXA: 370 + 21.6·(60·0.78) = 1380.88.
func TestCalculateBMR_KatchMcArdle(t *testing.T) {
	p := baseProfile()
	p.Gender = GenderFemale
	p.Age = 28
	p.WeightKG = 60
	p.HeightCM = 165
	p.BodyFatPercent = floatPtr(22)
	p.BodyFatSource = BodyFatDEXA

	bmr, err := CalculateBMR(p, FormulaKatchMcArdle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 370 + 21.6*(60*0.78)
	if math.Abs(bmr-want) > 0.01 {
		t.Errorf("Katch-McArdle BMR = %.2f, want %.2f", bmr, want)
	}
}

// TestCalculateBMR_FallbackWithoutBodyFat verifies that Katch-McArdle and
// Cunningham degrade to exactly the Mifflin-St Jeor value when body fat is
// absent — a documented fallback, not an error.
func TestCalculateBMR_FallbackWithoutBodyFat(t *testing.T) {
	p := baseProfile()
	mifflin, err := CalculateBMR(p, FormulaMifflinStJeor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, formula := range []BMRFormula{FormulaKatchMcArdle, FormulaCunningham} {
		got, err := CalculateBMR(p, formula)
		if err != nil {
			t.Fatalf("%s without body fat returned error: %v", formula, err)
		}
		if got != mifflin {
			t.Errorf("%s fallback = %.2f, want Mifflin value %.2f", formula, got, mifflin)
		}
	}
}

// TestCalculateBMR_Cunningham pins 500 + 22·lean for a profile with body fat.
func TestCalculateBMR_Cunningham(t *testing.T) {
	p := baseProfile()
	p.BodyFatPercent = floatPtr(10)
	p.BodyFatSource = BodyFatDEXA

	bmr, err := CalculateBMR(p, FormulaCunningham)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 500 + 22*(70*0.90)
	if math.Abs(bmr-want) > 0.01 {
		t.Errorf("Cunningham BMR = %.2f, want %.2f", bmr, want)
	}
}

// TestCalculateBMR_HarrisBenedictGenderBranches checks the revised
// Harris-Benedict coefficients branch by gender and average for other.
func TestCalculateBMR_HarrisBenedictGenderBranches(t *testing.T) {
	p := baseProfile()
	male, err := CalculateBMR(p, FormulaHarrisBenedict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Gender = GenderFemale
	female, err := CalculateBMR(p, FormulaHarrisBenedict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Gender = GenderUnspecified
	other, err := CalculateBMR(p, FormulaHarrisBenedict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if male <= female {
		t.Errorf("expected male HB (%.1f) > female HB (%.1f) at identical stats", male, female)
	}
	if math.Abs(other-(male+female)/2) > 0.01 {
		t.Errorf("other-gender HB = %.2f, want male/female average %.2f", other, (male+female)/2)
	}
}

/* ─── Missing-field errors ───────────────────────────────────────────── */

// TestCalculateBMR_MissingFields verifies each required base field produces a
// *MissingFieldError when absent.
func TestCalculateBMR_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(p *UserProfile)
	}{
		{"zero weight", func(p *UserProfile) { p.WeightKG = 0 }},
		{"zero height", func(p *UserProfile) { p.HeightCM = 0 }},
		{"zero age", func(p *UserProfile) { p.Age = 0 }},
		{"unknown gender", func(p *UserProfile) { p.Gender = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseProfile()
			tc.mutFn(&p)
			_, err := CalculateBMR(p, FormulaMifflinStJeor)
			var mfe *MissingFieldError
			if !errors.As(err, &mfe) {
				t.Errorf("expected *MissingFieldError, got %v", err)
			}
		})
	}
}
