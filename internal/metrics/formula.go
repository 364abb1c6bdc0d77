package metrics

import "math"

// BMRFormula is a closed enumeration of the supported BMR formulas. Dispatch
// is an exhaustive switch in CalculateBMR so adding a formula is a
// compile-visible change, not a new object shape.
type BMRFormula string

const (
	FormulaMifflinStJeor  BMRFormula = "mifflin_st_jeor"
	FormulaKatchMcArdle   BMRFormula = "katch_mcardle"
	FormulaCunningham     BMRFormula = "cunningham"
	FormulaHarrisBenedict BMRFormula = "harris_benedict" // legacy, comparison only
)

// FormulaSelection is the output of the selection cascade: which formula to
// use, why, its accuracy band, and how confident the selection is.
type FormulaSelection struct {
	Formula    BMRFormula `json:"formula"`
	Reason     string     `json:"reason"`
	Accuracy   string     `json:"accuracy"`
	Confidence int        `json:"confidence"` // 0-100
}

// SelectBMRFormula walks the ordered priority cascade. Lean-mass formulas win
// whenever a trustworthy body-fat measurement exists; elite or long-trained
// lean athletes get Cunningham; everyone else gets Mifflin-St Jeor.
func SelectBMRFormula(p UserProfile) FormulaSelection {
	bf, hasBF := p.bodyFat()

	if hasBF && (p.BodyFatSource == BodyFatDEXA || p.BodyFatSource == BodyFatBodPod) {
		return FormulaSelection{
			Formula:    FormulaKatchMcArdle,
			Reason:     "Body fat measured by a high-accuracy method (DEXA/BodPod), so lean-mass-based Katch-McArdle is most precise.",
			Accuracy:   "±5%",
			Confidence: 95,
		}
	}

	if p.Experience == ExperienceElite || (p.TrainingYears >= 3 && hasBF && bf < 15) {
		return FormulaSelection{
			Formula:    FormulaCunningham,
			Reason:     "Elite or long-trained lean athlete; Cunningham tracks the elevated metabolism of high lean mass best.",
			Accuracy:   "±5%",
			Confidence: 90,
		}
	}

	if hasBF && p.BodyFatSource == BodyFatCalipers {
		return FormulaSelection{
			Formula:    FormulaKatchMcArdle,
			Reason:     "Body fat measured with calipers; Katch-McArdle still beats weight-only formulas at this accuracy.",
			Accuracy:   "±7%",
			Confidence: 80,
		}
	}

	if hasBF && p.BodyFatSource == BodyFatAIEstimate {
		return FormulaSelection{
			Formula:    FormulaKatchMcArdle,
			Reason:     "Body fat is a photo-based estimate; Katch-McArdle is used with reduced confidence.",
			Accuracy:   "±10%",
			Confidence: 70,
		}
	}

	return FormulaSelection{
		Formula:    FormulaMifflinStJeor,
		Reason:     "No reliable body-fat measurement; Mifflin-St Jeor is the best-validated general-population formula.",
		Accuracy:   "±10%",
		Confidence: 85,
	}
}

/* ─── Calculation ────────────────────────────────────────────────────── */

// CalculateBMR computes kcal/day for the given formula. Katch-McArdle and
// Cunningham require body fat; when it is absent they silently fall back to
// Mifflin-St Jeor (documented degradation, not a defect). Missing required
// base fields (age, gender, weight, height) return a *MissingFieldError.
func CalculateBMR(p UserProfile, formula BMRFormula) (float64, error) {
	switch formula {
	case FormulaMifflinStJeor:
		return mifflinStJeor(p)
	case FormulaKatchMcArdle:
		lean, ok, err := leanBodyMass(p)
		if err != nil {
			return 0, err
		}
		if !ok {
			return mifflinStJeor(p)
		}
		return 370 + 21.6*lean, nil
	case FormulaCunningham:
		lean, ok, err := leanBodyMass(p)
		if err != nil {
			return 0, err
		}
		if !ok {
			return mifflinStJeor(p)
		}
		return 500 + 22*lean, nil
	case FormulaHarrisBenedict:
		return harrisBenedict(p)
	}
	// Unknown formula tag degrades to the default rather than guessing.
	return mifflinStJeor(p)
}

// mifflinStJeor: 10·weight + 6.25·height − 5·age + gender constant.
// The other/unspecified constant (−78) is the male/female average.
func mifflinStJeor(p UserProfile) (float64, error) {
	if err := requireBaseFields(p); err != nil {
		return 0, err
	}
	base := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		return base + 5, nil
	case GenderFemale:
		return base - 161, nil
	default:
		return base - 78, nil
	}
}

// harrisBenedict uses the 1984 revised coefficients, averaged for
// other/unspecified genders. Kept for comparison output only.
func harrisBenedict(p UserProfile) (float64, error) {
	if err := requireBaseFields(p); err != nil {
		return 0, err
	}
	male := 88.362 + 13.397*p.WeightKG + 4.799*p.HeightCM - 5.677*float64(p.Age)
	female := 447.593 + 9.247*p.WeightKG + 3.098*p.HeightCM - 4.330*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		return male, nil
	case GenderFemale:
		return female, nil
	default:
		return (male + female) / 2, nil
	}
}

// leanBodyMass returns weight·(1−bf/100), ok=false when body fat is absent.
// A present but implausible body fat (outside 2-70%) is treated as absent so
// a bad photo estimate cannot produce a negative lean mass.
func leanBodyMass(p UserProfile) (lean float64, ok bool, err error) {
	if p.WeightKG <= 0 {
		return 0, false, missingField("weight_kg")
	}
	bf, has := p.bodyFat()
	if !has || bf < 2 || bf > 70 {
		return 0, false, nil
	}
	return p.WeightKG * (1 - bf/100), true, nil
}

// requireBaseFields guards the base-formula inputs shared by Mifflin-St Jeor
// and Harris-Benedict.
func requireBaseFields(p UserProfile) error {
	if p.WeightKG <= 0 {
		return missingField("weight_kg")
	}
	if p.HeightCM <= 0 {
		return missingField("height_cm")
	}
	if p.Age <= 0 {
		return missingField("age")
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther, GenderUnspecified:
		return nil
	}
	return missingField("gender")
}

// roundKcal rounds a calorie value to the nearest whole kcal.
func roundKcal(v float64) int {
	return int(math.Round(v))
}
