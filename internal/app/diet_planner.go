package app

import (
	"errors"
	"fmt"
	"math"

	"healthycoder/internal/config"
	"healthycoder/internal/domain"
)

var (
	// ErrInvalidMacroSplit indicates macro percentages that are negative or do not add up to 100.
	ErrInvalidMacroSplit = errors.New("protein, fat and carbohydrate percentages must be >= 0 and add up to 100")
	// ErrInvalidCoder indicates a coder profile that cannot be planned for.
	ErrInvalidCoder = errors.New("invalid coder profile")
	// ErrUnknownActivityLevel indicates an activity level with no multiplier.
	ErrUnknownActivityLevel = errors.New("unknown activity level")
	// ErrUnknownFormula indicates an unsupported BMR formula name.
	ErrUnknownFormula = errors.New("unknown BMR formula")
)

// Energy density in kcal per gram.
const (
	kcalPerGramProtein      = 4
	kcalPerGramFat          = 9
	kcalPerGramCarbohydrate = 4
)

// activityMultipliers maps an activity level to the factor applied to BMR.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Formula selects the basal metabolic rate equation.
type Formula string

const (
	// HarrisBenedict is the simplified Harris-Benedict equation.
	HarrisBenedict Formula = "harris-benedict"
	// MifflinStJeor is the Mifflin-St Jeor equation.
	MifflinStJeor Formula = "mifflin-st-jeor"
)

// DietPlanner turns a coder's profile into a daily calorie target split
// across protein, fat and carbohydrate. It is immutable and safe for
// concurrent use.
type DietPlanner struct {
	proteinPercentage      int
	fatPercentage          int
	carbohydratePercentage int
	activityFactor         float64
	formula                Formula
}

// PlannerOption configures a DietPlanner.
type PlannerOption func(*DietPlanner) error

// WithActivityLevel sets the activity multiplier ("sedentary", "light",
// "moderate", "active" or "very_active"). Default is sedentary.
func WithActivityLevel(level string) PlannerOption {
	return func(p *DietPlanner) error {
		f, ok := activityMultipliers[level]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownActivityLevel, level)
		}
		p.activityFactor = f
		return nil
	}
}

// WithFormula sets the BMR equation. Default is HarrisBenedict.
func WithFormula(f Formula) PlannerOption {
	return func(p *DietPlanner) error {
		if f != HarrisBenedict && f != MifflinStJeor {
			return fmt.Errorf("%w: %q", ErrUnknownFormula, f)
		}
		p.formula = f
		return nil
	}
}

// NewDietPlanner creates a planner for the given macro split in percent.
func NewDietPlanner(protein, fat, carbohydrate int, opts ...PlannerOption) (*DietPlanner, error) {
	if protein < 0 || fat < 0 || carbohydrate < 0 || protein+fat+carbohydrate != 100 {
		return nil, fmt.Errorf("%w: got %d/%d/%d", ErrInvalidMacroSplit, protein, fat, carbohydrate)
	}
	p := &DietPlanner{
		proteinPercentage:      protein,
		fatPercentage:          fat,
		carbohydratePercentage: carbohydrate,
		activityFactor:         activityMultipliers["sedentary"],
		formula:                HarrisBenedict,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewDietPlannerFromConfig creates a planner from loaded diet settings.
func NewDietPlannerFromConfig(cfg config.Diet) (*DietPlanner, error) {
	var opts []PlannerOption
	if cfg.Activity != "" {
		opts = append(opts, WithActivityLevel(cfg.Activity))
	}
	if cfg.Formula != "" {
		opts = append(opts, WithFormula(Formula(cfg.Formula)))
	}
	return NewDietPlanner(cfg.Protein, cfg.Fat, cfg.Carbohydrate, opts...)
}

// CalculateDiet returns the daily plan for coder. Height, weight and age must
// be positive and gender must be set.
func (p *DietPlanner) CalculateDiet(coder domain.Coder) (domain.DietPlan, error) {
	if err := validateProfile(coder); err != nil {
		return domain.DietPlan{}, err
	}

	calories := int(math.Round(p.bmr(coder) * p.activityFactor))
	return domain.DietPlan{
		Calories:     calories,
		Protein:      grams(calories, p.proteinPercentage, kcalPerGramProtein),
		Fat:          grams(calories, p.fatPercentage, kcalPerGramFat),
		Carbohydrate: grams(calories, p.carbohydratePercentage, kcalPerGramCarbohydrate),
	}, nil
}

func (p *DietPlanner) bmr(c domain.Coder) float64 {
	w := c.Weight
	h := domain.ConvertLength(c.Height, "m", "cm")
	a := float64(c.Age)

	if p.formula == MifflinStJeor {
		base := 10*w + 6.25*h - 5*a
		if c.Gender == domain.Male {
			return base + 5
		}
		return base - 161
	}

	if c.Gender == domain.Male {
		return 66.5 + 13.8*w + 5.0*h - 6.8*a
	}
	return 655.1 + 9.6*w + 1.9*h - 4.7*a
}

func grams(calories, percentage, kcalPerGram int) int {
	return int(math.Round(float64(calories*percentage) / float64(100*kcalPerGram)))
}

func validateProfile(c domain.Coder) error {
	switch {
	case !isPositive(c.Height):
		return fmt.Errorf("%w: height must be > 0, got %v", ErrInvalidCoder, c.Height)
	case !isPositive(c.Weight):
		return fmt.Errorf("%w: weight must be > 0, got %v", ErrInvalidCoder, c.Weight)
	case c.Age <= 0:
		return fmt.Errorf("%w: age must be > 0, got %d", ErrInvalidCoder, c.Age)
	case c.Gender != domain.Male && c.Gender != domain.Female:
		return fmt.Errorf("%w: gender must be male or female, got %v", ErrInvalidCoder, c.Gender)
	}
	return nil
}
