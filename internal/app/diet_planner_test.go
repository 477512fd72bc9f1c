package app_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthycoder/internal/app"
	"healthycoder/internal/config"
	"healthycoder/internal/domain"
)

func newPlanner(t *testing.T, opts ...app.PlannerOption) *app.DietPlanner {
	t.Helper()
	p, err := app.NewDietPlanner(20, 30, 50, opts...)
	require.NoError(t, err)
	return p
}

func TestCalculateDiet(t *testing.T) {
	planner := newPlanner(t)
	coder := domain.NewCoderWithProfile(1.68, 72, 25, domain.Male)
	want := domain.DietPlan{Calories: 2076, Protein: 104, Fat: 69, Carbohydrate: 260}

	got, err := planner.CalculateDiet(coder)
	require.NoError(t, err)

	assert.Equal(t, want.Calories, got.Calories, "calories")
	assert.Equal(t, want.Protein, got.Protein, "protein")
	assert.Equal(t, want.Fat, got.Fat, "fat")
	assert.Equal(t, want.Carbohydrate, got.Carbohydrate, "carbohydrate")

	again, err := planner.CalculateDiet(coder)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestCalculateDiet_Variants(t *testing.T) {
	tests := []struct {
		name  string
		opts  []app.PlannerOption
		coder domain.Coder
		want  domain.DietPlan
	}{
		{
			name:  "female",
			coder: domain.NewCoderWithProfile(1.68, 72, 25, domain.Female),
			want:  domain.DietPlan{Calories: 1858, Protein: 93, Fat: 62, Carbohydrate: 232},
		},
		{
			name:  "moderate activity",
			opts:  []app.PlannerOption{app.WithActivityLevel("moderate")},
			coder: domain.NewCoderWithProfile(1.68, 72, 25, domain.Male),
			want:  domain.DietPlan{Calories: 2682, Protein: 134, Fat: 89, Carbohydrate: 335},
		},
		{
			name:  "mifflin-st jeor",
			opts:  []app.PlannerOption{app.WithFormula(app.MifflinStJeor)},
			coder: domain.NewCoderWithProfile(1.68, 72, 25, domain.Male),
			want:  domain.DietPlan{Calories: 1980, Protein: 99, Fat: 66, Carbohydrate: 248},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newPlanner(t, tc.opts...).CalculateDiet(tc.coder)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculateDiet_InvalidCoder(t *testing.T) {
	planner := newPlanner(t)
	tests := []struct {
		name  string
		coder domain.Coder
	}{
		{"zero height", domain.NewCoderWithProfile(0, 72, 25, domain.Male)},
		{"negative weight", domain.NewCoderWithProfile(1.68, -72, 25, domain.Male)},
		{"zero age", domain.NewCoderWithProfile(1.68, 72, 0, domain.Male)},
		{"negative age", domain.NewCoderWithProfile(1.68, 72, -3, domain.Female)},
		{"no gender", domain.NewCoderWithProfile(1.68, 72, 25, domain.GenderUnspecified)},
		{"bmi-only coder", domain.NewCoder(1.68, 72)},
		{"NaN height", domain.NewCoderWithProfile(math.NaN(), 72, 25, domain.Male)},
		{"infinite weight", domain.NewCoderWithProfile(1.68, math.Inf(1), 25, domain.Male)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.CalculateDiet(tc.coder)
			assert.ErrorIs(t, err, app.ErrInvalidCoder)
		})
	}
}

func TestNewDietPlanner_InvalidSplit(t *testing.T) {
	tests := []struct {
		name                 string
		protein, fat, carbos int
	}{
		{"sum below 100", 20, 30, 40},
		{"sum above 100", 30, 30, 50},
		{"negative share", -10, 60, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.NewDietPlanner(tc.protein, tc.fat, tc.carbos)
			assert.ErrorIs(t, err, app.ErrInvalidMacroSplit)
		})
	}
}

func TestNewDietPlanner_BadOptions(t *testing.T) {
	_, err := app.NewDietPlanner(20, 30, 50, app.WithActivityLevel("couch"))
	assert.ErrorIs(t, err, app.ErrUnknownActivityLevel)

	_, err = app.NewDietPlanner(20, 30, 50, app.WithFormula("katch-mcardle"))
	assert.ErrorIs(t, err, app.ErrUnknownFormula)
}

func TestNewDietPlannerFromConfig(t *testing.T) {
	planner, err := app.NewDietPlannerFromConfig(config.Default().Diet)
	require.NoError(t, err)

	got, err := planner.CalculateDiet(domain.NewCoderWithProfile(1.68, 72, 25, domain.Male))
	require.NoError(t, err)
	assert.Equal(t, domain.DietPlan{Calories: 2076, Protein: 104, Fat: 69, Carbohydrate: 260}, got)

	_, err = app.NewDietPlannerFromConfig(config.Diet{Protein: 50, Fat: 50, Carbohydrate: 50})
	assert.ErrorIs(t, err, app.ErrInvalidMacroSplit)
}

func TestCalculateDiet_ImperialCoder(t *testing.T) {
	c, err := domain.CoderFromMeasurements(168, "cm", 72, "kg")
	require.NoError(t, err)
	c.Age, c.Gender = 25, domain.Male

	got, err := newPlanner(t).CalculateDiet(c)
	require.NoError(t, err)
	assert.Equal(t, 2076, got.Calories)
}
