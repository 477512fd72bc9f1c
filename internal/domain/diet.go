package domain

// DietPlan is a daily energy target and the grams of each macro-nutrient that
// make it up.
type DietPlan struct {
	Calories     int `json:"calories"`
	Protein      int `json:"protein"`
	Fat          int `json:"fat"`
	Carbohydrate int `json:"carbohydrate"`
}
