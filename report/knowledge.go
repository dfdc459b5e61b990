/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

// interpretation holds the sentences shown for out-of-range results.
type interpretation struct {
	low  string
	high string
}

func (i interpretation) forStatus(status Status) string {
	switch status {
	case StatusLow:
		return i.low
	case StatusHigh:
		return i.high
	default:
		return ""
	}
}

var testKnowledge = []entry[interpretation]{
	{key: "hemoglobin", payload: interpretation{
		low:  "Low hemoglobin (Anemia) can cause fatigue and weakness.",
		high: "High hemoglobin can be caused by dehydration or other conditions.",
	}},
	{key: "glucose", payload: interpretation{
		low:  "Low blood sugar (Hypoglycemia) requires immediate attention.",
		high: "High blood sugar may indicate frequent fluctuations or diabetes risk.",
	}},
	{key: "hba1c", payload: interpretation{
		low:  "Unusually low HbA1c is rare.",
		high: "High HbA1c indicates poor long-term blood sugar control.",
	}},
	{key: "cholesterol", payload: interpretation{
		low:  "Low cholesterol is generally good but extremely low levels can be an issue.",
		high: "High cholesterol increases the risk of heart disease.",
	}},
	{key: "platelet", payload: interpretation{
		low:  "Low platelet count can increase risk of bleeding.",
		high: "High platelet count can lead to blood clots.",
	}},
}

// advice is the stored guidance for one direction of an abnormal test.
type advice struct {
	foods     []string
	lifestyle []string
	avoid     []string
}

// adviceSet holds advice per status; a nil pointer means no advice.
type adviceSet struct {
	low  *advice
	high *advice
}

func (a adviceSet) forStatus(status Status) *advice {
	switch status {
	case StatusLow:
		return a.low
	case StatusHigh:
		return a.high
	default:
		return nil
	}
}

var recommendationKnowledge = []entry[adviceSet]{
	{key: "hemoglobin", payload: adviceSet{
		low: &advice{
			foods: []string{
				"Iron-rich foods: Spinach, red meat, lentils, liver, pumpkin seeds, tofu",
				"Vitamin C rich foods: Oranges, strawberries, bell peppers (helps iron absorption)",
			},
			lifestyle: []string{"Ensure adequate sleep and rest", "Consider cooking in cast iron cookware"},
			avoid: []string{
				"Drinking tea or coffee immediately with meals (inhibits iron absorption)",
				"Calcium supplements taken with iron sources",
			},
		},
		high: &advice{
			foods: []string{"Plenty of water and fluids", "Fresh fruits and vegetables"},
			lifestyle: []string{
				"Quit smoking if applicable (smoking reduces oxygen delivery)",
				"Regular blood donation (if advised by doctor)",
			},
			avoid: []string{"Iron supplements unless prescribed", "Dehydration"},
		},
	}},
	{key: "glucose", payload: adviceSet{
		high: &advice{
			foods: []string{
				"Low Glycemic Index (GI) foods: Whole grains, oats, beans, lentils",
				"Non-starchy vegetables: Broccoli, spinach, green beans",
				"Nuts and seeds",
			},
			lifestyle: []string{
				"Regular physical activity (e.g., 30 mins brisk walking daily)",
				"Weight management",
				"Stress reduction techniques",
			},
			avoid: []string{
				"Sugary drinks and sodas",
				"Refined carbohydrates (white bread, pasta, pastries)",
				"Processed snacks",
			},
		},
		low: &advice{
			foods:     []string{"Complex carbohydrates for sustained energy", "Small, frequent meals"},
			lifestyle: []string{"Monitor blood sugar levels regularly", "Carry emergency snacks"},
			avoid:     []string{"Skipping meals", "Alcohol on an empty stomach"},
		},
	}},
	{key: "cholesterol", payload: adviceSet{
		high: &advice{
			foods: []string{
				"Soluble fiber: Oats, barley, apples, pears",
				"Heart-healthy fats: Avocado, olive oil, nuts",
				"Fatty fish (Salmon, Mackerel)",
			},
			lifestyle: []string{"Aerobic exercise to boost HDL (good cholesterol)", "Weight loss if overweight"},
			avoid: []string{
				"Trans fats (fried foods, commercially baked goods)",
				"Excessive red meat and full-fat dairy",
				"Smoking",
			},
		},
		// Rarely a primary concern unless very low.
		low: &advice{
			foods:     []string{"Balanced diet ensuring adequate calorie intake"},
			lifestyle: []string{"Treat underlying conditions if any"},
			avoid:     []string{"Malnutrition"},
		},
	}},
	{key: "triglycerides", payload: adviceSet{
		high: &advice{
			foods:     []string{"Omega-3 rich foods: Fatty fish, flaxseeds, walnuts", "Fiber-rich vegetables"},
			lifestyle: []string{"Limit alcohol intake", "Regular exercise", "Lose weight if needed"},
			avoid:     []string{"Sugary foods and drinks", "Refined carbohydrates", "Excessive alcohol"},
		},
	}},
	{key: "platelet", payload: adviceSet{
		low: &advice{
			foods:     []string{"Folate-rich foods: Dark leafy greens, beans", "Vitamin B12 sources: Eggs, dairy, meat"},
			lifestyle: []string{"Avoid activities with high risk of injury/bruising", "Use a soft toothbrush"},
			avoid:     []string{"Alcohol", "Blood-thinning medications (unless prescribed)"},
		},
	}},
	{key: "tsh", payload: adviceSet{
		// Hypothyroidism
		high: &advice{
			foods: []string{
				"Iodine-rich foods (if deficiency is cause): Dairy, seafood",
				"Selenium sources: Brazil nuts (in moderation)",
			},
			lifestyle: []string{"Regular exercise to boost metabolism", "Stress management"},
			avoid: []string{
				"Soy products (in excess) near medication time",
				"Raw goitrogenic vegetables (cabbage, cauliflower) in large amounts",
			},
		},
		// Hyperthyroidism
		low: &advice{
			foods:     []string{"Calcium and Vitamin D rich foods", "Non-iodized salt (if restricted)"},
			lifestyle: []string{"Stress management", "Adequate rest"},
			avoid:     []string{"Excessive iodine intake", "Caffeine and stimulants"},
		},
	}},
	{key: "uric acid", payload: adviceSet{
		high: &advice{
			foods:     []string{"Complex carbs", "Low-fat dairy", "Vitamin C rich foods", "Cherries"},
			lifestyle: []string{"Stay well hydrated", "Maintain healthy weight"},
			avoid: []string{
				"High-purine foods: Red meat, organ meats, shellfish",
				"Sugary drinks (fructose)",
				"Alcohol (especially beer)",
			},
		},
	}},
}
