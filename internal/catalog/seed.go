package catalog

import "github.com/vladimiradmaev/macrofit/internal/domain"

func seedMeals() []domain.Meal {
	return []domain.Meal{
		// High protein breakfasts
		{
			Name:     "Protein Power Bowl",
			Calories: 450, Protein: 35, Carbs: 40, Fats: 15,
			Type: domain.Breakfast,
			Ingredients: []string{
				"3 egg whites",
				"1 whole egg",
				"1/2 cup oatmeal",
				"1 cup spinach",
				"1/4 avocado",
				"Hot sauce",
			},
			Instructions: []string{
				"Cook oatmeal according to package directions",
				"Scramble eggs with spinach",
				"Top oatmeal with eggs",
				"Add sliced avocado",
				"Season with hot sauce",
			},
			PrepTime:     15,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.GlutenFree, domain.NutFree},
		},
		{
			Name:     "Greek Yogurt Parfait",
			Calories: 380, Protein: 30, Carbs: 45, Fats: 8,
			Type: domain.Breakfast,
			Ingredients: []string{
				"1 cup Greek yogurt (non-fat)",
				"1/2 cup mixed berries",
				"2 tbsp granola",
				"1 tbsp honey",
				"1 scoop protein powder",
			},
			Instructions: []string{
				"Mix protein powder into Greek yogurt",
				"Layer yogurt and berries in a glass",
				"Top with granola",
				"Drizzle with honey",
			},
			PrepTime:     5,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.GlutenFree, domain.NutFree},
		},

		// Lunch
		{
			Name:     "Grilled Chicken Caesar Salad",
			Calories: 520, Protein: 45, Carbs: 25, Fats: 22,
			Type: domain.Lunch,
			Ingredients: []string{
				"6 oz grilled chicken breast",
				"2 cups romaine lettuce",
				"2 tbsp Caesar dressing",
				"1/4 cup parmesan cheese",
				"Croutons",
			},
			Instructions: []string{
				"Grill chicken breast with seasoning",
				"Chop romaine lettuce",
				"Slice grilled chicken",
				"Toss lettuce with dressing",
				"Top with chicken, cheese, and croutons",
			},
			PrepTime:     20,
			Restrictions: []domain.DietaryRestriction{},
		},
		{
			Name:     "Tuna Poke Bowl",
			Calories: 485, Protein: 38, Carbs: 52, Fats: 12,
			Type: domain.Lunch,
			Ingredients: []string{
				"5 oz sushi-grade tuna",
				"1 cup cooked brown rice",
				"1/2 avocado",
				"Edamame",
				"Cucumber",
				"Soy sauce",
				"Sesame seeds",
			},
			Instructions: []string{
				"Cook brown rice and let cool",
				"Cube tuna into bite-sized pieces",
				"Slice avocado and cucumber",
				"Arrange everything in a bowl",
				"Drizzle with soy sauce and sesame seeds",
			},
			PrepTime:     25,
			Restrictions: []domain.DietaryRestriction{domain.DairyFree, domain.NutFree},
		},

		// Dinner
		{
			Name:     "Lean Beef Stir-Fry",
			Calories: 580, Protein: 42, Carbs: 48, Fats: 18,
			Type: domain.Dinner,
			Ingredients: []string{
				"6 oz lean beef sirloin",
				"Mixed vegetables",
				"1 cup jasmine rice",
				"2 tbsp teriyaki sauce",
				"1 tsp sesame oil",
				"Garlic and ginger",
			},
			Instructions: []string{
				"Cook rice according to package",
				"Slice beef into thin strips",
				"Stir-fry beef until browned",
				"Add vegetables and cook until tender",
				"Add sauce and serve over rice",
			},
			PrepTime:     30,
			Restrictions: []domain.DietaryRestriction{domain.DairyFree, domain.NutFree},
		},
		{
			Name:     "Baked Salmon with Quinoa",
			Calories: 550, Protein: 40, Carbs: 45, Fats: 20,
			Type: domain.Dinner,
			Ingredients: []string{
				"6 oz salmon fillet",
				"1 cup cooked quinoa",
				"Asparagus spears",
				"Lemon",
				"Olive oil",
				"Herbs and spices",
			},
			Instructions: []string{
				"Preheat oven to 400°F",
				"Season salmon with herbs",
				"Bake salmon for 15-18 minutes",
				"Steam asparagus",
				"Serve with quinoa and lemon",
			},
			PrepTime:     25,
			Restrictions: []domain.DietaryRestriction{domain.DairyFree, domain.GlutenFree, domain.NutFree},
		},

		// Vegetarian and vegan
		{
			Name:     "Chickpea Buddha Bowl",
			Calories: 490, Protein: 22, Carbs: 68, Fats: 16,
			Type: domain.Lunch,
			Ingredients: []string{
				"1 cup roasted chickpeas",
				"1 cup cooked brown rice",
				"Mixed greens",
				"Roasted vegetables",
				"Tahini dressing",
				"Pumpkin seeds",
			},
			Instructions: []string{
				"Roast chickpeas with spices",
				"Cook brown rice",
				"Roast mixed vegetables",
				"Assemble bowl with all ingredients",
				"Drizzle with tahini dressing",
			},
			PrepTime: 35,
			Restrictions: []domain.DietaryRestriction{
				domain.Vegetarian, domain.Vegan, domain.DairyFree, domain.NutFree, domain.GlutenFree,
			},
		},
		{
			Name:     "Tofu Scramble",
			Calories: 380, Protein: 28, Carbs: 30, Fats: 18,
			Type: domain.Breakfast,
			Ingredients: []string{
				"200g firm tofu",
				"Spinach",
				"Mushrooms",
				"Nutritional yeast",
				"Turmeric",
				"Whole grain toast",
			},
			Instructions: []string{
				"Crumble tofu into pan",
				"Add turmeric for color",
				"Sauté with vegetables",
				"Season with nutritional yeast",
				"Serve with toast",
			},
			PrepTime:     15,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.Vegan, domain.DairyFree, domain.NutFree},
		},

		// Snacks
		{
			Name:     "Protein Smoothie",
			Calories: 320, Protein: 30, Carbs: 35, Fats: 8,
			Type: domain.Snack,
			Ingredients: []string{
				"1 scoop whey protein",
				"1 banana",
				"1 cup almond milk",
				"1 tbsp peanut butter",
				"Ice cubes",
				"Spinach (optional)",
			},
			Instructions: []string{
				"Add all ingredients to blender",
				"Blend until smooth",
				"Add ice as needed",
				"Serve immediately",
			},
			PrepTime:     5,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.GlutenFree},
		},
		{
			Name:     "Rice Cakes with Almond Butter",
			Calories: 280, Protein: 12, Carbs: 32, Fats: 14,
			Type: domain.Snack,
			Ingredients: []string{
				"2 brown rice cakes",
				"2 tbsp almond butter",
				"1/2 sliced banana",
				"Cinnamon",
				"Honey drizzle",
			},
			Instructions: []string{
				"Spread almond butter on rice cakes",
				"Top with banana slices",
				"Sprinkle with cinnamon",
				"Drizzle with honey",
			},
			PrepTime:     3,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.Vegan, domain.DairyFree, domain.GlutenFree},
		},

		// Training
		{
			Name:     "Pre-Workout Oats",
			Calories: 350, Protein: 15, Carbs: 55, Fats: 8,
			Type: domain.PreWorkout,
			Ingredients: []string{
				"1 cup oatmeal",
				"1 banana",
				"1 tbsp honey",
				"Cinnamon",
				"1/2 scoop protein powder",
			},
			Instructions: []string{
				"Cook oatmeal with water or milk",
				"Mix in protein powder",
				"Top with sliced banana",
				"Drizzle with honey",
				"Sprinkle cinnamon",
			},
			PrepTime:     10,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.NutFree},
		},
		{
			Name:     "Post-Workout Shake",
			Calories: 400, Protein: 40, Carbs: 45, Fats: 6,
			Type: domain.PostWorkout,
			Ingredients: []string{
				"1.5 scoops whey protein",
				"1 cup white rice (cooked)",
				"Water or skim milk",
				"1 tsp honey",
			},
			Instructions: []string{
				"Blend cooked rice with liquid",
				"Add protein powder",
				"Add honey for sweetness",
				"Blend until smooth",
				"Consume within 30 minutes post-workout",
			},
			PrepTime:     5,
			Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.NutFree},
		},
	}
}
