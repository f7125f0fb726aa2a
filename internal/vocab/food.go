// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package vocab

// foodLabels is the production food-and-drink vocabulary, grouped roughly by
// the kind of label. Order is load-bearing: it fixes the dimension of every
// stored vector, so entries are appended, never reordered.
var foodLabels = []string{
	// Core
	"Restaurants",
	"Food",
	"Fast Food",
	"Food Trucks",
	"Pop-Up Restaurants",
	"Street Vendors",

	// Dining formats
	"Cafes",
	"Coffee & Tea",
	"Tea Rooms",
	"Breakfast & Brunch",
	"Bakeries",
	"Desserts",
	"Ice Cream & Frozen Yogurt",
	"Juice Bars & Smoothies",
	"Donuts",
	"Bagels",
	"Cupcakes",
	"Patisserie/Cake Shop",

	// Bars and nightlife food
	"Bars",
	"Pubs",
	"Sports Bars",
	"Wine Bars",
	"Beer Bar",
	"Cocktail Bars",
	"Dive Bars",
	"Lounges",
	"Brewpubs",
	"Breweries",
	"Gastropubs",

	// Cuisine styles
	"American (Traditional)",
	"American (New)",
	"Mexican",
	"Italian",
	"Chinese",
	"Japanese",
	"Thai",
	"Indian",
	"Vietnamese",
	"Korean",
	"Middle Eastern",
	"Mediterranean",
	"Greek",
	"Lebanese",
	"Turkish",
	"Persian/Iranian",
	"French",
	"Spanish",
	"Brazilian",
	"Argentine",
	"African",
	"Ethiopian",
	"Caribbean",
	"Cuban",
	"Peruvian",
	"Colombian",
	"Filipino",
	"Hawaiian",
	"German",
	"Irish",
	"British",
	"Russian",

	// Dish and specialization
	"Pizza",
	"Burgers",
	"Sandwiches",
	"Seafood",
	"Steakhouses",
	"Sushi Bars",
	"Ramen",
	"Dim Sum",
	"Hot Pot",
	"Barbeque",
	"Chicken Wings",
	"Cheesesteaks",
	"Falafel",
	"Kebab",
	"Tacos",
	"Tex-Mex",
	"Soul Food",
	"Comfort Food",
	"Gluten-Free",
	"Vegan",
	"Vegetarian",
	"Halal",
	"Kosher",

	// Markets and food retail
	"Grocery",
	"Ethnic Grocery",
	"International Grocery",
	"Specialty Food",
	"Food Court",
	"Farmers Market",
	"Seafood Markets",
	"Meat Shops",
	"Cheese Shops",
}

// Food returns the production vocabulary of food-and-drink categories.
// Each call returns a fresh Vocabulary over the same fixed label order.
func Food() *Vocabulary {
	return New(foodLabels)
}
