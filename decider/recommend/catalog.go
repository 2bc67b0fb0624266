package recommend

import "github.com/Wa1tonGan/food-decider/decider/types"

type canned struct {
	recommendation string
	reasoning      string
}

var catalog = map[types.Mode][]canned{
	types.ModeDecide: {
		{
			recommendation: "🎯 Based on your preferences, I recommend: **Pizza!**\n\nPizza offers a perfect balance of flavors and is a crowd-pleaser. It's versatile, satisfying, and you can customize it with your favorite toppings!",
			reasoning:      "Pizza scored highest based on your adventurous nature and preference for diverse flavors. It also matches your typical meal size preference!",
		},
		{
			recommendation: "🎯 I'd go with **Sushi!**\n\nSushi is fresh, healthy, and offers an exciting variety of flavors. It's perfect for someone who enjoys trying new things!",
			reasoning:      "Given your high spice tolerance and preference for Asian cuisine, sushi aligns perfectly with your taste profile.",
		},
		{
			recommendation: "🎯 My recommendation is **Starbucks!**\n\nFor a quick, satisfying meal with great coffee, Starbucks offers the best combination of quality and convenience among your options.",
			reasoning:      "Considering your decision speed and meal size preference, Starbucks provides the optimal balance.",
		},
	},
	types.ModeRecommend: {
		{
			recommendation: "✨ I recommend trying **Thai Green Curry**!\n\nIt's packed with aromatic flavors, moderately spicy, and has a great balance of protein and vegetables. The coconut milk base makes it creamy and satisfying.",
			reasoning:      "Based on your adventurous nature, preference for Asian cuisine, and medium spice tolerance, this dish is perfect for you!",
		},
		{
			recommendation: "✨ How about **Korean Bibimbap**?\n\nThis colorful rice bowl is loaded with vegetables, protein, and a spicy-sweet sauce. It's healthy, filling, and absolutely delicious!",
			reasoning:      "Matches your dietary preferences and your preference for medium-sized, flavorful meals with a kick!",
		},
		{
			recommendation: "✨ I suggest **Mediterranean Mezze Platter**!\n\nFresh hummus, falafel, grilled vegetables, and pita bread. It's light yet satisfying, with incredible flavors.",
			reasoning:      "Perfect for your adventurous palate while being on the lighter side. The variety will keep things interesting!",
		},
		{
			recommendation: "✨ Try **Vietnamese Pho**!\n\nA comforting bowl of aromatic broth with rice noodles, herbs, and your choice of protein. It's soul-warming and packed with flavor.",
			reasoning:      "Aligns with your Asian cuisine preference and offers the perfect balance of light and satisfying!",
		},
	},
}

// CannedTexts returns the recommendation texts the mock can answer with in mode.
func CannedTexts(mode types.Mode) []string {
	out := make([]string, 0, len(catalog[mode]))
	for _, c := range catalog[mode] {
		out = append(out, c.recommendation)
	}
	return out
}
