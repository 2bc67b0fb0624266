package questionnaire

import "github.com/Wa1tonGan/food-decider/decider/types"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	Trait   string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []Option `json:"options"`
}

// Questions is the fixed questionnaire, one question per trait in types.TraitKeys order.
var Questions = []Question{
	{
		Trait:  types.TraitAdventureLevel,
		Prompt: "How adventurous are you with food?",
		Options: []Option{
			{"very_adventurous", "🌶️ Very adventurous - I love trying new things!"},
			{"somewhat_adventurous", "🍜 Somewhat adventurous - Open to new experiences"},
			{"cautious", "🍕 Cautious - Prefer familiar foods"},
			{"very_cautious", "🍔 Very cautious - Stick to what I know"},
		},
	},
	{
		Trait:  types.TraitSpiceLevel,
		Prompt: "What's your spice tolerance?",
		Options: []Option{
			{"very_spicy", "🔥 Bring on the heat!"},
			{"medium_spicy", "🌶️ Moderately spicy"},
			{"mild", "🧈 Mild flavors"},
			{"no_spice", "🥛 No spice please"},
		},
	},
	{
		Trait:  types.TraitMealSize,
		Prompt: "What's your typical meal size preference?",
		Options: []Option{
			{"large", "🍱 Large - I love big portions"},
			{"medium", "🍽️ Medium - Just right"},
			{"small", "🥗 Small - Light eater"},
			{"snack", "🥨 Snack-sized portions"},
		},
	},
	{
		Trait:  types.TraitDietaryPreference,
		Prompt: "Any dietary preferences?",
		Options: []Option{
			{"none", "🍖 No restrictions"},
			{"vegetarian", "🥬 Vegetarian"},
			{"vegan", "🌱 Vegan"},
			{"pescatarian", "🐟 Pescatarian"},
		},
	},
	{
		Trait:  types.TraitCuisineStyle,
		Prompt: "What's your go-to cuisine style?",
		Options: []Option{
			{"asian", "🍜 Asian (Chinese, Japanese, Thai, etc.)"},
			{"western", "🍔 Western (American, Italian, etc.)"},
			{"mixed", "🌍 Mixed/Fusion"},
			{"local", "🏠 Local/Traditional"},
		},
	},
	{
		Trait:  types.TraitDecisionSpeed,
		Prompt: "How do you usually decide what to eat?",
		Options: []Option{
			{"quick", "⚡ Quick - First thing that looks good"},
			{"moderate", "🤔 Moderate - Think about it briefly"},
			{"slow", "⏰ Slow - Take my time deciding"},
			{"indecisive", "😅 Very indecisive - Need help!"},
		},
	},
}

// TraitLabel is how the profile page names a trait and its options.
type TraitLabel struct {
	Label   string
	Icon    string
	Options map[string]string
}

var TraitLabels = map[string]TraitLabel{
	types.TraitAdventureLevel: {
		Label: "Adventure Level", Icon: "🌶️",
		Options: map[string]string{
			"very_adventurous":     "Very adventurous",
			"somewhat_adventurous": "Somewhat adventurous",
			"cautious":             "Cautious",
			"very_cautious":        "Very cautious",
		},
	},
	types.TraitSpiceLevel: {
		Label: "Spice Tolerance", Icon: "🔥",
		Options: map[string]string{
			"very_spicy":   "Bring on the heat",
			"medium_spicy": "Moderately spicy",
			"mild":         "Mild flavors",
			"no_spice":     "No spice",
		},
	},
	types.TraitMealSize: {
		Label: "Meal Size", Icon: "🍱",
		Options: map[string]string{
			"large":  "Large portions",
			"medium": "Medium portions",
			"small":  "Small portions",
			"snack":  "Snack-sized",
		},
	},
	types.TraitDietaryPreference: {
		Label: "Dietary Preference", Icon: "🥗",
		Options: map[string]string{
			"none":        "No restrictions",
			"vegetarian":  "Vegetarian",
			"vegan":       "Vegan",
			"pescatarian": "Pescatarian",
		},
	},
	types.TraitCuisineStyle: {
		Label: "Cuisine Style", Icon: "🍜",
		Options: map[string]string{
			"asian":   "Asian cuisine",
			"western": "Western cuisine",
			"mixed":   "Mixed/Fusion",
			"local":   "Local/Traditional",
		},
	},
	types.TraitDecisionSpeed: {
		Label: "Decision Speed", Icon: "⚡",
		Options: map[string]string{
			"quick":      "Quick decider",
			"moderate":   "Moderate pace",
			"slow":       "Take my time",
			"indecisive": "Very indecisive",
		},
	},
}

// ProfileEntry is one displayable line of a personality profile.
type ProfileEntry struct {
	Trait string `json:"trait"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Describe renders p in questionnaire order, skipping unknown traits. An
// option without a label falls back to its raw value.
func Describe(p types.PersonalityProfile) []ProfileEntry {
	var out []ProfileEntry
	for _, trait := range types.TraitKeys {
		v, ok := p[trait]
		if !ok {
			continue
		}
		cfg := TraitLabels[trait]
		text, ok := cfg.Options[v]
		if !ok {
			text = v
		}
		out = append(out, ProfileEntry{Trait: trait, Label: cfg.Label, Icon: cfg.Icon, Value: v, Text: text})
	}
	return out
}
