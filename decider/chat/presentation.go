package chat

import "github.com/Wa1tonGan/food-decider/decider/types"

// Headline is the empty-transcript title for mode.
func Headline(mode types.Mode) string {
	if mode == types.ModeRecommend {
		return "Get food recommendations"
	}
	return "Let me decide for you!"
}

func Intro(mode types.Mode) string {
	if mode == types.ModeRecommend {
		return "Describe what you're looking for, and I'll suggest some great options."
	}
	return "Tell me what kind of mood you're in, and I'll pick the perfect meal for you."
}

func Placeholder(mode types.Mode) string {
	if mode == types.ModeRecommend {
		return "Describe what you're looking for..."
	}
	return "Tell me what you're in the mood for..."
}

const RatingPrompt = "How was this recommendation?"
