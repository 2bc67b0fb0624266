// decider/types/personality.go
package types

// Trait keys of the personality profile, in questionnaire order.
const (
	TraitAdventureLevel    = "adventure_level"
	TraitSpiceLevel        = "spice_level"
	TraitMealSize          = "meal_size"
	TraitDietaryPreference = "dietary_preference"
	TraitCuisineStyle      = "cuisine_style"
	TraitDecisionSpeed     = "decision_speed"
)

// TraitKeys lists every trait in questionnaire order.
var TraitKeys = []string{
	TraitAdventureLevel,
	TraitSpiceLevel,
	TraitMealSize,
	TraitDietaryPreference,
	TraitCuisineStyle,
	TraitDecisionSpeed,
}

var traitOptions = map[string][]string{
	TraitAdventureLevel:    {"very_adventurous", "somewhat_adventurous", "cautious", "very_cautious"},
	TraitSpiceLevel:        {"very_spicy", "medium_spicy", "mild", "no_spice"},
	TraitMealSize:          {"large", "medium", "small", "snack"},
	TraitDietaryPreference: {"none", "vegetarian", "vegan", "pescatarian"},
	TraitCuisineStyle:      {"asian", "western", "mixed", "local"},
	TraitDecisionSpeed:     {"quick", "moderate", "slow", "indecisive"},
}

// TraitOptions returns a copy of the option set for trait, or nil for unknown traits.
func TraitOptions(trait string) []string {
	opts, ok := traitOptions[trait]
	if !ok {
		return nil
	}
	return append([]string(nil), opts...)
}

// ValidTraitValue reports whether value belongs to trait's option set.
func ValidTraitValue(trait, value string) bool {
	for _, o := range traitOptions[trait] {
		if o == value {
			return true
		}
	}
	return false
}

// PersonalityProfile maps trait keys to one of that trait's options. A profile
// produced by skipping the questionnaire may hold fewer than six keys.
type PersonalityProfile map[string]string

// Valid reports whether every entry is a known trait with an allowed value.
func (p PersonalityProfile) Valid() bool {
	for k, v := range p {
		if !ValidTraitValue(k, v) {
			return false
		}
	}
	return true
}

// Complete reports whether all six traits are answered.
func (p PersonalityProfile) Complete() bool {
	return len(p) == len(TraitKeys) && p.Valid()
}

func (p PersonalityProfile) Clone() PersonalityProfile {
	if p == nil {
		return nil
	}
	out := make(PersonalityProfile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
