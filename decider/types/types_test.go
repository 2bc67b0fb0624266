package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalityProfileValidity(t *testing.T) {
	p := PersonalityProfile{}
	for _, k := range TraitKeys {
		p[k] = TraitOptions(k)[0]
	}
	assert.True(t, p.Valid())
	assert.True(t, p.Complete())

	p[TraitSpiceLevel] = "lava"
	assert.False(t, p.Valid())
	assert.False(t, p.Complete())

	partial := PersonalityProfile{TraitMealSize: "snack"}
	assert.True(t, partial.Valid())
	assert.False(t, partial.Complete())

	assert.False(t, PersonalityProfile{"favorite_color": "blue"}.Valid())
}

func TestTraitOptionsIsACopy(t *testing.T) {
	opts := TraitOptions(TraitCuisineStyle)
	opts[0] = "martian"
	assert.True(t, ValidTraitValue(TraitCuisineStyle, "asian"))
	assert.Nil(t, TraitOptions("nope"))
}

func TestUserIdentityDisplay(t *testing.T) {
	var nobody *UserIdentity
	assert.Equal(t, "G", nobody.Initial())
	assert.Equal(t, "Registered", nobody.AccountType())

	u := &UserIdentity{Name: "alice"}
	assert.Equal(t, "A", u.Initial())
	assert.Equal(t, "Registered", u.AccountType())

	g := &UserIdentity{Name: "Guest User", IsGuest: true}
	assert.Equal(t, "G", g.Initial())
	assert.Equal(t, "Guest", g.AccountType())
}

func TestModeAndScore(t *testing.T) {
	assert.True(t, ModeDecide.Valid())
	assert.True(t, ModeRecommend.Valid())
	assert.False(t, Mode("surprise").Valid())

	assert.False(t, ValidScore(0))
	assert.True(t, ValidScore(1))
	assert.True(t, ValidScore(5))
	assert.False(t, ValidScore(6))
}
