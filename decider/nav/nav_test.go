package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := map[string]Page{
		"":               Home,
		"/":              Home,
		"/login":         Login,
		"login/":         Login,
		"/questionnaire": Questionnaire,
		"/chat":          Chat,
		" /profile ":     Profile,
		"/admin":         Home,
		"/chat/extra":    Home,
	}
	for in, want := range cases {
		assert.Equal(t, want, Resolve(in), in)
	}
}

func TestPageString(t *testing.T) {
	assert.Equal(t, "home", Home.String())
	assert.Equal(t, "questionnaire", Questionnaire.String())
	assert.Equal(t, "home", Page("/nowhere").String())
}
