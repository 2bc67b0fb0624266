package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/questionnaire"
	"github.com/Wa1tonGan/food-decider/decider/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "fooddecider.db"))
	t.Setenv("LOG_DIR", filepath.Join(dir, "logs"))
	t.Setenv("MOCK_PROPERTIES", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{}
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color", "--no-follow"}, args...))
	err := root.Execute()
	a.close()
	return out.String(), err
}

func TestCLI_GuestProfileLogout(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "guest")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Guest User!")
	assert.Contains(t, out, "next: questionnaire")

	out, err = run(t, "profile", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"email": "guest@fooddecider.com"`)
	assert.Contains(t, out, `"accountType": "Guest"`)

	_, err = run(t, "profile", "rename", "Night", "Owl")
	require.NoError(t, err)
	out, err = run(t, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "(N) Night Owl")
	assert.Contains(t, out, "No food personality yet")

	out, err = run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "next: login")

	out, err = run(t, "profile")
	assert.ErrorIs(t, err, accounts.ErrNotSignedIn)
	assert.Contains(t, out, "Not logged in")
}

func TestCLI_LoginRejectsBadForm(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "login", "--email", "not-an-email", "--password", "abc")
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "Email is invalid")
	assert.Contains(t, out, "Password must be at least 6 characters")

	out, err = run(t, "login", "--email", "kim@example.com", "--password", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, kim!")
}

func TestCLI_ChatRejectsUnknownMode(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "chat", "--mode", "guess")
	assert.Error(t, err)
}

func TestParseChatLine(t *testing.T) {
	tests := []struct {
		in   string
		want chatLine
	}{
		{"pizza please", chatLine{kind: lineSend, text: "pizza please"}},
		{"  ", chatLine{kind: lineSend, text: "  "}},
		{"/new", chatLine{kind: lineNew}},
		{"/mode recommend", chatLine{kind: lineMode, mode: types.ModeRecommend}},
		{"/rate 4", chatLine{kind: lineRate, score: 4}},
		{"/rate x", chatLine{kind: lineInvalid, text: "usage: /rate 1-5"}},
		{" /exit ", chatLine{kind: lineQuit}},
		{"/dance", chatLine{kind: lineInvalid, text: "unknown command /dance"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseChatLine(tt.in), tt.in)
	}
}

func TestQuizItems(t *testing.T) {
	v := controllers.QuestionnaireView{Index: 0, Question: questionnaire.Questions[0]}
	items, cursor := quizItems(v)
	require.Len(t, items, len(questionnaire.Questions[0].Options)+1)
	assert.Equal(t, 0, cursor)
	assert.Equal(t, actSkip, items[len(items)-1].action)

	v = controllers.QuestionnaireView{Index: 1, Question: questionnaire.Questions[1], Selected: "mild"}
	items, cursor = quizItems(v)
	require.Len(t, items, len(questionnaire.Questions[1].Options)+2)
	assert.Equal(t, "mild", items[cursor].Value)
	assert.Equal(t, actBack, items[len(items)-2].action)
}

func TestProfileLines(t *testing.T) {
	v := controllers.ProfileView{
		User:           &types.UserIdentity{Email: "a@b.com", Name: "Ana"},
		AccountType:    "Registered",
		Initial:        "A",
		HasPersonality: true,
		Personality: questionnaire.Describe(types.PersonalityProfile{
			types.TraitSpiceLevel: "no_spice",
		}),
	}
	got := strings.Join(profileLines(v), "\n")
	assert.Contains(t, got, "Account: Registered")
	assert.Contains(t, got, "Spice Tolerance")
	assert.Contains(t, got, "No spice")
	assert.NotContains(t, got, "Joined:")
}
