package main

import (
	"context"
	"fmt"

	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/utils/color"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

type quizAction int

const (
	actAnswer quizAction = iota
	actBack
	actSkip
)

type quizItem struct {
	Label  string
	Value  string
	action quizAction
}

// quizItems lists the options of the current question, then back and skip.
func quizItems(v controllers.QuestionnaireView) (items []quizItem, cursor int) {
	for i, o := range v.Question.Options {
		items = append(items, quizItem{Label: o.Label, Value: o.Value})
		if o.Value == v.Selected {
			cursor = i
		}
	}
	if v.Index > 0 {
		items = append(items, quizItem{Label: "← Back", action: actBack})
	}
	items = append(items, quizItem{Label: "Skip for now", action: actSkip})
	return items, cursor
}

func (a *app) runQuiz(ctx context.Context) error {
	a.println(color.ColorPrompt("Let's get to know your taste"))
	v := a.quiz.State(a.clientID)
	for v.Next == "" {
		items, cursor := quizItems(v)
		sel := promptui.Select{
			Label: fmt.Sprintf("[%d/%d] %s", v.Index+1, v.Total, v.Question.Prompt),
			Items: items,
			Templates: &promptui.SelectTemplates{
				Active:   "▸ {{ .Label | cyan }}",
				Inactive: "  {{ .Label }}",
				Selected: "✔ {{ .Label | green }}",
			},
			CursorPos: cursor,
			Size:      len(items),
		}
		i, _, err := sel.Run()
		if err != nil {
			if interrupted(err) {
				a.println(color.ColorMuted("Questionnaire paused; run `fooddecider quiz` to pick up again."))
				return nil
			}
			return err
		}
		switch it := items[i]; it.action {
		case actBack:
			v = a.quiz.Back(a.clientID)
		case actSkip:
			if v, err = a.quiz.Skip(ctx, a.clientID); err != nil {
				return err
			}
		default:
			if v, err = a.quiz.Answer(ctx, a.clientID, it.Value); err != nil {
				return err
			}
		}
	}
	a.println(color.ColorInfo(fmt.Sprintf("Saved %d of %d answers.", len(v.Answers), v.Total)))
	return a.follow(ctx, v.Next)
}

func newQuizCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "quiz",
		Aliases: []string{"questionnaire"},
		Short:   "Answer the personality questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.noFollow {
				return a.follow(cmd.Context(), nav.Questionnaire)
			}
			return a.runQuiz(cmd.Context())
		},
	}
}
