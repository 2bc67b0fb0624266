package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/utils/color"
	"github.com/Wa1tonGan/food-decider/decider/utils/jsonutils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func profileLines(v controllers.ProfileView) []string {
	lines := []string{
		color.ColorPrompt(fmt.Sprintf("(%s) %s", v.Initial, v.User.Name)),
		"Email:   " + v.User.Email,
		"Account: " + v.AccountType,
	}
	if !v.User.JoinedDate.IsZero() {
		lines = append(lines, "Joined:  "+v.User.JoinedDate.Format("January 2, 2006"))
	}
	if !v.HasPersonality {
		return append(lines, color.ColorMuted("No food personality yet. Run `fooddecider quiz`."))
	}
	lines = append(lines, "", color.ColorPrompt("Food personality"))
	for _, e := range v.Personality {
		lines = append(lines, fmt.Sprintf("%s %-19s %s", e.Icon, e.Label, e.Text))
	}
	return lines
}

func newProfileCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile and food personality",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.profile.Get(cmd.Context(), a.clientID)
			if err != nil {
				if errors.Is(err, accounts.ErrNotSignedIn) {
					a.println(color.ColorWarning("Not logged in. Run `fooddecider login` or `fooddecider guest`."))
				}
				return err
			}
			if asJSON {
				a.println(jsonutils.ToJSON(v))
				return nil
			}
			a.println(strings.Join(profileLines(v), "\n"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "rename NAME",
		Short: "Change your display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.profile.Rename(cmd.Context(), a.clientID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.println(color.ColorInfo("Name changed to " + v.User.Name))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "retake",
		Short: "Clear your food personality and answer the questionnaire again",
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := a.profile.RetakeQuiz(cmd.Context(), a.clientID)
			if err != nil {
				return err
			}
			return a.follow(cmd.Context(), next)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Delete your account and every stored answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := promptui.Prompt{Label: "Delete account", IsConfirm: true}
			if _, err := p.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					return nil
				}
				return err
			}
			next, err := a.profile.DeleteAccount(cmd.Context(), a.clientID)
			if err != nil {
				return err
			}
			return a.follow(cmd.Context(), next)
		},
	})
	return cmd
}
