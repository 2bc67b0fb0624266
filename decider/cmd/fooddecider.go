// Command-line client for Food Decider. It drives the same controllers as the
// HTTP server against a local store, one client id per store.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/recommend"
	"github.com/Wa1tonGan/food-decider/decider/sources/psql"
	"github.com/Wa1tonGan/food-decider/decider/sources/psql/dao"
	"github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/color"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultClientID keys the store of the terminal client.
const DefaultClientID = "local"

var errRejected = errors.New("form rejected")

type app struct {
	clientID string
	noFollow bool
	out      io.Writer

	db      *psql.Database
	auth    *controllers.AuthController
	quiz    *controllers.QuestionnaireController
	chat    *controllers.ChatController
	profile *controllers.ProfileController
}

func (a *app) open(ctx context.Context, cfg config.Config) error {
	logging.InitLogger(cfg.LogDir)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(openCtx, cfg)
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	opts, err := recommend.LoadOptions(cfg.MockProperties)
	if err != nil {
		db.Close()
		return fmt.Errorf("load mock properties: %w", err)
	}
	clients, err := controllers.NewClients(dao.NewLocalEntryDAO(db.DB), recommend.NewMockService(opts), 1)
	if err != nil {
		db.Close()
		return err
	}
	a.db = db
	a.auth = controllers.NewAuthController(clients, cfg)
	a.quiz = controllers.NewQuestionnaireController(clients)
	a.chat = controllers.NewChatController(clients)
	a.profile = controllers.NewProfileController(clients)
	logging.AppLogger.Info("cli started", zap.String("client_id", a.clientID))
	return nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
	logging.Sync()
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// follow continues to next the way the web pages navigate.
func (a *app) follow(ctx context.Context, next nav.Page) error {
	if a.noFollow {
		a.println(color.ColorMuted("next: " + next.String()))
		return nil
	}
	switch next {
	case nav.Questionnaire:
		return a.runQuiz(ctx)
	case nav.Chat:
		return a.runChat(ctx, types.ModeDecide)
	case nav.Login:
		a.println(color.ColorInfo("Signed out. Run `fooddecider login`, `signup` or `guest` to continue."))
	case nav.Home:
		a.println(color.ColorInfo("All data cleared."))
	}
	return nil
}

func (a *app) signedIn(ctx context.Context, res accounts.Result, err error) error {
	if err != nil {
		return err
	}
	if !res.Errors.Empty() {
		fields := make([]string, 0, len(res.Errors))
		for f := range res.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			a.println(color.ColorError(res.Errors[f]))
		}
		return errRejected
	}
	a.println(color.ColorInfo(fmt.Sprintf("Welcome, %s!", res.User.Name)))
	return a.follow(ctx, res.Next)
}

func ask(label string, mask bool) (string, error) {
	p := promptui.Prompt{Label: label}
	if mask {
		p.Mask = '*'
	}
	return p.Run()
}

// interrupted reports whether err is the user leaving a prompt.
func interrupted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort)
}

// newRootCmd builds the command tree over a; the caller closes a.
func newRootCmd(a *app) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "fooddecider",
		Short:         "🍽️ Let me decide what you eat",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.SetEnabled(false)
			}
			a.out = cmd.OutOrStdout()
			return a.open(cmd.Context(), config.LoadConfig())
		},
	}
	root.PersistentFlags().StringVar(&a.clientID, "client", DefaultClientID, "client id keying the local store")
	root.PersistentFlags().BoolVar(&a.noFollow, "no-follow", false, "print the next page instead of opening it")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newGuestCmd(a),
		newQuizCmd(a),
		newChatCmd(a),
		newProfileCmd(a),
		newLogoutCmd(a),
		newResetCmd(a),
	)
	return root
}

func newLoginCmd(a *app) *cobra.Command {
	var form accounts.Form
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if form.Email == "" {
				if form.Email, err = ask("Email", false); err != nil {
					return err
				}
			}
			if form.Password == "" {
				if form.Password, err = ask("Password", true); err != nil {
					return err
				}
			}
			res, err := a.auth.Login(cmd.Context(), a.clientID, form)
			return a.signedIn(cmd.Context(), res, err)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var form accounts.Form
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := []struct {
				label string
				dst   *string
				mask  bool
			}{
				{"Name", &form.Name, false},
				{"Email", &form.Email, false},
				{"Password", &form.Password, true},
				{"Confirm password", &form.ConfirmPassword, true},
			}
			for _, f := range fields {
				if *f.dst != "" {
					continue
				}
				v, err := ask(f.label, f.mask)
				if err != nil {
					return err
				}
				*f.dst = v
			}
			res, err := a.auth.Signup(cmd.Context(), a.clientID, form)
			return a.signedIn(cmd.Context(), res, err)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "password again")
	return cmd
}

func newGuestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guest",
		Short: "Continue without an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.auth.Guest(cmd.Context(), a.clientID)
			return a.signedIn(cmd.Context(), res, err)
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out, keeping the personality profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := a.profile.Logout(cmd.Context(), a.clientID)
			if err != nil {
				return err
			}
			return a.follow(cmd.Context(), next)
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all data and restart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				p := promptui.Prompt{Label: "Clear all data", IsConfirm: true}
				if _, err := p.Run(); err != nil {
					if errors.Is(err, promptui.ErrAbort) {
						return nil
					}
					return err
				}
			}
			next, err := a.profile.Reset(cmd.Context(), a.clientID)
			if err != nil {
				return err
			}
			return a.follow(cmd.Context(), next)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	if err != nil && !interrupted(err) {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		}
		stop()
		os.Exit(1)
	}
}
