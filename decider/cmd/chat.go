package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Wa1tonGan/food-decider/decider/chat"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/color"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const chatHelp = `/mode decide|recommend  switch chat style
/new                    start a new chat
/rate 1-5               rate the last recommendation
/exit                   leave`

type lineKind int

const (
	lineSend lineKind = iota
	lineNew
	lineMode
	lineRate
	lineHelp
	lineQuit
	lineInvalid
)

type chatLine struct {
	kind  lineKind
	text  string
	mode  types.Mode
	score int
}

// parseChatLine turns one input line into a chat command. Anything not
// starting with '/' is a message.
func parseChatLine(line string) chatLine {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		return chatLine{kind: lineSend, text: line}
	}
	fields := strings.Fields(trimmed)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	switch fields[0] {
	case "/new":
		return chatLine{kind: lineNew}
	case "/mode":
		return chatLine{kind: lineMode, mode: types.Mode(arg)}
	case "/rate":
		score, err := strconv.Atoi(arg)
		if err != nil {
			return chatLine{kind: lineInvalid, text: "usage: /rate 1-5"}
		}
		return chatLine{kind: lineRate, score: score}
	case "/help", "/?":
		return chatLine{kind: lineHelp}
	case "/exit", "/quit":
		return chatLine{kind: lineQuit}
	default:
		return chatLine{kind: lineInvalid, text: "unknown command " + fields[0]}
	}
}

func renderMessage(m types.ChatMessage) string {
	switch m.Kind {
	case types.KindUser:
		return color.ColorUser("you › ") + m.Text
	case types.KindError:
		return color.ColorError(m.Text)
	default:
		return color.ColorAssistant("🍽️  ") + m.Text
	}
}

func (a *app) banner(v controllers.ChatView) {
	a.println(color.ColorPrompt(v.Headline))
	a.println(color.ColorMuted(v.Intro))
	a.println(color.ColorMuted("Type /help for commands."))
}

func (a *app) runChat(ctx context.Context, mode types.Mode) error {
	v, err := a.chat.SetMode(ctx, a.clientID, mode)
	if err != nil {
		return err
	}
	a.banner(v)
	for {
		p := promptui.Prompt{Label: v.UserInitial + " ›"}
		line, err := p.Run()
		if err != nil {
			if interrupted(err) {
				return nil
			}
			return err
		}
		cl := parseChatLine(line)
		switch cl.kind {
		case lineQuit:
			return nil
		case lineHelp:
			a.println(chatHelp)
		case lineInvalid:
			a.println(color.ColorWarning(cl.text))
		case lineNew:
			v = a.chat.NewChat(ctx, a.clientID)
			a.banner(v)
		case lineMode:
			nv, err := a.chat.SetMode(ctx, a.clientID, cl.mode)
			if err != nil {
				a.println(color.ColorWarning("modes: decide, recommend"))
				continue
			}
			v = nv
			a.println(color.ColorInfo(v.Headline))
		case lineRate:
			a.rate(ctx, cl.score)
		case lineSend:
			nv, err := a.send(ctx, cl.text)
			if err != nil {
				if errors.Is(err, chat.ErrEmptyMessage) {
					continue
				}
				return err
			}
			v = nv
			if v.RatingPrompt != "" {
				a.askRating(ctx)
			}
		}
	}
}

func (a *app) send(ctx context.Context, text string) (controllers.ChatView, error) {
	a.println(color.ColorMuted("thinking..."))
	v, err := a.chat.Send(ctx, a.clientID, text)
	if err != nil {
		return v, err
	}
	if n := len(v.Transcript); n > 0 {
		a.println(renderMessage(v.Transcript[n-1]))
	}
	return v, nil
}

func (a *app) rate(ctx context.Context, score int) {
	if _, err := a.chat.Rate(ctx, a.clientID, score); err != nil {
		switch {
		case errors.Is(err, chat.ErrNoPending):
			a.println(color.ColorWarning("nothing to rate yet"))
		case errors.Is(err, chat.ErrInvalidScore):
			a.println(color.ColorWarning("usage: /rate 1-5"))
		default:
			a.println(color.ColorWarning("Failed to submit rating; try /rate again."))
		}
		return
	}
	a.println(color.ColorInfo("Thanks for the feedback!"))
}

func (a *app) askRating(ctx context.Context) {
	items := []string{"★", "★★", "★★★", "★★★★", "★★★★★", "Not now"}
	sel := promptui.Select{Label: chat.RatingPrompt, Items: items, Size: len(items)}
	i, _, err := sel.Run()
	if err != nil || i == len(items)-1 {
		return
	}
	a.rate(ctx, i+1)
}

func newChatCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask what to eat",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := types.Mode(mode)
			if !m.Valid() {
				return fmt.Errorf("%w: %q", chat.ErrInvalidMode, mode)
			}
			if a.noFollow {
				return a.follow(cmd.Context(), nav.Chat)
			}
			return a.runChat(cmd.Context(), m)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(types.ModeDecide), "decide or recommend")
	return cmd
}
