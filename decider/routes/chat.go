package routes

import (
	"context"
	"net/http"
	"sync"

	"github.com/Wa1tonGan/food-decider/decider/chat"
	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"
	dtypes "github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"
	"github.com/Wa1tonGan/food-decider/decider/utils/types"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.View(r.Context(), clientID(r)), http.StatusOK, nil
		}))
		// POST /chat/send blocks until the recommendation or its error entry is in
		gr.Post("/send", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.SendRequest
			if err := decode(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			v, err := ctrl.Send(r.Context(), clientID(r), req.Text)
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
		gr.Post("/rate", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.RateRequest
			if err := decode(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			v, err := ctrl.Rate(r.Context(), clientID(r), req.Score)
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
		gr.Post("/new", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.NewChat(r.Context(), clientID(r)), http.StatusOK, nil
		}))
		gr.Post("/mode", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ModeRequest
			if err := decode(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			v, err := ctrl.SetMode(r.Context(), clientID(r), dtypes.Mode(req.Mode))
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
	})
	// the token travels in the first frame, browsers cannot set headers on upgrade
	r.HandleFunc("/ws", chatSocket(ctrl, cfg))
	return r
}

// socketFrame is what the server writes besides chat events.
type socketFrame struct {
	Type  string                `json:"type"`
	State *controllers.ChatView `json:"state,omitempty"`
	Error string                `json:"error,omitempty"`
}

func chatSocket(ctrl *controllers.ChatController, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			logging.ErrorLogger.Error("websocket accept error", zap.Error(err))
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithCancel(r.Context())
		var hello types.ChatCommand
		if err := wsjson.Read(ctx, conn, &hello); err != nil {
			cancel()
			conn.Close(websocket.StatusUnsupportedData, "invalid json")
			return
		}
		id, err := middlewares.ParseClientToken(cfg, hello.Token)
		if err != nil {
			wsjson.Write(ctx, conn, socketFrame{Type: "error", Error: "invalid token"})
			cancel()
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		sess := ctrl.Session(id)
		stop := sess.Observe(func(ev chat.Event) {
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				logging.AppLogger.Debug("chat event dropped", zap.String("client_id", id), zap.Error(err))
			}
		})
		defer stop()
		var wg sync.WaitGroup
		defer wg.Wait()
		defer cancel()

		writeState := func() {
			v := ctrl.View(ctx, id)
			wsjson.Write(ctx, conn, socketFrame{Type: "state", State: &v})
		}
		fail := func(err error) {
			wsjson.Write(ctx, conn, socketFrame{Type: "error", Error: err.Error()})
		}
		// sends outlive the socket so a dropped connection still completes the transcript
		dispatch := func(cmd types.ChatCommand) {
			switch cmd.Type {
			case "":
			case "state":
				writeState()
			case "send":
				wg.Go(func() {
					if err := sess.Send(context.WithoutCancel(ctx), cmd.Text); err != nil {
						fail(err)
					}
				})
			case "rate":
				wg.Go(func() {
					if err := sess.Rate(context.WithoutCancel(ctx), cmd.Score); err != nil {
						fail(err)
					}
				})
			case "new":
				sess.NewChat()
			case "mode":
				if err := sess.SetMode(dtypes.Mode(cmd.Mode)); err != nil {
					fail(err)
				}
			default:
				wsjson.Write(ctx, conn, socketFrame{Type: "error", Error: "unknown command " + cmd.Type})
			}
		}

		logging.AppLogger.Info("chat socket opened", zap.String("client_id", id))
		writeState()
		dispatch(hello)
		for {
			var cmd types.ChatCommand
			if err := wsjson.Read(ctx, conn, &cmd); err != nil {
				if s := websocket.CloseStatus(err); s != websocket.StatusNormalClosure && s != websocket.StatusGoingAway {
					logging.AppLogger.Info("chat socket closed", zap.String("client_id", id), zap.Error(err))
				}
				return
			}
			dispatch(cmd)
		}
	}
}
