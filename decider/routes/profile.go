package routes

import (
	"context"
	"net/http"

	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"
	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/utils/types"

	"github.com/go-chi/chi/v5"
)

func navigate(fn func(ctx context.Context, clientID string) (nav.Page, error)) http.HandlerFunc {
	return handleJSON(func(r *http.Request) (any, int, error) {
		next, err := fn(r.Context(), clientID(r))
		if err != nil {
			return nil, statusFor(err), err
		}
		return types.NextResponse{Next: string(next)}, http.StatusOK, nil
	})
}

func ProfileRoutes(ctrl *controllers.ProfileController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			v, err := ctrl.Get(r.Context(), clientID(r))
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
		gr.Put("/name", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.RenameRequest
			if err := decode(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			v, err := ctrl.Rename(r.Context(), clientID(r), req.Name)
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
		gr.Post("/logout", navigate(ctrl.Logout))
		gr.Post("/retake", navigate(ctrl.RetakeQuiz))
		gr.Delete("/", navigate(ctrl.DeleteAccount))
	})
	return r
}

func HomeRoutes(ctrl *controllers.ProfileController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			v, err := ctrl.Home(r.Context(), clientID(r))
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
		gr.Post("/reset", navigate(ctrl.Reset))
	})
	return r
}
