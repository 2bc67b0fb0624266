package routes

import (
	"net/http"

	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"
	"github.com/Wa1tonGan/food-decider/decider/utils/types"

	"github.com/go-chi/chi/v5"
)

func QuestionnaireRoutes(ctrl *controllers.QuestionnaireController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.State(clientID(r)), http.StatusOK, nil
		}))
		gr.Post("/answer", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.AnswerRequest
			if err := decode(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			v, err := ctrl.Answer(r.Context(), clientID(r), req.Value)
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
		gr.Post("/back", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.Back(clientID(r)), http.StatusOK, nil
		}))
		gr.Post("/skip", handleJSON(func(r *http.Request) (any, int, error) {
			v, err := ctrl.Skip(r.Context(), clientID(r))
			if err != nil {
				return nil, statusFor(err), err
			}
			return v, http.StatusOK, nil
		}))
	})
	return r
}
