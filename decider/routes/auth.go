package routes

import (
	"net/http"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/controllers"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"

	"github.com/go-chi/chi/v5"
)

// signInResult answers 422 with the field errors when the form is rejected.
func signInResult(res accounts.Result, err error) (any, int, error) {
	if err != nil {
		return nil, statusFor(err), err
	}
	if !res.Errors.Empty() {
		return res, http.StatusUnprocessableEntity, nil
	}
	return res, http.StatusOK, nil
}

func AuthRoutes(ctrl *controllers.AuthController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Post("/session", handleJSON(func(r *http.Request) (any, int, error) {
		tok, err := ctrl.NewClient(r.Context())
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return tok, http.StatusCreated, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
			var form accounts.Form
			if err := decode(r, &form); err != nil {
				return nil, http.StatusBadRequest, err
			}
			return signInResult(ctrl.Login(r.Context(), clientID(r), form))
		}))
		gr.Post("/signup", handleJSON(func(r *http.Request) (any, int, error) {
			var form accounts.Form
			if err := decode(r, &form); err != nil {
				return nil, http.StatusBadRequest, err
			}
			return signInResult(ctrl.Signup(r.Context(), clientID(r), form))
		}))
		gr.Post("/guest", handleJSON(func(r *http.Request) (any, int, error) {
			return signInResult(ctrl.Guest(r.Context(), clientID(r)))
		}))
	})
	return r
}
