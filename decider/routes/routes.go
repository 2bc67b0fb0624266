package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/chat"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"
	"github.com/Wa1tonGan/food-decider/decider/questionnaire"
	"github.com/Wa1tonGan/food-decider/decider/recommend"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"go.uber.org/zap"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			if status >= http.StatusInternalServerError {
				logging.ErrorLogger.Error("request failed",
					zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrInvalidScore),
		errors.Is(err, chat.ErrInvalidMode),
		errors.Is(err, questionnaire.ErrInvalidOption),
		errors.Is(err, accounts.ErrNameRequired),
		errors.Is(err, recommend.ErrInvalidScore),
		errors.Is(err, recommend.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, chat.ErrBusy),
		errors.Is(err, chat.ErrNoPending),
		errors.Is(err, questionnaire.ErrFlowFinished):
		return http.StatusConflict
	case errors.Is(err, accounts.ErrNotSignedIn):
		return http.StatusUnauthorized
	case errors.Is(err, recommend.ErrRecommendationFail),
		errors.Is(err, recommend.ErrRatingFail),
		errors.Is(err, recommend.ErrSaveFail):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func clientID(r *http.Request) string {
	id, _ := middlewares.ClientID(r.Context())
	return id
}
