package meal

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/meal/model/dto"
	"lodge/internal/domains/meal/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Meal
	otel    otel.Otel
}

func New(service service.Meal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/meals", func(r chi.Router) {
		r.Post("/", handler.SubmitMeal)
		r.Get("/", handler.GetMeals)
		r.Get("/occupant/{room_no}", handler.GetActiveOccupant)
	})
}

// SubmitMeal registers a meal headcount for the active occupant of a room.
// @Summary Submit a meal count
// @Description Record the headcount for the current meal band; resubmission overwrites the previous count.
// @Tags Meal
// @Accept json
// @Produce json
// @Param request body dto.SubmitMealRequest true "Submit Meal Request"
// @Success 201 {object} response.Data[dto.SubmitMealResponse] "Meal count recorded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/meals [post]
// @Security BearerAuth
func (handler *Handler) SubmitMeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitMeal")
	defer scope.End()

	req := dto.SubmitMealRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit meal count")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMeals lists meal counts for a date.
// @Summary Get meal counts
// @Description List meal counts for a date, optionally filtered by room number.
// @Tags Meal
// @Produce json
// @Param date query string true "Date (YYYYMMDD)"
// @Param room_no query string false "Room number"
// @Success 200 {object} response.Data[dto.GetMealsResponse] "List of meal counts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals [get]
// @Security BearerAuth
func (handler *Handler) GetMeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeals")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	roomNo := r.URL.Query().Get(constant.RequestParamRoomNo)

	res, err := handler.service.ListByDate(ctx, date, roomNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meals")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// GetActiveOccupant resolves a room fragment to its current occupant.
// @Summary Find the active occupant of a room
// @Description Resolve a 3-digit room fragment to the reservation occupying a matching room today.
// @Tags Meal
// @Produce json
// @Param room_no path string true "3-digit room fragment"
// @Success 200 {object} response.Data[resDto.ReservationResponse] "Active occupant"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meals/occupant/{room_no} [get]
// @Security BearerAuth
func (handler *Handler) GetActiveOccupant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveOccupant")
	defer scope.End()

	roomNo := chi.URLParam(r, constant.RequestParamRoomNo)

	res, err := handler.service.FindActiveOccupant(ctx, roomNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find active occupant")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
