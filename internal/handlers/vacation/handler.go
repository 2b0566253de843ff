package vacation

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/vacation/model/dto"
	"lodge/internal/domains/vacation/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vacation
	otel    otel.Otel
}

func New(service service.Vacation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/vacations", func(r chi.Router) {
		r.Post("/", handler.CreateVacation)
		r.Get("/", handler.GetVacations)
		r.Patch("/{id}/decision", handler.DecideVacation)
	})
}

// CreateVacation files a vacation request for the signed-in staff member.
// @Summary Create a vacation request
// @Description File a pending vacation request; the requester comes from the session.
// @Tags Vacation
// @Accept json
// @Produce json
// @Param request body dto.CreateVacationRequest true "Create Vacation Request"
// @Success 201 {object} response.Data[dto.VacationResponse] "Vacation request created"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/vacations [post]
// @Security BearerAuth
func (handler *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVacation")
	defer scope.End()

	req := dto.CreateVacationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vacation request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVacations lists all vacation requests, newest first.
// @Summary Get vacation requests
// @Description List vacation requests ordered by request date descending.
// @Tags Vacation
// @Produce json
// @Success 200 {object} response.Data[dto.GetVacationsResponse] "List of vacation requests"
// @Failure 500 {object} response.Error
// @Router /v1/vacations [get]
// @Security BearerAuth
func (handler *Handler) GetVacations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVacations")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vacation requests")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// DecideVacation approves or rejects a pending vacation request.
// @Summary Decide a vacation request
// @Description Approve or reject a pending request; only pending requests may be decided.
// @Tags Vacation
// @Accept json
// @Produce json
// @Param id path string true "Vacation request ID"
// @Param request body dto.DecideVacationRequest true "Decide Vacation Request"
// @Success 200 {object} response.Message "Vacation request decided successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/vacations/{id}/decision [patch]
// @Security BearerAuth
func (handler *Handler) DecideVacation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideVacation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.DecideVacationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Decide(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide vacation request")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Vacation request decided successfully")
}
