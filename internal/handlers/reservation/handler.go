package reservation

import (
	"net/http"
	"strconv"

	"lodge/infras/otel"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/domains/reservation/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", handler.CreateReservation)
		r.Get("/", handler.GetReservationsByDate)
		r.Get("/month", handler.GetReservationsByMonth)
		r.Get("/arrivals", handler.GetArrivals)
		r.Get("/departures", handler.GetDepartures)
		r.Get("/{code}", handler.GetReservationsByCode)
		r.Get("/{code}/{seq_no}", handler.GetReservation)
		r.Patch("/{code}/{seq_no}/status", handler.UpdateReservationStatus)
		r.Patch("/{code}/{seq_no}/memo", handler.UpdateReservationMemo)
	})
}

func seqNoFromRequest(r *http.Request) (int, error) {
	seqNo, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamSeqNo))
	if err != nil {
		return 0, failure.BadRequestFromString("seq_no must be an integer") // nolint:wrapcheck
	}

	return seqNo, nil
}

// CreateReservation registers a new reservation draft.
// @Summary Create a new reservation
// @Description Create a reservation; the code and sequence number are assigned server-side.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservationsByDate lists reservations touching a date.
// @Summary Get reservations by date
// @Description List reservations whose check-in or check-out falls on the date.
// @Tags Reservation
// @Produce json
// @Param date query string true "Date (YYYYMMDD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservationsByDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationsByDate")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.ListByDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by date")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationsByMonth lists reservations touching a month.
// @Summary Get reservations by month
// @Description List reservations whose check-in or check-out falls in the month, optionally filtered by status.
// @Tags Reservation
// @Produce json
// @Param month query string true "Month (YYYYMM)"
// @Param status query string false "Status code (S, I, O)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/month [get]
// @Security BearerAuth
func (handler *Handler) GetReservationsByMonth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationsByMonth")
	defer scope.End()

	month := r.URL.Query().Get(constant.RequestParamMonth)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.ListByMonth(ctx, month, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by month")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// GetArrivals lists stays arriving on a date.
// @Summary Get arrivals
// @Description List booked or in-house reservations checking in on the date.
// @Tags Reservation
// @Produce json
// @Param date query string true "Date (YYYYMMDD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of arrivals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/arrivals [get]
// @Security BearerAuth
func (handler *Handler) GetArrivals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArrivals")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.Arrivals(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get arrivals")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// GetDepartures lists stays departing on a date.
// @Summary Get departures
// @Description List reservations checking out on the date.
// @Tags Reservation
// @Produce json
// @Param date query string true "Date (YYYYMMDD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of departures"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/departures [get]
// @Security BearerAuth
func (handler *Handler) GetDepartures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDepartures")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.Departures(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get departures")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationsByCode returns every reservation carrying a code.
// @Summary Get reservations by code
// @Description Codes recycle across months, so the lookup returns a set.
// @Tags Reservation
// @Produce json
// @Param code path string true "Reservation code"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Matching reservations"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{code} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationsByCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationsByCode")
	defer scope.End()

	code := chi.URLParam(r, "code")

	res, err := handler.service.GetAllByCode(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservation returns a single reservation by composite key.
// @Summary Get a reservation
// @Description Point lookup on code and sequence number.
// @Tags Reservation
// @Produce json
// @Param code path string true "Reservation code"
// @Param seq_no path int true "Sequence number (YYYYMM)"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{code}/{seq_no} [get]
// @Security BearerAuth
func (handler *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	code := chi.URLParam(r, "code")

	seqNo, err := seqNoFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, code, seqNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservationStatus moves a reservation between lifecycle states.
// @Summary Update reservation status
// @Description Set the status of the reservation matching both code and sequence number.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param code path string true "Reservation code"
// @Param seq_no path int true "Sequence number (YYYYMM)"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Reservation status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reservations/{code}/{seq_no}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	code := chi.URLParam(r, "code")

	seqNo, err := seqNoFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, code, seqNo, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation status updated successfully")
}

// UpdateReservationMemo replaces the memo of a reservation.
// @Summary Update reservation memo
// @Description Set the memo of the reservation matching both code and sequence number.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param code path string true "Reservation code"
// @Param seq_no path int true "Sequence number (YYYYMM)"
// @Param request body dto.UpdateMemoRequest true "Update Memo Request"
// @Success 200 {object} response.Message "Reservation memo updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reservations/{code}/{seq_no}/memo [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationMemo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationMemo")
	defer scope.End()

	code := chi.URLParam(r, "code")

	seqNo, err := seqNoFromRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateMemoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMemo(ctx, code, seqNo, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation memo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation memo updated successfully")
}
