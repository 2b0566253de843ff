package room

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", handler.GetRooms)
		r.Get("/{room_no}", handler.GetRoom)
		r.Patch("/{room_no}/status", handler.UpdateRoomStatus)
	})
}

// GetRooms lists all rooms ordered by room number.
// @Summary Get all rooms
// @Description List rooms with their housekeeping state, optionally filtered by status code.
// @Tags Room
// @Produce json
// @Param status query string false "Housekeeping status code (N, C, T, G)"
// @Param in_use query boolean false "Filter by occupancy flag"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	status := r.URL.Query().Get(constant.RequestParamStatus)
	inUse := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamInUse))

	res, err := handler.service.GetAll(ctx, status, inUse)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.EchoRequestSeq(w, r)
	response.WithJSON(w, http.StatusOK, res)
}

// GetRoom returns a single room.
// @Summary Get a room
// @Description Look up a room by room number.
// @Tags Room
// @Produce json
// @Param room_no path string true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{room_no} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	roomNo := chi.URLParam(r, constant.RequestParamRoomNo)

	res, err := handler.service.Get(ctx, roomNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoomStatus moves a room through the housekeeping cycle.
// @Summary Update room housekeeping status
// @Description Set the housekeeping status of a room.
// @Tags Room
// @Accept json
// @Produce json
// @Param room_no path string true "Room number"
// @Param request body dto.UpdateRoomStatusRequest true "Update Room Status Request"
// @Success 200 {object} response.Message "Room status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms/{room_no}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	roomNo := chi.URLParam(r, constant.RequestParamRoomNo)

	req := dto.UpdateRoomStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, roomNo, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}
