package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateReservationRequest
		want model.Reservation
	}{
		{
			name: "defaults applied",
			req: dto.CreateReservationRequest{
				GuestName:   "Kim Minjun",
				RoomNo:      "101",
				CheckInYMD:  "20240615",
				CheckOutYMD: "20240617",
			},
			want: model.Reservation{
				GuestName:    "Kim Minjun",
				RoomNo:       "101",
				GuestNum:     1,
				CheckInYMD:   "20240615",
				CheckInHHMM:  "1400",
				CheckOutYMD:  "20240617",
				CheckOutHHMM: "1100",
				Status:       model.StatusBooked,
			},
		},
		{
			name: "explicit values kept",
			req: dto.CreateReservationRequest{
				GuestName:    "Lee Seoyeon",
				RoomNo:       "203",
				GuestNum:     4,
				CheckInYMD:   "20240701",
				CheckInHHMM:  "1600",
				CheckOutYMD:  "20240703",
				CheckOutHHMM: "0900",
			},
			want: model.Reservation{
				GuestName:    "Lee Seoyeon",
				RoomNo:       "203",
				GuestNum:     4,
				CheckInYMD:   "20240701",
				CheckInHHMM:  "1600",
				CheckOutYMD:  "20240703",
				CheckOutHHMM: "0900",
				Status:       model.StatusBooked,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.ToModel("admin")

			assert.Equal(t, tt.want.GuestName, got.GuestName)
			assert.Equal(t, tt.want.RoomNo, got.RoomNo)
			assert.Equal(t, tt.want.GuestNum, got.GuestNum)
			assert.Equal(t, tt.want.CheckInHHMM, got.CheckInHHMM)
			assert.Equal(t, tt.want.CheckOutHHMM, got.CheckOutHHMM)
			assert.Equal(t, model.StatusBooked, got.Status)
			assert.Equal(t, "admin", got.Metadata.CreatedBy)
			assert.Equal(t, "admin", got.Metadata.ModifiedBy)
			assert.False(t, got.Metadata.CreatedAt.IsZero())

			// Code and sequence are assigned later by the service.
			assert.Empty(t, got.Code)
			assert.Zero(t, got.SeqNo)
		})
	}
}

func TestReservationResponse_FromModel(t *testing.T) {
	mod := model.Reservation{
		Code:         "AB12CD",
		SeqNo:        202406,
		GuestName:    "Kim Minjun",
		RoomNo:       "101",
		GuestNum:     2,
		CheckInYMD:   "20240615",
		CheckInHHMM:  "1400",
		CheckOutYMD:  "20240617",
		CheckOutHHMM: "1100",
		Status:       model.StatusInHouse,
		Memo:         "late arrival",
	}

	res := dto.ReservationResponse{}
	res.FromModel(mod)

	assert.Equal(t, "AB12CD", res.Code)
	assert.Equal(t, 202406, res.SeqNo)
	assert.Equal(t, "2024-06-15", res.CheckInDate)
	assert.Equal(t, "14:00", res.CheckInTime)
	assert.Equal(t, "2024-06-17", res.CheckOutDate)
	assert.Equal(t, "11:00", res.CheckOutTime)
	assert.Equal(t, model.StatusInHouse, res.Status)
	assert.Equal(t, "In-House", res.StatusLabel)
	assert.Equal(t, "green", res.StatusColor)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	models := []model.Reservation{
		{Code: "AB12CD", SeqNo: 202406, Status: model.StatusBooked},
		{Code: "ZZ99XX", SeqNo: 202406, Status: model.StatusCheckedOut},
	}

	res := dto.GetReservationsResponse{}
	res.FromModels(models, len(models), 10)

	assert.Len(t, res.Reservations, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
