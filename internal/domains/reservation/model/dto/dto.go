package dto

import (
	"lodge/internal/domains/reservation/model"
	"lodge/shared"
	"lodge/shared/datecode"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	defaultCheckInHHMM  = "1400"
	defaultCheckOutHHMM = "1100"
	defaultGuestNum     = 1
)

type CreateReservationRequest struct {
	GuestName    string `json:"guest_name"     validate:"required,max=100"`
	Phone        string `json:"phone"          validate:"omitempty,max=20"`
	Email        string `json:"email"          validate:"omitempty,email,max=100"`
	Location     string `json:"location"       validate:"omitempty,max=100"`
	GroupDesc    string `json:"group_desc"     validate:"omitempty,max=200"`
	RoomNo       string `json:"room_no"        validate:"required,max=10"`
	GuestNum     int    `json:"guest_num"      validate:"omitempty,min=1"`
	CheckInYMD   string `json:"check_in_ymd"   validate:"required,len=8,numeric"`
	CheckInHHMM  string `json:"check_in_hhmm"  validate:"omitempty,len=4,numeric"`
	CheckOutYMD  string `json:"check_out_ymd"  validate:"required,len=8,numeric"`
	CheckOutHHMM string `json:"check_out_hhmm" validate:"omitempty,len=4,numeric"`
	Memo         string `json:"memo"           validate:"omitempty,max=1000"`
}

// ToModel builds a Reservation with draft defaults applied. The code and
// sequence number are assigned by the service.
func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	checkInHHMM := c.CheckInHHMM
	if checkInHHMM == "" {
		checkInHHMM = defaultCheckInHHMM
	}

	checkOutHHMM := c.CheckOutHHMM
	if checkOutHHMM == "" {
		checkOutHHMM = defaultCheckOutHHMM
	}

	guestNum := c.GuestNum
	if guestNum == 0 {
		guestNum = defaultGuestNum
	}

	return model.Reservation{
		GuestName:    c.GuestName,
		Phone:        c.Phone,
		Email:        c.Email,
		Location:     c.Location,
		GroupDesc:    c.GroupDesc,
		RoomNo:       c.RoomNo,
		GuestNum:     guestNum,
		CheckInYMD:   c.CheckInYMD,
		CheckInHHMM:  checkInHHMM,
		CheckOutYMD:  c.CheckOutYMD,
		CheckOutHHMM: checkOutHHMM,
		Status:       model.StatusBooked,
		Memo:         c.Memo,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `db:"status_cd" json:"status_cd" validate:"required,oneof=S I O"`
}

// Memo is a pointer so an explicit empty string clears the memo while an
// absent field leaves it untouched.
type UpdateMemoRequest struct {
	Memo *string `db:"memo" json:"memo" validate:"omitempty,max=1000"`
}

type ReservationResponse struct {
	Code         string `json:"code"`
	SeqNo        int    `json:"seq_no"`
	GuestName    string `json:"guest_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	GroupDesc    string `json:"group_desc"`
	RoomNo       string `json:"room_no"`
	GuestNum     int    `json:"guest_num"`
	CheckInDate  string `json:"check_in_date"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutDate string `json:"check_out_date"`
	CheckOutTime string `json:"check_out_time"`
	Status       string `json:"status_cd"`
	StatusLabel  string `json:"status_label"`
	StatusColor  string `json:"status_color"`
	Memo         string `json:"memo"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.Code = mod.Code
	r.SeqNo = mod.SeqNo
	r.GuestName = mod.GuestName
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.Location = mod.Location
	r.GroupDesc = mod.GroupDesc
	r.RoomNo = mod.RoomNo
	r.GuestNum = mod.GuestNum
	r.CheckInDate = datecode.FormatYMD(mod.CheckInYMD)
	r.CheckInTime = datecode.FormatHHMM(mod.CheckInHHMM)
	r.CheckOutDate = datecode.FormatYMD(mod.CheckOutYMD)
	r.CheckOutTime = datecode.FormatHHMM(mod.CheckOutHHMM)
	r.Status = mod.Status
	r.StatusLabel = model.StatusLabel(mod.Status)
	r.StatusColor = model.StatusColor(mod.Status)
	r.Memo = mod.Memo
	r.Metadata.FromModel(mod.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
