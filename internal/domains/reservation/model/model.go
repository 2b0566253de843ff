package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldCode         = "code"
	FieldSeqNo        = "seq_no"
	FieldGuestName    = "guest_name"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldLocation     = "location"
	FieldGroupDesc    = "group_desc"
	FieldRoomNo       = "room_no"
	FieldGuestNum     = "guest_num"
	FieldCheckInYMD   = "check_in_ymd"
	FieldCheckInHHMM  = "check_in_hhmm"
	FieldCheckOutYMD  = "check_out_ymd"
	FieldCheckOutHHMM = "check_out_hhmm"
	FieldStatus       = "status_cd"
	FieldMemo         = "memo"
)

// Reservation status codes.
const (
	StatusBooked     = "S"
	StatusInHouse    = "I"
	StatusCheckedOut = "O"
)

// Stays counted as occupying a room right now.
var ActiveStatuses = []string{StatusBooked, StatusInHouse}

// AllStatuses lists every known reservation status code.
var AllStatuses = []string{StatusBooked, StatusInHouse, StatusCheckedOut}

type statusMeta struct {
	label string
	color string
}

var statusTable = map[string]statusMeta{
	StatusBooked:     {label: "Booked", color: "blue"},
	StatusInHouse:    {label: "In-House", color: "green"},
	StatusCheckedOut: {label: "Checked-Out", color: "gray"},
}

// StatusLabel returns the display label for a status code. Codes outside
// the vocabulary get an explicit unknown label instead of an empty string.
func StatusLabel(code string) string {
	if meta, ok := statusTable[code]; ok {
		return meta.label
	}

	return "Unknown"
}

// StatusColor returns the display color for a status code.
func StatusColor(code string) string {
	if meta, ok := statusTable[code]; ok {
		return meta.color
	}

	return "gray"
}

// ValidStatus reports whether code belongs to the reservation vocabulary.
func ValidStatus(code string) bool {
	_, ok := statusTable[code]

	return ok
}

type Reservation struct {
	Code         string `db:"code"`
	SeqNo        int    `db:"seq_no"`
	GuestName    string `db:"guest_name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	Location     string `db:"location"`
	GroupDesc    string `db:"group_desc"`
	RoomNo       string `db:"room_no"`
	GuestNum     int    `db:"guest_num"`
	CheckInYMD   string `db:"check_in_ymd"`
	CheckInHHMM  string `db:"check_in_hhmm"`
	CheckOutYMD  string `db:"check_out_ymd"`
	CheckOutHHMM string `db:"check_out_hhmm"`
	Status       string `db:"status_cd"`
	Memo         string `db:"memo"`
	model.Metadata
}
