package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNo     = "room_no"
	FieldOrgCd      = "org_cd"
	FieldStatus     = "status_cd"
	FieldClearChk   = "clear_chk_yn"
	FieldBipumChk   = "bipum_chk_yn"
	FieldInspectChk = "insp_chk_yn"
	FieldUse        = "use_yn"
)

// Housekeeping status codes. A room moves N (cleaning in progress),
// C (cleaned), T (set), G (inspected).
const (
	StatusCleaning  = "N"
	StatusCleaned   = "C"
	StatusSet       = "T"
	StatusInspected = "G"
)

var AllStatuses = []string{StatusCleaning, StatusCleaned, StatusSet, StatusInspected}

type statusMeta struct {
	label string
	color string
}

var statusTable = map[string]statusMeta{
	StatusCleaning:  {label: "Cleaning", color: "yellow"},
	StatusCleaned:   {label: "Cleaned", color: "green"},
	StatusSet:       {label: "Set", color: "purple"},
	StatusInspected: {label: "Inspected", color: "indigo"},
}

// StatusLabel resolves a housekeeping code to its display label. Unknown
// codes fall back to an explicit unknown label, same as the reservation
// vocabulary.
func StatusLabel(code string) string {
	if meta, ok := statusTable[code]; ok {
		return meta.label
	}

	return "Unknown"
}

func StatusColor(code string) string {
	if meta, ok := statusTable[code]; ok {
		return meta.color
	}

	return "gray"
}

func ValidStatus(code string) bool {
	_, ok := statusTable[code]

	return ok
}

type Room struct {
	RoomNo     string `db:"room_no"`
	OrgCd      string `db:"org_cd"`
	Status     string `db:"status_cd"`
	ClearChk   string `db:"clear_chk_yn"`
	BipumChk   string `db:"bipum_chk_yn"`
	InspectChk string `db:"insp_chk_yn"`
	Use        string `db:"use_yn"`
	model.Metadata
}
