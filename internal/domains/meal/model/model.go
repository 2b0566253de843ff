package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "meals"
	EntityName = "meal"

	FieldID        = "id"
	FieldRoomNo    = "room_no"
	FieldOrgCd     = "org_cd"
	FieldMealYMD   = "meal_ymd"
	FieldBand      = "band_cd"
	FieldHeadcount = "headcount"
)

// Meal band codes.
const (
	BandMorning = "M"
	BandLunch   = "L"
	BandDinner  = "D"
	BandEtc     = "E"
)

var bandLabels = map[string]string{
	BandMorning: "Breakfast",
	BandLunch:   "Lunch",
	BandDinner:  "Dinner",
	BandEtc:     "Other",
}

func BandLabel(code string) string {
	if label, ok := bandLabels[code]; ok {
		return label
	}

	return "Unknown"
}

// ClassifyBand maps an hour of day to the meal band it falls in.
// Breakfast runs 04-09, lunch 10-14, dinner 15-20, everything else is
// the late band.
func ClassifyBand(hour int) string {
	switch {
	case hour >= 4 && hour < 10:
		return BandMorning
	case hour >= 10 && hour < 15:
		return BandLunch
	case hour >= 15 && hour < 21:
		return BandDinner
	default:
		return BandEtc
	}
}

type Meal struct {
	ID        string `db:"id"`
	RoomNo    string `db:"room_no"`
	OrgCd     string `db:"org_cd"`
	MealYMD   string `db:"meal_ymd"`
	Band      string `db:"band_cd"`
	Headcount int    `db:"headcount"`
	model.Metadata
}
