package dto

import (
	"lodge/internal/domains/meal/model"
	"lodge/shared/datecode"
	gDto "lodge/shared/dto"
)

type SubmitMealRequest struct {
	RoomNo    string `json:"room_no"   validate:"required,len=3,numeric"`
	Headcount int    `json:"headcount" validate:"required"`
}

type MealResponse struct {
	ID        string `json:"id"`
	RoomNo    string `json:"room_no"`
	OrgCd     string `json:"org_cd"`
	MealDate  string `json:"meal_date"`
	Band      string `json:"band_cd"`
	BandLabel string `json:"band_label"`
	Headcount int    `json:"headcount"`
	gDto.Metadata
}

func (r *MealResponse) FromModel(mod model.Meal) {
	r.ID = mod.ID
	r.RoomNo = mod.RoomNo
	r.OrgCd = mod.OrgCd
	r.MealDate = datecode.FormatYMD(mod.MealYMD)
	r.Band = mod.Band
	r.BandLabel = model.BandLabel(mod.Band)
	r.Headcount = mod.Headcount
	r.Metadata.FromModel(mod.Metadata)
}

// SubmitMealResponse carries the stored row plus any soft warnings the
// submission produced. Warnings never block the write.
type SubmitMealResponse struct {
	Meal     MealResponse `json:"meal"`
	Warnings []string     `json:"warnings,omitempty"`
}

type GetMealsResponse struct {
	Meals     []MealResponse `json:"meals"`
	TotalData int            `json:"total_data"`
}

func (r *GetMealsResponse) FromModels(models []model.Meal) {
	r.TotalData = len(models)

	r.Meals = make([]MealResponse, len(models))
	for i, mod := range models {
		r.Meals[i].FromModel(mod)
	}
}
