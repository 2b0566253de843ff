package dto

import (
	"lodge/internal/domains/room/model"
	gDto "lodge/shared/dto"
)

type UpdateRoomStatusRequest struct {
	Status string `db:"status_cd" json:"status_cd" validate:"required,oneof=N C T G"`
}

type RoomResponse struct {
	RoomNo      string `json:"room_no"`
	OrgCd       string `json:"org_cd"`
	Status      string `json:"status_cd"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
	Cleared     bool   `json:"cleared"`
	Equipped    bool   `json:"equipped"`
	Inspected   bool   `json:"inspected"`
	InUse       bool   `json:"in_use"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.RoomNo = mod.RoomNo
	r.OrgCd = mod.OrgCd
	r.Status = mod.Status
	r.StatusLabel = model.StatusLabel(mod.Status)
	r.StatusColor = model.StatusColor(mod.Status)
	r.Cleared = mod.ClearChk == "Y"
	r.Equipped = mod.BipumChk == "Y"
	r.Inspected = mod.InspectChk == "Y"
	r.InUse = mod.Use == "Y"
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
