package dto

import (
	"lodge/internal/domains/vacation/model"
	"lodge/shared/datecode"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateVacationRequest struct {
	RequestDesc string `json:"request_desc" validate:"required,max=500"`
}

func (c *CreateVacationRequest) ToModel(requesterEmail string) model.Vacation {
	return model.Vacation{
		ID:             uuid.NewString(),
		RequesterEmail: requesterEmail,
		RequestYMD:     datecode.TodayYMD(),
		RequestCd:      model.RequestCdVacation,
		RequestDesc:    c.RequestDesc,
		DecisionCd:     model.DecisionPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  requesterEmail,
			ModifiedBy: requesterEmail,
		},
	}
}

type DecideVacationRequest struct {
	Approve      bool   `json:"approve"`
	DecisionDesc string `json:"decision_desc" validate:"omitempty,max=500"`
}

// VacationDecisionUpdate carries the columns written when a pending request
// is decided.
type VacationDecisionUpdate struct {
	ApproverEmail string `db:"approver_email"`
	DecisionYMD   string `db:"decision_ymd"`
	DecisionCd    string `db:"decision_cd"`
	DecisionDesc  string `db:"decision_desc"`
}

type VacationResponse struct {
	ID             string `json:"id"`
	RequesterEmail string `json:"requester_email"`
	RequestDate    string `json:"request_date"`
	RequestDesc    string `json:"request_desc"`
	ApproverEmail  string `json:"approver_email"`
	DecisionDate   string `json:"decision_date"`
	DecisionCd     string `json:"decision_cd"`
	DecisionLabel  string `json:"decision_label"`
	DecisionDesc   string `json:"decision_desc"`
	gDto.Metadata
}

func (r *VacationResponse) FromModel(mod model.Vacation) {
	r.ID = mod.ID
	r.RequesterEmail = mod.RequesterEmail
	r.RequestDate = datecode.FormatYMD(mod.RequestYMD)
	r.RequestDesc = mod.RequestDesc
	r.ApproverEmail = mod.ApproverEmail
	r.DecisionDate = datecode.FormatYMD(mod.DecisionYMD)
	r.DecisionCd = mod.DecisionCd
	r.DecisionLabel = model.DecisionLabel(mod.DecisionCd)
	r.DecisionDesc = mod.DecisionDesc
	r.Metadata.FromModel(mod.Metadata)
}

type GetVacationsResponse struct {
	Vacations []VacationResponse `json:"vacations"`
	TotalData int                `json:"total_data"`
}

func (r *GetVacationsResponse) FromModels(models []model.Vacation) {
	r.TotalData = len(models)

	r.Vacations = make([]VacationResponse, len(models))
	for i, mod := range models {
		r.Vacations[i].FromModel(mod)
	}
}
