package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "vacation_requests"
	EntityName = "vacation"

	FieldID             = "id"
	FieldRequesterEmail = "requester_email"
	FieldRequestYMD     = "request_ymd"
	FieldRequestCd      = "request_cd"
	FieldRequestDesc    = "request_desc"
	FieldApproverEmail  = "approver_email"
	FieldDecisionYMD    = "decision_ymd"
	FieldDecisionCd     = "decision_cd"
	FieldDecisionDesc   = "decision_desc"
)

// RequestCdVacation is the only request kind this table carries today.
const RequestCdVacation = "VC"

// Decision codes.
const (
	DecisionPending  = "W"
	DecisionApproved = "S"
	DecisionRejected = "C"
)

var decisionLabels = map[string]string{
	DecisionPending:  "Pending",
	DecisionApproved: "Approved",
	DecisionRejected: "Rejected",
}

func DecisionLabel(code string) string {
	if label, ok := decisionLabels[code]; ok {
		return label
	}

	return "Unknown"
}

type Vacation struct {
	ID             string `db:"id"`
	RequesterEmail string `db:"requester_email"`
	RequestYMD     string `db:"request_ymd"`
	RequestCd      string `db:"request_cd"`
	RequestDesc    string `db:"request_desc"`
	ApproverEmail  string `db:"approver_email"`
	DecisionYMD    string `db:"decision_ymd"`
	DecisionCd     string `db:"decision_cd"`
	DecisionDesc   string `db:"decision_desc"`
	model.Metadata
}
