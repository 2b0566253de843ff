package model

import "lodge/shared/model"

const (
	TableName  = "administrators"
	EntityName = "administrator"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldActive   = "active"
)

type Administrator struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Name     string `db:"name"`
	Password string `db:"password"`
	Role     string `db:"role"`
	Active   bool   `db:"active"`
	model.Metadata
}
