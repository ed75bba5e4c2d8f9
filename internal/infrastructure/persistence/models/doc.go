// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// to maintain Clean Architecture principles.
package models

// All returns every model that belongs to the schema, in migration order
func All() []any {
	return []any{
		&ClientModel{},
		&EmployeeModel{},
		&MailHandleModel{},
		&ConversationModel{},
		&ParticipantModel{},
		&MessageModel{},
		&TaskModel{},
		&BudgetModel{},
		&TransactionModel{},
		&PaycheckModel{},
		&PurchaseModel{},
		&GameSaveModel{},
	}
}
