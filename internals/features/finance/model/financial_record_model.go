package model

import (
	"time"

	"github.com/google/uuid"
)

// Record types.
const (
	RecordTypeIncome  = "income"
	RecordTypeExpense = "expense"
)

type FinancialRecordModel struct {
	FinancialRecordID          uuid.UUID `gorm:"column:financial_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"financial_record_id"`
	FinancialRecordType        string    `gorm:"column:financial_record_type;size:10;not null" json:"financial_record_type"`
	FinancialRecordCategory    string    `gorm:"column:financial_record_category;size:100;not null" json:"financial_record_category"`
	FinancialRecordAmount      float64   `gorm:"column:financial_record_amount;not null" json:"financial_record_amount"`
	FinancialRecordDescription *string   `gorm:"column:financial_record_description;type:text" json:"financial_record_description,omitempty"`
	FinancialRecordDate        time.Time `gorm:"column:financial_record_date;not null;index" json:"financial_record_date"`
	FinancialRecordIsPublic    bool      `gorm:"column:financial_record_is_public;not null;default:false" json:"financial_record_is_public"`
	FinancialRecordChurchID    uuid.UUID `gorm:"column:financial_record_church_id;type:uuid;not null;index" json:"financial_record_church_id"`
	FinancialRecordCreatedBy   uuid.UUID `gorm:"column:financial_record_created_by;type:uuid;not null" json:"financial_record_created_by"`
	FinancialRecordCreatedAt   time.Time `gorm:"column:financial_record_created_at;autoCreateTime" json:"financial_record_created_at"`
	FinancialRecordUpdatedAt   time.Time `gorm:"column:financial_record_updated_at;autoUpdateTime" json:"financial_record_updated_at"`
}

func (FinancialRecordModel) TableName() string {
	return "financial_records"
}
