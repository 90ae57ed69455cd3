package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/finance/model"
)

type FinancialRecordResponse struct {
	FinancialRecordID          uuid.UUID `json:"financial_record_id"`
	FinancialRecordType        string    `json:"financial_record_type"`
	FinancialRecordCategory    string    `json:"financial_record_category"`
	FinancialRecordAmount      float64   `json:"financial_record_amount"`
	FinancialRecordDescription *string   `json:"financial_record_description,omitempty"`
	FinancialRecordDate        time.Time `json:"financial_record_date"`
	FinancialRecordIsPublic    bool      `json:"financial_record_is_public"`
	FinancialRecordChurchID    uuid.UUID `json:"financial_record_church_id"`
}

func ToFinancialRecordResponse(m model.FinancialRecordModel) FinancialRecordResponse {
	return FinancialRecordResponse{
		FinancialRecordID:          m.FinancialRecordID,
		FinancialRecordType:        m.FinancialRecordType,
		FinancialRecordCategory:    m.FinancialRecordCategory,
		FinancialRecordAmount:      m.FinancialRecordAmount,
		FinancialRecordDescription: m.FinancialRecordDescription,
		FinancialRecordDate:        m.FinancialRecordDate,
		FinancialRecordIsPublic:    m.FinancialRecordIsPublic,
		FinancialRecordChurchID:    m.FinancialRecordChurchID,
	}
}

func ToFinancialRecordResponseList(models []model.FinancialRecordModel) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToFinancialRecordResponse(m))
	}
	return out
}

// FinancialSummary aggregates a set of records.
type FinancialSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

type FinancialRecordCreateRequest struct {
	FinancialRecordType        string  `json:"financial_record_type" validate:"required,oneof=income expense"`
	FinancialRecordCategory    string  `json:"financial_record_category" validate:"required,max=100"`
	FinancialRecordAmount      float64 `json:"financial_record_amount" validate:"required,gt=0"`
	FinancialRecordDescription *string `json:"financial_record_description"`
	FinancialRecordDate        string  `json:"financial_record_date" validate:"required,datetime=2006-01-02"`
	FinancialRecordIsPublic    *bool   `json:"financial_record_is_public"`
	FinancialRecordChurchID    *string `json:"financial_record_church_id" validate:"omitempty,uuid"`
}

type FinancialRecordUpdateRequest struct {
	FinancialRecordType        *string  `json:"financial_record_type" validate:"omitempty,oneof=income expense"`
	FinancialRecordCategory    *string  `json:"financial_record_category" validate:"omitempty,max=100"`
	FinancialRecordAmount      *float64 `json:"financial_record_amount" validate:"omitempty,gt=0"`
	FinancialRecordDescription *string  `json:"financial_record_description"`
	FinancialRecordDate        *string  `json:"financial_record_date" validate:"omitempty,datetime=2006-01-02"`
	FinancialRecordIsPublic    *bool    `json:"financial_record_is_public"`
}
