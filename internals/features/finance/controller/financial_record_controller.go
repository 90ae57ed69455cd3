package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	churchModel "gerejaku_backend/internals/features/churches/model"
	"gerejaku_backend/internals/features/finance/dto"
	"gerejaku_backend/internals/features/finance/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

var validate = validator.New()

const recordDateLayout = "2006-01-02"

type FinancialRecordController struct {
	DB *gorm.DB
}

func NewFinancialRecordController(db *gorm.DB) *FinancialRecordController {
	return &FinancialRecordController{DB: db}
}

type summaryRow struct {
	FinancialRecordType string  `gorm:"column:financial_record_type"`
	Total               float64 `gorm:"column:total"`
}

func summarize(q *gorm.DB) dto.FinancialSummary {
	var rows []summaryRow
	if err := q.
		Select("financial_record_type, COALESCE(SUM(financial_record_amount), 0) AS total").
		Group("financial_record_type").
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] summarize financial records failed: %v", err)
		return dto.FinancialSummary{}
	}

	var s dto.FinancialSummary
	for _, r := range rows {
		switch r.FinancialRecordType {
		case model.RecordTypeIncome:
			s.TotalIncome = r.Total
		case model.RecordTypeExpense:
			s.TotalExpense = r.Total
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

// 🟢 GET /api/public/churches/:slug/financial-records
// Transparency page: only records the church marked public, plus their
// summary. Read failures degrade to an empty payload.
func (ctrl *FinancialRecordController) GetPublicRecords(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var church churchModel.ChurchModel
	if err := ctrl.DB.First(&church, "church_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Church not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load church")
	}

	base := ctrl.DB.Model(&model.FinancialRecordModel{}).
		Where("financial_record_church_id = ? AND financial_record_is_public = TRUE", church.ChurchID)

	var records []model.FinancialRecordModel
	if err := base.Session(&gorm.Session{}).
		Order("financial_record_date DESC").
		Limit(100).
		Find(&records).Error; err != nil {
		log.Printf("[ERROR] list public financial records failed: %v", err)
		records = nil
	}

	return helper.Success(c, "OK", fiber.Map{
		"records": dto.ToFinancialRecordResponseList(records),
		"summary": summarize(base.Session(&gorm.Session{})),
	})
}

// 🟢 GET /api/a/financial-records (pastor|admin)
// Filters: ?type=, ?from=, ?to= (record date range), admin ?church_id=.
func (ctrl *FinancialRecordController) GetRecords(c *fiber.Ctx) error {
	uc := authMiddleware.UserChurchFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.FinancialRecordModel{}), "financial_record_church_id", uc, helperAuth.SelectedChurchID(c))
	if err != nil {
		return err
	}

	if typ := c.Query("type"); typ != "" {
		q = q.Where("financial_record_type = ?", typ)
	}
	if from := c.Query("from"); from != "" {
		if t, perr := time.Parse(recordDateLayout, from); perr == nil {
			q = q.Where("financial_record_date >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, perr := time.Parse(recordDateLayout, to); perr == nil {
			q = q.Where("financial_record_date <= ?", t)
		}
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count financial records failed: %v", err)
		total = 0
	}

	var records []model.FinancialRecordModel
	if err := q.Session(&gorm.Session{}).
		Order("financial_record_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		log.Printf("[ERROR] list financial records failed: %v", err)
		records = nil
	}

	return helper.Success(c, "OK", fiber.Map{
		"records":    dto.ToFinancialRecordResponseList(records),
		"summary":    summarize(q.Session(&gorm.Session{})),
		"pagination": helper.BuildPagination(paging, total, len(records)),
	})
}

// 🟢 POST /api/a/financial-records (pastor|admin)
func (ctrl *FinancialRecordController) CreateRecord(c *fiber.Ctx) error {
	var in dto.FinancialRecordCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var selected *uuid.UUID
	if in.FinancialRecordChurchID != nil {
		id, perr := uuid.Parse(*in.FinancialRecordChurchID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid financial_record_church_id")
		}
		selected = &id
	}
	churchID, err := helperAuth.WriteChurchID(uc, selected)
	if err != nil {
		return err
	}

	recordDate, err := time.Parse(recordDateLayout, in.FinancialRecordDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "financial_record_date must be YYYY-MM-DD")
	}

	record := model.FinancialRecordModel{
		FinancialRecordType:        in.FinancialRecordType,
		FinancialRecordCategory:    in.FinancialRecordCategory,
		FinancialRecordAmount:      in.FinancialRecordAmount,
		FinancialRecordDescription: in.FinancialRecordDescription,
		FinancialRecordDate:        recordDate,
		FinancialRecordChurchID:    churchID,
		FinancialRecordCreatedBy:   userID,
	}
	if in.FinancialRecordIsPublic != nil {
		record.FinancialRecordIsPublic = *in.FinancialRecordIsPublic
	}
	if err := ctrl.DB.Create(&record).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create financial record")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Financial record created", dto.ToFinancialRecordResponse(record))
}

func (ctrl *FinancialRecordController) loadScopedRecord(c *fiber.Ctx) (*model.FinancialRecordModel, error) {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid record id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.FinancialRecordModel{}), "financial_record_church_id", uc, nil)
	if err != nil {
		return nil, err
	}

	var record model.FinancialRecordModel
	if err := q.First(&record, "financial_record_id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Financial record not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load financial record")
	}
	return &record, nil
}

// 🟢 PUT /api/a/financial-records/:id (pastor|admin)
func (ctrl *FinancialRecordController) UpdateRecord(c *fiber.Ctx) error {
	record, err := ctrl.loadScopedRecord(c)
	if err != nil {
		return err
	}

	var in dto.FinancialRecordUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if in.FinancialRecordType != nil {
		updates["financial_record_type"] = *in.FinancialRecordType
	}
	if in.FinancialRecordCategory != nil {
		updates["financial_record_category"] = *in.FinancialRecordCategory
	}
	if in.FinancialRecordAmount != nil {
		updates["financial_record_amount"] = *in.FinancialRecordAmount
	}
	if in.FinancialRecordDescription != nil {
		updates["financial_record_description"] = *in.FinancialRecordDescription
	}
	if in.FinancialRecordDate != nil {
		parsed, perr := time.Parse(recordDateLayout, *in.FinancialRecordDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "financial_record_date must be YYYY-MM-DD")
		}
		updates["financial_record_date"] = parsed
	}
	if in.FinancialRecordIsPublic != nil {
		updates["financial_record_is_public"] = *in.FinancialRecordIsPublic
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(record).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update financial record")
	}
	return helper.Success(c, "Financial record updated", dto.ToFinancialRecordResponse(*record))
}

// 🟢 DELETE /api/a/financial-records/:id (pastor|admin)
func (ctrl *FinancialRecordController) DeleteRecord(c *fiber.Ctx) error {
	record, err := ctrl.loadScopedRecord(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.FinancialRecordModel{}, "financial_record_id = ?", record.FinancialRecordID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete financial record")
	}
	return helper.Success(c, "Financial record deleted", nil)
}
