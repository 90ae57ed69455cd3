package churches

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/churches/model"
)

type ChurchSeed struct {
	ChurchName               string          `json:"church_name"`
	ChurchSlug               string          `json:"church_slug"`
	ChurchAddress            string          `json:"church_address"`
	ChurchServiceTimes       json.RawMessage `json:"church_service_times"`
	ChurchGivingInstructions string          `json:"church_giving_instructions"`
}

// SeedChurchesFromJSON inserts churches from a seed file, skipping any
// slug that already exists.
func SeedChurchesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading church seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var seeds []ChurchSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, s := range seeds {
		var existing model.ChurchModel
		if err := db.Where("church_slug = ?", s.ChurchSlug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Church with slug %s already exists, skipping", s.ChurchSlug)
			continue
		}

		church := model.ChurchModel{
			ChurchName:         s.ChurchName,
			ChurchSlug:         s.ChurchSlug,
			ChurchServiceTimes: datatypes.JSON(s.ChurchServiceTimes),
		}
		if s.ChurchAddress != "" {
			church.ChurchAddress = &s.ChurchAddress
		}
		if s.ChurchGivingInstructions != "" {
			church.ChurchGivingInstructions = &s.ChurchGivingInstructions
		}

		if err := db.Create(&church).Error; err != nil {
			log.Printf("❌ Failed to insert church %s: %v", s.ChurchSlug, err)
		} else {
			log.Printf("✅ Inserted church %s (%s)", church.ChurchName, church.ChurchSlug)
		}
	}
}
