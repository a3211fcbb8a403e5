package notion

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/themut001/timecard-web-v3/models"
)

// SyncSettingKey is the settings row holding the latest sync summary. Each
// run overwrites it; no history is kept.
const SyncSettingKey = "last_notion_sync"

type SyncResult struct {
	NewTags     int       `json:"newTags"`
	UpdatedTags int       `json:"updatedTags"`
	TotalSynced int       `json:"totalSynced"`
	LastSyncAt  time.Time `json:"lastSyncAt"`
}

type Syncer struct {
	db      *gorm.DB
	service *Service
}

func NewSyncer(db *gorm.DB, service *Service) *Syncer {
	return &Syncer{db: db, service: service}
}

// Run reconciles local tags against the Notion database: create tags that are
// missing, rename the ones that changed, skip the rest. A fetch failure aborts
// the whole run; per-page errors are logged and skipped so one bad row cannot
// sink the batch.
func (s *Syncer) Run(ctx context.Context) (*SyncResult, error) {
	pages, err := s.service.Pages(ctx)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{}
	for _, page := range pages {
		name := TagName(page)
		if name == "" {
			continue
		}
		notionID := string(page.ID)

		var tag models.Tag
		err := s.db.WithContext(ctx).Where("notion_id = ?", notionID).First(&tag).Error
		switch {
		case err == nil:
			if tag.Name != name {
				if err := s.db.WithContext(ctx).Model(&tag).Update("name", name).Error; err != nil {
					log.Printf("notion sync: update tag %q: %v", name, err)
					continue
				}
				res.UpdatedTags++
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			tag = models.Tag{Name: name, NotionID: notionID, IsActive: true}
			if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
				log.Printf("notion sync: create tag %q: %v", name, err)
				continue
			}
			res.NewTags++
		default:
			log.Printf("notion sync: lookup tag %q: %v", name, err)
			continue
		}
		res.TotalSynced++
	}
	res.LastSyncAt = time.Now()

	blob, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	setting := models.Setting{Key: SyncSettingKey, Value: string(blob)}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error; err != nil {
		return nil, err
	}
	return res, nil
}
