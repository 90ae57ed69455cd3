package model

import (
	"time"

	"github.com/google/uuid"
)

// SongListModel is a named set list for one service date.
type SongListModel struct {
	SongListID          uuid.UUID `gorm:"column:song_list_id;type:uuid;default:gen_random_uuid();primaryKey" json:"song_list_id"`
	SongListName        string    `gorm:"column:song_list_name;size:150;not null" json:"song_list_name"`
	SongListServiceDate time.Time `gorm:"column:song_list_service_date;not null" json:"song_list_service_date"`
	SongListChurchID    uuid.UUID `gorm:"column:song_list_church_id;type:uuid;not null;index" json:"song_list_church_id"`
	SongListCreatedBy   uuid.UUID `gorm:"column:song_list_created_by;type:uuid;not null" json:"song_list_created_by"`
	SongListCreatedAt   time.Time `gorm:"column:song_list_created_at;autoCreateTime" json:"song_list_created_at"`
	SongListUpdatedAt   time.Time `gorm:"column:song_list_updated_at;autoUpdateTime" json:"song_list_updated_at"`
}

func (SongListModel) TableName() string {
	return "song_lists"
}

// SongListItemModel orders songs inside a list.
// Unique (song_list_item_list_id, song_list_item_position).
type SongListItemModel struct {
	SongListItemID       uuid.UUID `gorm:"column:song_list_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"song_list_item_id"`
	SongListItemListID   uuid.UUID `gorm:"column:song_list_item_list_id;type:uuid;not null;uniqueIndex:uq_song_list_item_position" json:"song_list_item_list_id"`
	SongListItemSongID   uuid.UUID `gorm:"column:song_list_item_song_id;type:uuid;not null" json:"song_list_item_song_id"`
	SongListItemPosition int       `gorm:"column:song_list_item_position;not null;uniqueIndex:uq_song_list_item_position" json:"song_list_item_position"`
	SongListItemNotes    *string   `gorm:"column:song_list_item_notes;type:text" json:"song_list_item_notes,omitempty"`
	SongListItemAddedAt  time.Time `gorm:"column:song_list_item_added_at;autoCreateTime" json:"song_list_item_added_at"`
}

func (SongListItemModel) TableName() string {
	return "song_list_items"
}
