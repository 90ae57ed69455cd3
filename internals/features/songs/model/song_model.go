package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SongModel struct {
	SongID           uuid.UUID      `gorm:"column:song_id;type:uuid;default:gen_random_uuid();primaryKey" json:"song_id"`
	SongTitle        string         `gorm:"column:song_title;size:255;not null" json:"song_title"`
	SongArtist       *string        `gorm:"column:song_artist;size:150" json:"song_artist,omitempty"`
	SongKeySignature *string        `gorm:"column:song_key_signature;size:10" json:"song_key_signature,omitempty"`
	SongTempo        *int           `gorm:"column:song_tempo" json:"song_tempo,omitempty"`
	SongLyrics       *string        `gorm:"column:song_lyrics;type:text" json:"song_lyrics,omitempty"`
	SongAudioURL     *string        `gorm:"column:song_audio_url;type:text" json:"song_audio_url,omitempty"`
	SongTags         pq.StringArray `gorm:"column:song_tags;type:text[]" json:"song_tags,omitempty"`
	SongChurchID     uuid.UUID      `gorm:"column:song_church_id;type:uuid;not null;index" json:"song_church_id"`
	SongCreatedBy    uuid.UUID      `gorm:"column:song_created_by;type:uuid;not null" json:"song_created_by"`
	SongCreatedAt    time.Time      `gorm:"column:song_created_at;autoCreateTime" json:"song_created_at"`
	SongUpdatedAt    time.Time      `gorm:"column:song_updated_at;autoUpdateTime" json:"song_updated_at"`
}

func (SongModel) TableName() string {
	return "songs"
}
