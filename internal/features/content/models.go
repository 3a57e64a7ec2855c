// Package content отдаёт витрину платформы: стримы и хайлайты.
// Записи обновляются фоновым воркером; пользовательские балансы
// этот пакет не трогает.
package content

import "time"

// Stream представляет стрим на витрине.
type Stream struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	StreamerName string     `db:"streamer_name" json:"streamerName"`
	ThumbnailURL string     `db:"thumbnail_url" json:"thumbnailUrl"`
	VideoURL     string     `db:"video_url" json:"videoUrl"`
	Game         string     `db:"game" json:"game"`
	IsLive       bool       `db:"is_live" json:"isLive"`
	Views        int        `db:"views" json:"views"`
	StartedAt    *time.Time `db:"started_at" json:"startedAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// Highlight — короткий ролик, привязанный к стриму.
type Highlight struct {
	ID        int64     `db:"id" json:"id"`
	StreamID  int64     `db:"stream_id" json:"streamId"`
	Title     string    `db:"title" json:"title"`
	VideoURL  string    `db:"video_url" json:"videoUrl"`
	Views     int       `db:"views" json:"views"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
