package db

import "time"

// Channel maps channels. Rows come from richer sources (Telegram exports)
// that carry a numeric channel id per post.
type Channel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:text;not null"`
}

func (Channel) TableName() string { return "channels" }

// Game maps games: one row per canonical catalog title.
// clean_title is unique; original_title keeps the first raw string that
// produced the entry.
type Game struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OriginalTitle string    `gorm:"column:original_title;type:text;not null"`
	CleanTitle    string    `gorm:"column:clean_title;type:text;not null;unique"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (Game) TableName() string { return "games" }

// Post maps posts: one structured marketplace advertisement. The id is the
// numeric key extracted from the source text and is the upsert key across
// re-ingestion runs.
type Post struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	Number          *int       `gorm:"column:number;type:integer"`
	Content         string     `gorm:"column:content;type:text;not null"`
	ChannelID       *int64     `gorm:"column:channel_id;type:bigint"`
	Region          *string    `gorm:"column:region;type:text"`
	PricePS4        *int       `gorm:"column:price_ps4;type:integer"`
	PricePS5        *int       `gorm:"column:price_ps5;type:integer"`
	IsPS4Sold       bool       `gorm:"column:is_ps4_sold;not null;default:false"`
	IsPS5Sold       bool       `gorm:"column:is_ps5_sold;not null;default:false"`
	SourceFile      *string    `gorm:"column:source_file;type:text"`
	LastSent        *float64   `gorm:"column:last_sent;type:double precision"`
	MessageID       *string    `gorm:"column:message_id;type:text"`
	FileID          *string    `gorm:"column:file_id;type:text"`
	ParentID        *string    `gorm:"column:parent_id;type:text"`
	OriginalMessage *string    `gorm:"column:original_message;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Post) TableName() string { return "posts" }

// GamePost maps games_posts, the many-to-many junction between the catalog
// and posts. The pair is the primary key.
type GamePost struct {
	GameID int64 `gorm:"column:game_id;type:bigint;primaryKey"`
	PostID int64 `gorm:"column:post_id;type:bigint;primaryKey"`
}

func (GamePost) TableName() string { return "games_posts" }

func autoMigrateModels() []any {
	return []any{
		&Channel{},
		&Game{},
		&Post{},
		&GamePost{},
	}
}
