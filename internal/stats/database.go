package stats

import (
	"errors"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// MatchHistory is one user's running record against one opponent type.
type MatchHistory struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"index;not null"`
	OpponentID string `gorm:"index;not null"`
	Wins       int    `gorm:"not null;default:0"`
	Losses     int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DB is a Recorder backed by a relational store.
type DB struct {
	db *gorm.DB
}

// Open connects to the database and migrates the match_history table.
func Open(dsn string) (*DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&MatchHistory{}); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Record upserts the user's counters for this opponent.
func (d *DB) Record(userID, opponentID string, won bool) error {
	if userID == "" {
		return nil
	}
	return d.db.Transaction(func(tx *gorm.DB) error {
		var record MatchHistory
		err := tx.Where("user_id = ? AND opponent_id = ?", userID, opponentID).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = MatchHistory{UserID: userID, OpponentID: opponentID}
		} else if err != nil {
			return err
		}
		if won {
			record.Wins++
		} else {
			record.Losses++
		}
		return tx.Save(&record).Error
	})
}

// UserStats returns the user's totals per opponent.
func (d *DB) UserStats(userID string) ([]OpponentStats, error) {
	var records []MatchHistory
	if err := d.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]OpponentStats, 0, len(records))
	for _, r := range records {
		out = append(out, NewOpponentStats(r.OpponentID, r.Wins, r.Losses))
	}
	return out, nil
}
