package model

import "time"

// PlayerModel mirrors the 'players' table. PlayerID is generated by the application.
type PlayerModel struct {
	PlayerID string    `gorm:"column:player_id;type:text;primaryKey"`
	Username string    `gorm:"column:username;type:text;unique;not null"`
	Password *string   `gorm:"column:password;type:text"`
	Salt     *string   `gorm:"column:salt;type:text"`
	Email    *string   `gorm:"column:email;type:text;unique"`
	Created  time.Time `gorm:"column:created;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlayerModel) TableName() string {
	return "players"
}
