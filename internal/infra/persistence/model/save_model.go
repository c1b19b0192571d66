package model

import "time"

// SaveModel mirrors the 'saves' table. Nil pointers are stored as NULL.
type SaveModel struct {
	SaveID              string    `gorm:"column:save_id;type:text;primaryKey"`
	Player              string    `gorm:"column:player;type:text;index"`
	SavedAt             time.Time `gorm:"column:saved_at;not null"`
	Zone                string    `gorm:"column:zone;not null"`
	BunniesKilled       *int      `gorm:"column:bunnies_killed"`
	BotsKilled          *int      `gorm:"column:bots_killed"`
	FinishedHunting     *bool     `gorm:"column:finished_hunting"`
	HuntingInstReceived *bool     `gorm:"column:hunting_inst_received"`
	InvitedHunting      *bool     `gorm:"column:invited_hunting"`
	SlimesKilled        *int      `gorm:"column:slimes_killed"`
	SnakesKilled        *int      `gorm:"column:snakes_killed"`
	TutorialComplete    *bool     `gorm:"column:tutorial_complete"`
	VillageAttackEnded  *bool     `gorm:"column:village_attack_ended"`
	BombCount           *int      `gorm:"column:bomb_count"`
	BroccoliCount       *int      `gorm:"column:broccoli_count"`
	RockCount           *int      `gorm:"column:rock_count"`
	SlimeballCount      *int      `gorm:"column:slimeball_count"`
	SnowballCount       *int      `gorm:"column:snowball_count"`
	SusSnowballCount    *int      `gorm:"column:sus_snowball_count"`
	WaterBalloonCount   *int      `gorm:"column:water_balloon_count"`
	BaconCount          *int      `gorm:"column:bacon_count"`
	BeefCount           *int      `gorm:"column:beef_count"`
	BurgerCount         *int      `gorm:"column:burger_count"`
	ChickenCount        *int      `gorm:"column:chicken_count"`
	EnergyDrinkCount    *int      `gorm:"column:energy_drink_count"`
	HamCount            *int      `gorm:"column:ham_count"`
	SteakCount          *int      `gorm:"column:steak_count"`
	RuneCount           *int      `gorm:"column:rune_count"`
	Action              *string   `gorm:"column:action"`
	AlreadyLanded       *bool     `gorm:"column:already_landed"`
	BBPosX              *float64  `gorm:"column:bb_pos_x"`
	BBPosY              *float64  `gorm:"column:bb_pos_y"`
	BBSizeX             *float64  `gorm:"column:bb_size_x"`
	BBSizeY             *float64  `gorm:"column:bb_size_y"`
	CanDash             *bool     `gorm:"column:can_dash"`
	CanDoubleJump       *bool     `gorm:"column:can_double_jump"`
	DamageMult          *float64  `gorm:"column:damage_mult"`
	DashCooldown        *float64  `gorm:"column:dash_cooldown"`
	DashStop            *float64  `gorm:"column:dash_stop"`
	Facing              *string   `gorm:"column:facing"`
	FirstJumpTimer      *float64  `gorm:"column:first_jump_timer"`
	FirstJumpVel        *float64  `gorm:"column:first_jump_vel"`
	HasDashed           *bool     `gorm:"column:has_dashed"`
	HasDoubleJumped     *bool     `gorm:"column:has_double_jumped"`
	Health              *float64  `gorm:"column:health"`
	IsDashing           *bool     `gorm:"column:is_dashing"`
	IsJumping           *bool     `gorm:"column:is_jumping"`
	IsOnGround          *bool     `gorm:"column:is_on_ground"`
	LBBPosX             *float64  `gorm:"column:lbb_pos_x"`
	LBBPosY             *float64  `gorm:"column:lbb_pos_y"`
	LBBSizeX            *float64  `gorm:"column:lbb_size_x"`
	LBBSizeY            *float64  `gorm:"column:lbb_size_y"`
	MaxHealth           *float64  `gorm:"column:max_health"`
	PosX                *float64  `gorm:"column:pos_x"`
	PosY                *float64  `gorm:"column:pos_y"`
	PrevYOnGround       *float64  `gorm:"column:prev_y_on_ground"`
	ScaleX              *float64  `gorm:"column:scale_x"`
	ScaleY              *float64  `gorm:"column:scale_y"`
	ScaledSizeX         *float64  `gorm:"column:scaled_size_x"`
	ScaledSizeY         *float64  `gorm:"column:scaled_size_y"`
	SecondJumpVel       *float64  `gorm:"column:second_jump_vel"`
	Speed               *float64  `gorm:"column:speed"`
	VelX                *float64  `gorm:"column:vel_x"`
	VelY                *float64  `gorm:"column:vel_y"`
}

// TableName explicitly sets the table name for GORM.
func (SaveModel) TableName() string {
	return "saves"
}

// SaveSummaryModel is the projection used when listing a player's saves.
type SaveSummaryModel struct {
	SaveID    string    `gorm:"column:save_id"`
	SavedAt   time.Time `gorm:"column:saved_at"`
	Zone      string    `gorm:"column:zone"`
	Health    *float64  `gorm:"column:health"`
	RuneCount *int      `gorm:"column:rune_count"`
}
