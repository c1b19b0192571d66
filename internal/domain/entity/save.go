package entity

import (
	"time"

	"gameapi/internal/errors"
)

// SaveDocument is one stored game-state snapshot, flattened to the column
// layout of the saves table. It is never mutated after creation.
type SaveDocument struct {
	SaveID              string    `json:"save_id"`
	Player              string    `json:"player"`
	SavedAt             time.Time `json:"saved_at"`
	Zone                string    `json:"zone"`
	BunniesKilled       *int      `json:"bunnies_killed"`
	BotsKilled          *int      `json:"bots_killed"`
	FinishedHunting     *bool     `json:"finished_hunting"`
	HuntingInstReceived *bool     `json:"hunting_inst_received"`
	InvitedHunting      *bool     `json:"invited_hunting"`
	SlimesKilled        *int      `json:"slimes_killed"`
	SnakesKilled        *int      `json:"snakes_killed"`
	TutorialComplete    *bool     `json:"tutorial_complete"`
	VillageAttackEnded  *bool     `json:"village_attack_ended"`
	BombCount           *int      `json:"bomb_count"`
	BroccoliCount       *int      `json:"broccoli_count"`
	RockCount           *int      `json:"rock_count"`
	SlimeballCount      *int      `json:"slimeball_count"`
	SnowballCount       *int      `json:"snowball_count"`
	SusSnowballCount    *int      `json:"sus_snowball_count"`
	WaterBalloonCount   *int      `json:"water_balloon_count"`
	BaconCount          *int      `json:"bacon_count"`
	BeefCount           *int      `json:"beef_count"`
	BurgerCount         *int      `json:"burger_count"`
	ChickenCount        *int      `json:"chicken_count"`
	EnergyDrinkCount    *int      `json:"energy_drink_count"`
	HamCount            *int      `json:"ham_count"`
	SteakCount          *int      `json:"steak_count"`
	RuneCount           *int      `json:"rune_count"`
	Action              *string   `json:"action"`
	AlreadyLanded       *bool     `json:"already_landed"`
	BBPosX              *float64  `json:"bb_pos_x"`
	BBPosY              *float64  `json:"bb_pos_y"`
	BBSizeX             *float64  `json:"bb_size_x"`
	BBSizeY             *float64  `json:"bb_size_y"`
	CanDash             *bool     `json:"can_dash"`
	CanDoubleJump       *bool     `json:"can_double_jump"`
	DamageMult          *float64  `json:"damage_mult"`
	DashCooldown        *float64  `json:"dash_cooldown"`
	DashStop            *float64  `json:"dash_stop"`
	Facing              *string   `json:"facing"`
	FirstJumpTimer      *float64  `json:"first_jump_timer"`
	FirstJumpVel        *float64  `json:"first_jump_vel"`
	HasDashed           *bool     `json:"has_dashed"`
	HasDoubleJumped     *bool     `json:"has_double_jumped"`
	Health              *float64  `json:"health"`
	IsDashing           *bool     `json:"is_dashing"`
	IsJumping           *bool     `json:"is_jumping"`
	IsOnGround          *bool     `json:"is_on_ground"`
	LBBPosX             *float64  `json:"lbb_pos_x"`
	LBBPosY             *float64  `json:"lbb_pos_y"`
	LBBSizeX            *float64  `json:"lbb_size_x"`
	LBBSizeY            *float64  `json:"lbb_size_y"`
	MaxHealth           *float64  `json:"max_health"`
	PosX                *float64  `json:"pos_x"`
	PosY                *float64  `json:"pos_y"`
	PrevYOnGround       *float64  `json:"prev_y_on_ground"`
	ScaleX              *float64  `json:"scale_x"`
	ScaleY              *float64  `json:"scale_y"`
	ScaledSizeX         *float64  `json:"scaled_size_x"`
	ScaledSizeY         *float64  `json:"scaled_size_y"`
	SecondJumpVel       *float64  `json:"second_jump_vel"`
	Speed               *float64  `json:"speed"`
	VelX                *float64  `json:"vel_x"`
	VelY                *float64  `json:"vel_y"`
}

// SaveSummary is the listing projection of a save document.
type SaveSummary struct {
	SaveID    string    `json:"save_id"`
	SavedAt   time.Time `json:"saved_at"`
	Zone      string    `json:"zone"`
	Health    *float64  `json:"health"`
	RuneCount *int      `json:"rune_count"`
}

// Summary returns the listing projection of the document.
func (d *SaveDocument) Summary() *SaveSummary {
	return &SaveSummary{
		SaveID:    d.SaveID,
		SavedAt:   d.SavedAt,
		Zone:      d.Zone,
		Health:    d.Health,
		RuneCount: d.RuneCount,
	}
}

// NewSaveDocument flattens a snapshot into a save document owned by playerID.
// It fails when a section is missing or an inventory bag lacks one of the known item types.
func NewSaveDocument(saveID, playerID string, savedAt time.Time, s *Snapshot) (*SaveDocument, error) {
	if s == nil || s.Chad == nil || s.Inventory == nil || s.Story == nil || s.Zone == nil {
		return nil, errors.New("chad, inventory, story and zone are required")
	}
	if s.Zone.Name == "" {
		return nil, errors.New("zone.name is required")
	}

	ammo, err := ammoCounts(s.Inventory.AmmoBag)
	if err != nil {
		return nil, err
	}
	food, err := foodCounts(s.Inventory.FoodBag)
	if err != nil {
		return nil, err
	}

	chad, story := s.Chad, s.Story

	return &SaveDocument{
		SaveID:              saveID,
		Player:              playerID,
		SavedAt:             savedAt,
		Zone:                s.Zone.Name,
		BunniesKilled:       story.BunniesKilled,
		BotsKilled:          story.BotsKilled,
		FinishedHunting:     story.FinishedHunting,
		HuntingInstReceived: story.HuntingInstructionsReceived,
		InvitedHunting:      story.InvitedHunting,
		SlimesKilled:        story.SlimesKilled,
		SnakesKilled:        story.SnakesKilled,
		TutorialComplete:    story.TutorialComplete,
		VillageAttackEnded:  story.VillageAttackEnded,
		BombCount:           ammo[AmmoBomb],
		BroccoliCount:       ammo[AmmoBroccoli],
		RockCount:           ammo[AmmoRock],
		SlimeballCount:      ammo[AmmoSlimeball],
		SnowballCount:       ammo[AmmoSnowball],
		SusSnowballCount:    ammo[AmmoSusSnowball],
		WaterBalloonCount:   ammo[AmmoWaterBalloon],
		BaconCount:          food[FoodBacon],
		BeefCount:           food[FoodBeef],
		BurgerCount:         food[FoodBurger],
		ChickenCount:        food[FoodChicken],
		EnergyDrinkCount:    food[FoodEnergyDrink],
		HamCount:            food[FoodHam],
		SteakCount:          food[FoodSteak],
		RuneCount:           s.Inventory.Runes,
		Action:              chad.Action,
		AlreadyLanded:       chad.AlreadyLanded,
		BBPosX:              chad.BoundingBox.pos().x(),
		BBPosY:              chad.BoundingBox.pos().y(),
		BBSizeX:             chad.BoundingBox.size().x(),
		BBSizeY:             chad.BoundingBox.size().y(),
		CanDash:             chad.CanDash,
		CanDoubleJump:       chad.CanDoubleJump,
		DamageMult:          chad.DamageMultiplier,
		DashCooldown:        chad.DashCooldownTimer,
		DashStop:            chad.DashStopTimer,
		Facing:              chad.Facing,
		FirstJumpTimer:      chad.FirstJumpTimer,
		FirstJumpVel:        chad.FirstJumpVelocity,
		HasDashed:           chad.HasDashed,
		HasDoubleJumped:     chad.HasDoubleJumped,
		Health:              chad.Health,
		IsDashing:           chad.IsDashing,
		IsJumping:           chad.IsJumping,
		IsOnGround:          chad.IsOnGround,
		LBBPosX:             chad.LastBoundingBox.pos().x(),
		LBBPosY:             chad.LastBoundingBox.pos().y(),
		LBBSizeX:            chad.LastBoundingBox.size().x(),
		LBBSizeY:            chad.LastBoundingBox.size().y(),
		MaxHealth:           chad.MaxHealth,
		PosX:                chad.Pos.x(),
		PosY:                chad.Pos.y(),
		PrevYOnGround:       chad.PrevYPosOnGround,
		ScaleX:              chad.Scale.x(),
		ScaleY:              chad.Scale.y(),
		ScaledSizeX:         chad.ScaledSize.x(),
		ScaledSizeY:         chad.ScaledSize.y(),
		SecondJumpVel:       chad.SecondJumpVelocity,
		Speed:               chad.Speed,
		VelX:                chad.Velocity.x(),
		VelY:                chad.Velocity.y(),
	}, nil
}

var ammoTypes = []string{AmmoBomb, AmmoBroccoli, AmmoRock, AmmoSlimeball, AmmoSnowball, AmmoSusSnowball, AmmoWaterBalloon}

var foodTypes = []int{FoodBacon, FoodBurger, FoodEnergyDrink, FoodSteak, FoodHam, FoodChicken, FoodBeef}

// ammoCounts returns the amount of the first bag entry of every known ammo type.
func ammoCounts(bag []AmmoItem) (map[string]*int, error) {
	counts := make(map[string]*int, len(ammoTypes))
	for _, typ := range ammoTypes {
		found := false
		for _, item := range bag {
			if item.Type == typ {
				counts[typ] = item.Amount
				found = true

				break
			}
		}
		if !found {
			return nil, errors.Errorf("inventory.ammoBag has no %q entry", typ)
		}
	}

	return counts, nil
}

// foodCounts returns the amount of the first bag entry of every known food type.
func foodCounts(bag []FoodItem) (map[int]*int, error) {
	counts := make(map[int]*int, len(foodTypes))
	for _, typ := range foodTypes {
		found := false
		for _, item := range bag {
			if item.Type == typ {
				counts[typ] = item.Amount
				found = true

				break
			}
		}
		if !found {
			return nil, errors.Errorf("inventory.foodBag has no entry of type %d", typ)
		}
	}

	return counts, nil
}
