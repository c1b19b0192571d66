package entity

// Snapshot is the game state sent by the client when the player saves.
// Fields mirror the client's object graph; nullable values are pointers.
type Snapshot struct {
	Chad      *Chad      `json:"chad" validate:"required"`
	Inventory *Inventory `json:"inventory" validate:"required"`
	Story     *Story     `json:"story" validate:"required"`
	Zone      *Zone      `json:"zone" validate:"required"`
}

// Vector is a 2D value such as a position, size, scale or velocity.
type Vector struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// BoundingBox is the player's collision box.
type BoundingBox struct {
	Pos  *Vector `json:"pos" validate:"required"`
	Size *Vector `json:"size" validate:"required"`
}

// Chad is the player character.
type Chad struct {
	Action             *string      `json:"action"`
	AlreadyLanded      *bool        `json:"alreadyLanded"`
	BoundingBox        *BoundingBox `json:"boundingBox" validate:"required"`
	CanDash            *bool        `json:"canDash"`
	CanDoubleJump      *bool        `json:"canDoubleJump"`
	DamageMultiplier   *float64     `json:"damageMultiplier"`
	DashCooldownTimer  *float64     `json:"dashCooldownTimer"`
	DashStopTimer      *float64     `json:"dashStopTimer"`
	Facing             *string      `json:"facing"`
	FirstJumpTimer     *float64     `json:"firstJumpTimer"`
	FirstJumpVelocity  *float64     `json:"firstJumpVelocity" validate:"required"`
	HasDashed          *bool        `json:"hasDashed"`
	HasDoubleJumped    *bool        `json:"hasDoubleJumped"`
	Health             *float64     `json:"health" validate:"required"`
	IsDashing          *bool        `json:"isDashing"`
	IsJumping          *bool        `json:"isJumping"`
	IsOnGround         *bool        `json:"isOnGround"`
	LastBoundingBox    *BoundingBox `json:"lastBoundingBox" validate:"required"`
	MaxHealth          *float64     `json:"maxHealth" validate:"required"`
	Pos                *Vector      `json:"pos" validate:"required"`
	PrevYPosOnGround   *float64     `json:"prevYPosOnGround"`
	Scale              *Vector      `json:"_scale" validate:"omitempty"`
	ScaledSize         *Vector      `json:"scaledSize" validate:"required"`
	SecondJumpVelocity *float64     `json:"secondJumpVelocity" validate:"required"`
	Speed              *float64     `json:"speed"`
	Velocity           *Vector      `json:"velocity" validate:"omitempty"`
}

// AmmoItem is one entry of the ammo bag, keyed by a type name.
type AmmoItem struct {
	Type   string `json:"type"`
	Amount *int   `json:"amount"`
}

// FoodItem is one entry of the food bag, keyed by a numeric type.
type FoodItem struct {
	Type   int  `json:"type"`
	Amount *int `json:"amount"`
}

// Inventory holds the player's consumables.
type Inventory struct {
	AmmoBag []AmmoItem `json:"ammoBag" validate:"required"`
	FoodBag []FoodItem `json:"foodBag" validate:"required"`
	Runes   *int       `json:"runes"`
}

// Story holds quest progress flags and kill counters.
type Story struct {
	BunniesKilled               *int  `json:"bunniesKilled"`
	BotsKilled                  *int  `json:"botsKilled"`
	FinishedHunting             *bool `json:"finishedHunting"`
	HuntingInstructionsReceived *bool `json:"huntingInstructionsReceived"`
	InvitedHunting              *bool `json:"invitedHunting"`
	SlimesKilled                *int  `json:"slimesKilled"`
	SnakesKilled                *int  `json:"snakesKilled"`
	TutorialComplete            *bool `json:"tutorialComplete"`
	VillageAttackEnded          *bool `json:"villageAttackEnded"`
}

// Zone is the area the player saved in.
type Zone struct {
	Name string `json:"name" validate:"required"`
}

// Ammo type names used in the ammo bag.
const (
	AmmoBomb         = "bomb"
	AmmoBroccoli     = "broccoli"
	AmmoRock         = "rock"
	AmmoSlimeball    = "slimeball"
	AmmoSnowball     = "snowball"
	AmmoSusSnowball  = "sus_snowball"
	AmmoWaterBalloon = "water_balloon"
)

// Food type keys used in the food bag.
const (
	FoodBacon       = 0
	FoodBurger      = 1
	FoodEnergyDrink = 2
	FoodSteak       = 3
	FoodHam         = 4
	FoodChicken     = 5
	FoodBeef        = 6
)

func (v *Vector) x() *float64 {
	if v == nil {
		return nil
	}

	return v.X
}

func (v *Vector) y() *float64 {
	if v == nil {
		return nil
	}

	return v.Y
}

func (b *BoundingBox) pos() *Vector {
	if b == nil {
		return nil
	}

	return b.Pos
}

func (b *BoundingBox) size() *Vector {
	if b == nil {
		return nil
	}

	return b.Size
}
