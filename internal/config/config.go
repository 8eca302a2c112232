// Package config provides YAML-based tuning parameters for the games and the
// terminal panel. Every compiled-in constant of a game lives here so it can
// be adjusted without rebuilding.
package config

import (
	"errors"
	"fmt"
)

// Panel geometry and capacities shared by all games.
const (
	ScreenWidth  = 128
	ScreenPages  = 8
	MaxShots     = 6
	MaxEnemies   = 3
	MaxDigits    = 4
	MaxHealthBar = 10
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func checkLane(what string, lane int) error {
	if lane < 0 || lane >= ScreenPages {
		return invalid("%s lane %d outside 0..%d", what, lane, ScreenPages-1)
	}
	return nil
}

func checkX(what string, x int) error {
	if x < 0 || x >= ScreenWidth {
		return invalid("%s x %d outside 0..%d", what, x, ScreenWidth-1)
	}
	return nil
}

// BeatemConfig contains all configuration for the fighting game.
type BeatemConfig struct {
	Player BeatemPlayer `yaml:"player"`
	Enemy  BeatemEnemy  `yaml:"enemy"`
	Damage BeatemDamage `yaml:"damage"`
	Timing BeatemTiming `yaml:"timing"`
	Score  ScoreConfig  `yaml:"score"`
}

// BeatemPlayer defines the fighter.
type BeatemPlayer struct {
	X            int `yaml:"x"`
	Lane         int `yaml:"lane"`
	Health       int `yaml:"health"`
	AttackFrames int `yaml:"attack_frames"`
	HitFrames    int `yaml:"hit_frames"`
}

// BeatemEnemy defines the approaching opponent. AttackBelow is the shift
// register threshold under which the enemy strikes on a frame without
// player input.
type BeatemEnemy struct {
	SpawnX      int `yaml:"spawn_x"`
	FightX      int `yaml:"fight_x"`
	Health      int `yaml:"health"`
	AttackBelow int `yaml:"attack_below"`
}

// BeatemDamage defines how much health each move takes.
type BeatemDamage struct {
	Punch int `yaml:"punch"`
	Kick  int `yaml:"kick"`
	Enemy int `yaml:"enemy"`
}

// BeatemTiming defines frame pacing.
type BeatemTiming struct {
	FrameMS        int `yaml:"frame_ms"`
	FallFrameTicks int `yaml:"fall_frame_ticks"`
	FallPauseTicks int `yaml:"fall_pause_ticks"`
}

// ScoreConfig defines the on-screen score counter.
type ScoreConfig struct {
	Digits int `yaml:"digits"`
}

// Validate checks ranges and capacities.
func (c BeatemConfig) Validate() error {
	if err := checkX("player", c.Player.X); err != nil {
		return err
	}
	if err := checkLane("player", c.Player.Lane); err != nil {
		return err
	}
	if c.Player.Health <= 0 || c.Player.Health > MaxHealthBar {
		return invalid("player health %d outside 1..%d", c.Player.Health, MaxHealthBar)
	}
	if c.Player.AttackFrames <= 0 || c.Player.HitFrames <= 0 {
		return invalid("attack and hit frames must be positive")
	}
	if err := checkX("enemy spawn", c.Enemy.SpawnX); err != nil {
		return err
	}
	if c.Enemy.FightX <= c.Player.X || c.Enemy.FightX > c.Enemy.SpawnX {
		return invalid("enemy fight x %d must lie in (%d, %d]", c.Enemy.FightX, c.Player.X, c.Enemy.SpawnX)
	}
	if c.Enemy.Health <= 0 {
		return invalid("enemy health must be positive")
	}
	if c.Damage.Punch <= 0 || c.Damage.Kick <= 0 || c.Damage.Enemy <= 0 {
		return invalid("damage must be positive")
	}
	if c.Timing.FrameMS <= 0 {
		return invalid("frame time must be positive")
	}
	return c.Score.validate()
}

func (s ScoreConfig) validate() error {
	if s.Digits <= 0 || s.Digits > MaxDigits {
		return invalid("score digits %d outside 1..%d", s.Digits, MaxDigits)
	}
	return nil
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Player  PlatformerPlayer  `yaml:"player"`
	Shots   PlatformerShots   `yaml:"shots"`
	Enemies PlatformerEnemies `yaml:"enemies"`
	Timing  PlatformerTiming  `yaml:"timing"`
}

// PlatformerPlayer defines the player. StepTicks, a power of two, is how
// many frames pass between one-pixel steps.
type PlatformerPlayer struct {
	StartX    int `yaml:"start_x"`
	StartLane int `yaml:"start_lane"`
	Health    int `yaml:"health"`
	MinX      int `yaml:"min_x"`
	MaxX      int `yaml:"max_x"`
	StepTicks int `yaml:"step_ticks"`
}

// PlatformerShots defines projectiles.
type PlatformerShots struct {
	Capacity        int `yaml:"capacity"`
	Cooldown        int `yaml:"cooldown"`
	Damage          int `yaml:"damage"`
	PlayerTolerance int `yaml:"player_tolerance"`
	EnemyTolerance  int `yaml:"enemy_tolerance"`
}

// PlatformerEnemies defines the enemy roster. FireTicks and DefeatTicks
// are powers of two up to MaxTickPeriod.
type PlatformerEnemies struct {
	Spawns      []EnemySpawn `yaml:"spawns"`
	AttackRange int          `yaml:"attack_range"`
	FireTicks   int          `yaml:"fire_ticks"`
	DefeatTicks int          `yaml:"defeat_ticks"`
	Hits        int          `yaml:"hits"`
}

// EnemySpawn places one enemy.
type EnemySpawn struct {
	X       int  `yaml:"x"`
	Lane    int  `yaml:"lane"`
	Forward bool `yaml:"forward"`
}

// PlatformerTiming defines frame pacing.
type PlatformerTiming struct {
	FrameMS     int `yaml:"frame_ms"`
	LadderTicks int `yaml:"ladder_ticks"`
	DeathTicks  int `yaml:"death_ticks"`
}

// MaxTickPeriod is the largest period the 8-bit time counter can divide.
const MaxTickPeriod = 128

// tickPeriod reports whether n is a power of two the time counter can
// divide evenly.
func tickPeriod(n int) bool {
	return n > 0 && n <= MaxTickPeriod && n&(n-1) == 0
}

// Validate checks ranges and capacities.
func (c PlatformerConfig) Validate() error {
	if err := checkX("player start", c.Player.StartX); err != nil {
		return err
	}
	if err := checkLane("player start", c.Player.StartLane); err != nil {
		return err
	}
	if c.Player.Health <= 0 {
		return invalid("player health must be positive")
	}
	if c.Player.MinX >= c.Player.MaxX {
		return invalid("player min x %d not below max x %d", c.Player.MinX, c.Player.MaxX)
	}
	if !tickPeriod(c.Player.StepTicks) {
		return invalid("step ticks %d is not a power of two up to %d", c.Player.StepTicks, MaxTickPeriod)
	}
	if c.Shots.Capacity <= 0 || c.Shots.Capacity > MaxShots {
		return invalid("shot capacity %d outside 1..%d", c.Shots.Capacity, MaxShots)
	}
	if c.Shots.Damage <= 0 || c.Shots.PlayerTolerance < 0 || c.Shots.EnemyTolerance < 0 {
		return invalid("shot damage must be positive and tolerances non-negative")
	}
	if len(c.Enemies.Spawns) == 0 || len(c.Enemies.Spawns) > MaxEnemies {
		return invalid("%d enemies outside 1..%d", len(c.Enemies.Spawns), MaxEnemies)
	}
	for i, e := range c.Enemies.Spawns {
		if err := checkX(fmt.Sprintf("enemy %d", i), e.X); err != nil {
			return err
		}
		if err := checkLane(fmt.Sprintf("enemy %d", i), e.Lane); err != nil {
			return err
		}
	}
	if !tickPeriod(c.Enemies.FireTicks) || !tickPeriod(c.Enemies.DefeatTicks) {
		return invalid("fire and defeat ticks must be powers of two up to %d", MaxTickPeriod)
	}
	if c.Enemies.Hits <= 0 {
		return invalid("enemy hits must be positive")
	}
	if c.Timing.FrameMS <= 0 || c.Timing.LadderTicks <= 0 || c.Timing.DeathTicks <= 0 {
		return invalid("timing values must be positive")
	}
	return nil
}

// RacingConfig contains all configuration for the racing game.
type RacingConfig struct {
	Car     RacingCar     `yaml:"car"`
	Barrier RacingBarrier `yaml:"barrier"`
	Timing  RacingTiming  `yaml:"timing"`
	Score   ScoreConfig   `yaml:"score"`
}

// RacingCar defines the car movement.
type RacingCar struct {
	Center    int `yaml:"center"`
	MaxOffset int `yaml:"max_offset"`
	LeftSide  int `yaml:"left_side"`
	RightSide int `yaml:"right_side"`
}

// RacingBarrier defines how barriers approach.
type RacingBarrier struct {
	MinIndex    int   `yaml:"min_index"`
	DangerIndex int   `yaml:"danger_index"`
	Step1Until  int   `yaml:"step1_until"`
	Step2Until  int   `yaml:"step2_until"`
	Step4Until  int   `yaml:"step4_until"`
	SideSeed    uint8 `yaml:"side_seed"`
}

// RacingTiming defines the speed-up.
type RacingTiming struct {
	StartFrameMS int `yaml:"start_frame_ms"`
	MinFrameMS   int `yaml:"min_frame_ms"`
	CrashPauseMS int `yaml:"crash_pause_ms"`
}

// Validate checks ranges and capacities.
func (c RacingConfig) Validate() error {
	if err := checkX("car center", c.Car.Center); err != nil {
		return err
	}
	if c.Car.MaxOffset <= 0 || c.Car.Center-c.Car.MaxOffset < 0 || c.Car.Center+c.Car.MaxOffset+12 > ScreenWidth {
		return invalid("car range %d±%d leaves the screen", c.Car.Center, c.Car.MaxOffset)
	}
	if c.Car.LeftSide >= c.Car.RightSide {
		return invalid("left side %d not below right side %d", c.Car.LeftSide, c.Car.RightSide)
	}
	b := c.Barrier
	if !(b.MinIndex > 0 && b.MinIndex < b.Step1Until && b.Step1Until <= b.Step2Until && b.Step2Until <= b.Step4Until) {
		return invalid("barrier steps must increase from min index")
	}
	// index>>5 is the barrier page, which has to stay above the car
	if b.MinIndex < 32 || b.Step4Until+3 >= 192 {
		return invalid("barrier index range %d..%d outside 32..191", b.MinIndex, b.Step4Until+3)
	}
	if b.SideSeed == 0x00 || b.SideSeed == 0xFF {
		return invalid("side seed 0x%02x never changes side", b.SideSeed)
	}
	if c.Timing.StartFrameMS <= 0 || c.Timing.MinFrameMS <= 0 || c.Timing.MinFrameMS > c.Timing.StartFrameMS {
		return invalid("frame times must satisfy 0 < min <= start")
	}
	return c.Score.validate()
}

// PanelConfig controls how the emulated panel is shown in the terminal.
type PanelConfig struct {
	Palette    string `yaml:"palette"`
	Border     bool   `yaml:"border"`
	LatchTicks int    `yaml:"latch_ticks"`
}

// Validate checks ranges.
func (c PanelConfig) Validate() error {
	if c.LatchTicks <= 0 {
		return invalid("latch ticks must be positive")
	}
	return nil
}
