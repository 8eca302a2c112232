package config

import (
	_ "embed"
)

//go:embed defaults/beatem.yaml
var defaultBeatemYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/racing.yaml
var defaultRacingYAML []byte

//go:embed defaults/panel.yaml
var defaultPanelYAML []byte

// DefaultBeatemConfig returns the default fighting game configuration.
func DefaultBeatemConfig() BeatemConfig {
	return BeatemConfig{
		Player: BeatemPlayer{
			X:            43,
			Lane:         4,
			Health:       10,
			AttackFrames: 6,
			HitFrames:    6,
		},
		Enemy: BeatemEnemy{
			SpawnX:      100,
			FightX:      50,
			Health:      3,
			AttackBelow: 20,
		},
		Damage: BeatemDamage{
			Punch: 1,
			Kick:  3,
			Enemy: 1,
		},
		Timing: BeatemTiming{
			FrameMS:        10,
			FallFrameTicks: 20,
			FallPauseTicks: 40,
		},
		Score: ScoreConfig{Digits: 2},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Player: PlatformerPlayer{
			StartX:    6,
			StartLane: 6,
			Health:    6,
			MinX:      16,
			MaxX:      112,
			StepTicks: 4,
		},
		Shots: PlatformerShots{
			Capacity:        6,
			Cooldown:        16,
			Damage:          2,
			PlayerTolerance: 1,
			EnemyTolerance:  0,
		},
		Enemies: PlatformerEnemies{
			Spawns: []EnemySpawn{
				{X: 101, Lane: 2},
				{X: 37, Lane: 4, Forward: true},
				{X: 85, Lane: 6},
			},
			AttackRange: 60,
			FireTicks:   32,
			DefeatTicks: 8,
			Hits:        2,
		},
		Timing: PlatformerTiming{
			FrameMS:     13,
			LadderTicks: 14,
			DeathTicks:  40,
		},
	}
}

// DefaultRacingConfig returns the default racing configuration.
func DefaultRacingConfig() RacingConfig {
	return RacingConfig{
		Car: RacingCar{
			Center:    58,
			MaxOffset: 12,
			LeftSide:  54,
			RightSide: 62,
		},
		Barrier: RacingBarrier{
			MinIndex:    32,
			DangerIndex: 152,
			Step1Until:  64,
			Step2Until:  96,
			Step4Until:  176,
			SideSeed:    0xD2,
		},
		Timing: RacingTiming{
			StartFrameMS: 30,
			MinFrameMS:   1,
			CrashPauseMS: 2500,
		},
		Score: ScoreConfig{Digits: 3},
	}
}

// DefaultPanelConfig returns the default terminal panel configuration.
func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		Palette:    "twotone",
		Border:     true,
		LatchTicks: 8,
	}
}
