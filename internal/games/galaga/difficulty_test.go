package galaga

import (
	"testing"

	"github.com/vovakirdan/tui-galaga/internal/config"
)

func TestFormationRows(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 3}, {2, 3}, {3, 4}, {4, 4}, {5, 5}, {7, 6}, {9, 6},
	}
	for _, tt := range tests {
		if got := FormationRows(tt.level); got != tt.want {
			t.Errorf("FormationRows(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestSpawnFormationLevelOne(t *testing.T) {
	enemies := spawnFormation(1)
	if len(enemies) != 24 {
		t.Fatalf("level 1 spawned %d enemies, want 24", len(enemies))
	}
	for i, e := range enemies {
		if e.Kind != EnemyBasic {
			t.Errorf("enemy %d is %v, want basic", i, e.Kind)
		}
		if e.HP != 1 {
			t.Errorf("enemy %d hp = %d, want 1", i, e.HP)
		}
	}
	first, last := enemies[0], enemies[len(enemies)-1]
	if first.X != 50 || first.Y != 50 {
		t.Errorf("first slot at (%v,%v), want (50,50)", first.X, first.Y)
	}
	if last.X != 50+7*45 || last.Y != 50+2*35 {
		t.Errorf("last slot at (%v,%v), want (365,120)", last.X, last.Y)
	}
}

func TestSpawnFormationLevelFour(t *testing.T) {
	enemies := spawnFormation(4)
	if len(enemies) != 4*FormationCols {
		t.Fatalf("level 4 spawned %d enemies, want %d", len(enemies), 4*FormationCols)
	}
	for i, e := range enemies {
		row, col := i/FormationCols, i%FormationCols
		want := EnemyBasic
		switch {
		case row == 0:
			want = EnemyTank
		case row == 3 && col%2 == 0:
			want = EnemyShooter
		}
		if e.Kind != want {
			t.Errorf("slot (%d,%d) = %v, want %v", row, col, e.Kind, want)
		}
		if e.HP != traitsOf(want).HP {
			t.Errorf("slot (%d,%d) hp = %d", row, col, e.HP)
		}
	}
}

func TestSpawnFormationBossLevel(t *testing.T) {
	if enemies := spawnFormation(BossLevel); len(enemies) != 0 {
		t.Errorf("boss level spawned %d enemies", len(enemies))
	}
}

func TestMaxWaves(t *testing.T) {
	if MaxWaves(4) != 2 || MaxWaves(5) != 3 {
		t.Errorf("MaxWaves(4,5) = %d,%d, want 2,3", MaxWaves(4), MaxWaves(5))
	}
}

func TestEnemySpeedMonotonicAndCapped(t *testing.T) {
	cfg := config.DefaultGalagaConfig().Enemies
	prev := 0.0
	for level := 1; level < BossLevel; level++ {
		s := EnemySpeed(level, cfg)
		if s < prev {
			t.Errorf("speed dropped at level %d: %v < %v", level, s, prev)
		}
		if s > cfg.MaxSpeed {
			t.Errorf("speed %v exceeds cap at level %d", s, level)
		}
		prev = s
	}
	if got := EnemySpeed(1, cfg); got != 2 {
		t.Errorf("EnemySpeed(1) = %v, want 2", got)
	}
	if got := EnemySpeed(9, cfg); got != 5 {
		t.Errorf("EnemySpeed(9) = %v, want 5", got)
	}
}

func TestDiveProbability(t *testing.T) {
	cfg := config.DefaultGalagaConfig().Enemies
	if DiveProbability(1, 0, cfg) != 0 {
		t.Error("empty formation should never dive")
	}
	full := DiveProbability(1, 24, cfg)
	sparse := DiveProbability(1, 3, cfg)
	if sparse <= full {
		t.Errorf("sparse formation should dive more: %v <= %v", sparse, full)
	}
	if DiveProbability(5, 24, cfg) <= full {
		t.Error("higher level should dive more")
	}
}

func TestMaxDivers(t *testing.T) {
	tests := []struct{ level, want int }{{1, 1}, {2, 2}, {5, 3}, {8, 5}, {9, 5}}
	for _, tt := range tests {
		if got := MaxDivers(tt.level); got != tt.want {
			t.Errorf("MaxDivers(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		hp   int
		want BossPhase
	}{
		{80, BossPhase1}, {53, BossPhase1}, {52, BossPhase2},
		{27, BossPhase2}, {26, BossPhase3}, {1, BossPhase3}, {0, BossPhase3},
	}
	for _, tt := range tests {
		if got := PhaseFor(tt.hp, 80); got != tt.want {
			t.Errorf("PhaseFor(%d, 80) = %v, want %v", tt.hp, got, tt.want)
		}
	}
}

func TestBossPatternEscalates(t *testing.T) {
	p1, p2, p3 := BossPattern(BossPhase1), BossPattern(BossPhase2), BossPattern(BossPhase3)
	if len(p1.Angles) != 1 || len(p2.Angles) != 3 || len(p3.Angles) != 5 {
		t.Errorf("volley sizes = %d,%d,%d, want 1,3,5", len(p1.Angles), len(p2.Angles), len(p3.Angles))
	}
	if !(p1.Speed < p2.Speed && p2.Speed < p3.Speed) {
		t.Error("boss speed should rise with each phase")
	}
	if !(p1.Cooldown > p2.Cooldown && p2.Cooldown > p3.Cooldown) {
		t.Error("boss cooldown should shrink with each phase")
	}
	if p3.Jitter == 0 {
		t.Error("phase 3 should jitter")
	}
}

func TestPlayerShotPattern(t *testing.T) {
	if n := len(PlayerShotPattern(1, false)); n != 1 {
		t.Errorf("level 1 volley = %d bullets, want 1", n)
	}
	if n := len(PlayerShotPattern(3, false)); n != 2 {
		t.Errorf("level 3 volley = %d bullets, want 2", n)
	}
	spread := PlayerShotPattern(1, true)
	if len(spread) != 3 {
		t.Fatalf("rapid volley = %d bullets, want 3", len(spread))
	}
	if spread[1].VX != -2 || spread[2].VX != 2 {
		t.Errorf("spread vx = %v,%v, want -2,2", spread[1].VX, spread[2].VX)
	}
}
