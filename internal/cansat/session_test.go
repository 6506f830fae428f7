package cansat

import (
	"testing"

	"github.com/vovakirdan/cansat-drop/internal/config"
	"github.com/vovakirdan/cansat-drop/internal/core"
)

// recordingDisplay captures what the session reports.
type recordingDisplay struct {
	scores   []int
	finals   []int
	messages []string
}

func (d *recordingDisplay) ShowScore(score int) {
	d.scores = append(d.scores, score)
}

func (d *recordingDisplay) ShowGameOver(finalScore int, message string) {
	d.finals = append(d.finals, finalScore)
	d.messages = append(d.messages, message)
}

func testConfig(obstacles int) config.Config {
	cfg := config.Default()
	cfg.Obstacles.Count = obstacles
	return cfg
}

func newTestSession(t *testing.T, cfg config.Config, d config.Difficulty) (*Session, *Layout, *recordingDisplay) {
	t.Helper()
	layout := NewLayout(cfg)
	display := &recordingDisplay{}
	s, err := NewSession(cfg, layout, display, 42)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.SelectDifficulty(d); err != nil {
		t.Fatalf("SelectDifficulty(%s) failed: %v", d, err)
	}
	return s, layout, display
}

// placeObstacle moves pool member i in both the session and the scene.
func placeObstacle(s *Session, i int, x, y float64) {
	s.obstacles[i].X = x
	s.obstacles[i].Y = y
	s.scene.Place(s.obstacles[i].ID, x, y)
}

func noKeys() core.InputState {
	return core.NewInputState()
}

func TestNewSessionIsIdle(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(3), config.DifficultyAdvanced)

	if s.Status() != StatusIdle {
		t.Errorf("Status() = %v, expected Idle", s.Status())
	}
	if s.Selected() != config.DifficultyAdvanced {
		t.Errorf("Selected() = %v, expected advanced", s.Selected())
	}
	if s.State().Running || s.State().GameOver {
		t.Error("idle session should be neither running nor over")
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.PlayArea.Height = 0
	if _, err := NewSession(cfg, nil, nil, 1); err == nil {
		t.Error("NewSession() with invalid config should fail")
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(config.Default(), nil, nil, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if _, ok := s.Scene().(*Layout); !ok {
		t.Errorf("nil scene should default to *Layout, got %T", s.Scene())
	}
	s.Trigger()
	s.Step(noKeys()) // NopDisplay must not panic
}

func TestStepWhileIdleDoesNothing(t *testing.T) {
	s, _, display := newTestSession(t, testConfig(3), config.DifficultyBeginner)

	result := s.Step(noKeys())
	if result.Status != StatusIdle {
		t.Errorf("Step() while idle status = %v, expected Idle", result.Status)
	}
	if s.Tick() != 0 || len(display.scores) != 0 {
		t.Error("Step() while idle should not advance anything")
	}
}

func TestTriggerStartsRun(t *testing.T) {
	s, layout, display := newTestSession(t, testConfig(3), config.DifficultyBeginner)

	if !s.Trigger() {
		t.Fatal("Trigger() from Idle should start a run")
	}
	if s.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected Running", s.Status())
	}

	p := s.Player()
	if p.Y != 0 || p.Score != 0 || !p.Active || p.Speed != 3 {
		t.Errorf("player = %+v, expected top of area, score 0, active, speed 3", p)
	}
	if p.X != (400-40)/2 {
		t.Errorf("player X = %v, expected centered at 180", p.X)
	}
	if len(s.Obstacles()) != 3 {
		t.Errorf("len(Obstacles()) = %d, expected 3", len(s.Obstacles()))
	}
	if layout.Len() != 4 {
		t.Errorf("scene should hold player + 3 obstacles, got %d", layout.Len())
	}
	if len(display.scores) != 1 || display.scores[0] != 0 {
		t.Errorf("display scores = %v, expected [0]", display.scores)
	}
}

// The first step from the top drifts down by the speed and scores 1.
func TestFirstStepDriftsAndScores(t *testing.T) {
	s, _, display := newTestSession(t, testConfig(3), config.DifficultyBeginner)
	s.Trigger()

	result := s.Step(noKeys())

	if s.Player().Y != 3 {
		t.Errorf("player Y = %v, expected 3", s.Player().Y)
	}
	if result.State.Score != 1 {
		t.Errorf("score = %d, expected 1", result.State.Score)
	}
	if result.Status != StatusRunning {
		t.Errorf("status = %v, expected Running", result.Status)
	}
	if display.scores[len(display.scores)-1] != 1 {
		t.Errorf("last displayed score = %d, expected 1", display.scores[len(display.scores)-1])
	}
}

func TestPureDrift(t *testing.T) {
	for _, d := range config.Difficulties {
		t.Run(string(d), func(t *testing.T) {
			s, _, _ := newTestSession(t, testConfig(0), d)
			s.Trigger()
			speed := s.Player().Speed
			startX := s.Player().X

			for n := 1; float64(n)*speed < 600-40; n++ {
				result := s.Step(noKeys())
				if result.Status != StatusRunning {
					t.Fatalf("step %d ended the run early", n)
				}
				if s.Player().Y != float64(n)*speed {
					t.Fatalf("after %d steps Y = %v, expected %v", n, s.Player().Y, float64(n)*speed)
				}
				if s.Score() != n {
					t.Fatalf("after %d steps score = %d, expected %d", n, s.Score(), n)
				}
				if s.Player().X != startX {
					t.Fatalf("X drifted without input: %v", s.Player().X)
				}
			}
		})
	}
}

// A collision at step k ends the run with the score of step k-1.
func TestCollisionFreezesScore(t *testing.T) {
	s, _, display := newTestSession(t, testConfig(1), config.DifficultyAdvanced)
	var ended []RunSummary
	s.OnRunEnd(func(r RunSummary) { ended = append(ended, r) })
	s.Trigger()

	const k = 10
	for i := 1; i < k; i++ {
		placeObstacle(s, 0, 0, 1000) // keep it out of the way
		if s.Step(noKeys()).Status != StatusRunning {
			t.Fatalf("run ended early at step %d", i)
		}
	}

	// After the next step the player is at Y+5 and the obstacle at oy-5.
	p := s.Player()
	placeObstacle(s, 0, p.X, p.Y+2*p.Speed)

	result := s.Step(noKeys())
	if result.Status != StatusGameOver {
		t.Fatalf("status = %v, expected GameOver", result.Status)
	}
	if result.Reason != EndCollision {
		t.Errorf("reason = %v, expected collision", result.Reason)
	}
	if s.Score() != k-1 {
		t.Errorf("score = %d, expected %d", s.Score(), k-1)
	}
	if s.Player().Active {
		t.Error("player should be inactive after game over")
	}
	if len(display.finals) != 1 || display.finals[0] != k-1 || display.messages[0] != GameOverMessage {
		t.Errorf("game over display = %v %v, expected [%d] [%s]", display.finals, display.messages, k-1, GameOverMessage)
	}
	if len(ended) != 1 || ended[0].Score != k-1 || ended[0].Ticks != k || ended[0].Reason != EndCollision {
		t.Errorf("run end summary = %+v", ended)
	}

	// Restart is armed again.
	if !s.Trigger() {
		t.Error("Trigger() after game over should restart")
	}
}

func TestCollisionOnTouchingEdge(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(1), config.DifficultyBeginner)
	s.Trigger()

	// Player after step: Y 3..43. Obstacle after step: top edge exactly at 43.
	p := s.Player()
	placeObstacle(s, 0, p.X, 43+p.Speed)

	if s.Step(noKeys()).Reason != EndCollision {
		t.Error("touching edges should count as a collision")
	}
}

func TestCollisionStopsStepEarly(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(3), config.DifficultyBeginner)
	s.Trigger()

	p := s.Player()
	placeObstacle(s, 0, p.X, p.Y+2*p.Speed)
	placeObstacle(s, 1, p.X, p.Y+2*p.Speed)

	var ends int
	s.OnRunEnd(func(RunSummary) { ends++ })
	s.Step(noKeys())
	if ends != 1 {
		t.Errorf("run end fired %d times, expected exactly once", ends)
	}
}

// Landing exactly on the floor ends the run.
func TestFloorReachedExactly(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(0), config.DifficultyAdvanced)
	s.Trigger()

	// 560 / 5 = 112 steps to land exactly on the floor line.
	var result StepResult
	for i := 0; i < 112; i++ {
		result = s.Step(noKeys())
	}
	if s.Player().Y != 560 {
		t.Fatalf("player Y = %v, expected 560", s.Player().Y)
	}
	if result.Status != StatusGameOver || result.Reason != EndFloor {
		t.Errorf("result = %+v, expected GameOver by floor", result)
	}
	if s.Score() != 111 {
		t.Errorf("score = %d, expected 111", s.Score())
	}
}

func TestFloorPastLine(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(0), config.DifficultyBeginner)
	s.Trigger()

	// 560 / 3 is not whole; step 187 moves Y from 558 to 561.
	steps := 0
	for s.Status() == StatusRunning {
		s.Step(noKeys())
		steps++
	}
	if steps != 187 {
		t.Errorf("run lasted %d steps, expected 187", steps)
	}
	if s.Reason() != EndFloor || s.Score() != 186 {
		t.Errorf("reason = %v score = %d, expected floor and 186", s.Reason(), s.Score())
	}
}

func TestFloorRegardlessOfObstacles(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(1), config.DifficultyAdvanced)
	s.Trigger()

	for i := 0; i < 111; i++ {
		placeObstacle(s, 0, 0, 2000)
		s.Step(noKeys())
	}
	if s.Status() != StatusRunning {
		t.Fatal("run should still be going before the floor step")
	}
	placeObstacle(s, 0, 0, 2000)
	result := s.Step(noKeys())
	if result.Status != StatusGameOver || result.Reason != EndFloor {
		t.Errorf("result = %+v, expected floor game over", result)
	}
}

// Any key after game over resets the run and respawns the pool.
func TestRestartAfterGameOver(t *testing.T) {
	s, layout, _ := newTestSession(t, testConfig(3), config.DifficultyPro)
	s.Trigger()
	for s.Status() == StatusRunning {
		s.Step(noKeys())
	}
	if s.Score() == 0 {
		t.Fatal("expected a non-zero score before restart")
	}

	if !s.Trigger() {
		t.Fatal("Trigger() after game over should restart")
	}
	if s.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected Running", s.Status())
	}
	if s.Score() != 0 || s.Tick() != 0 || s.Reason() != EndNone {
		t.Errorf("restart should reset score/tick/reason, got %d/%d/%v", s.Score(), s.Tick(), s.Reason())
	}
	if len(s.Obstacles()) != 3 {
		t.Errorf("len(Obstacles()) = %d, expected 3", len(s.Obstacles()))
	}
	if layout.Len() != 4 {
		t.Errorf("scene should hold exactly player + 3 obstacles after restart, got %d", layout.Len())
	}
	if s.Player().Y != 0 {
		t.Errorf("player Y = %v, expected 0", s.Player().Y)
	}
}

func TestTriggerWhileRunningIsIgnored(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(0), config.DifficultyBeginner)
	s.Trigger()
	for i := 0; i < 5; i++ {
		s.Step(noKeys())
	}
	tok := s.Token()

	if s.Trigger() {
		t.Error("Trigger() while running should return false")
	}
	if s.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected Running", s.Status())
	}
	if s.Score() != 5 {
		t.Errorf("score = %d, expected 5 (not reset)", s.Score())
	}
	if s.Token() != tok {
		t.Error("Trigger() while running should not re-arm the loop")
	}
}

func TestDifficultyAppliesNextRun(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(0), config.DifficultyBeginner)
	s.Trigger()

	if err := s.SelectDifficulty(config.DifficultyPro); err != nil {
		t.Fatalf("SelectDifficulty() failed: %v", err)
	}
	s.Step(noKeys())
	if s.Player().Speed != 3 || s.Player().Y != 3 {
		t.Errorf("speed changed mid-run: %+v", s.Player())
	}
	if s.Difficulty() != config.DifficultyBeginner {
		t.Errorf("Difficulty() = %v, expected beginner for the current run", s.Difficulty())
	}

	for s.Status() == StatusRunning {
		s.Step(noKeys())
	}
	s.Trigger()
	if s.Player().Speed != 8 || s.Difficulty() != config.DifficultyPro {
		t.Errorf("next run should use pro speed 8, got %v (%v)", s.Player().Speed, s.Difficulty())
	}
}

func TestSelectUnknownDifficulty(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(0), config.DifficultyBeginner)
	if err := s.SelectDifficulty("nightmare"); err == nil {
		t.Error("SelectDifficulty(unknown) should fail")
	}
	if s.Selected() != config.DifficultyBeginner {
		t.Errorf("failed selection should keep beginner, got %v", s.Selected())
	}
}

func TestLoopTokenLifecycle(t *testing.T) {
	s, _, _ := newTestSession(t, testConfig(0), config.DifficultyPro)
	s.Trigger()
	first := s.Token()
	if !s.Accept(first) {
		t.Fatal("token of the running loop should be accepted")
	}

	for s.Status() == StatusRunning {
		s.Step(noKeys())
	}
	if s.Accept(first) {
		t.Error("ticks after game over should be rejected")
	}

	s.Trigger()
	if s.Accept(first) {
		t.Error("stale token from a previous run should be rejected")
	}
	if !s.Accept(s.Token()) {
		t.Error("new run token should be accepted")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, []Obstacle) {
		cfg := testConfig(3)
		s, err := NewSession(cfg, nil, nil, 12345)
		if err != nil {
			t.Fatal(err)
		}
		s.Trigger()
		steer := SteerZigzag(7)
		for s.Status() == StatusRunning {
			s.Step(steer(s.Tick(), s))
		}
		return s.Score(), s.Obstacles()
	}

	score1, obs1 := run()
	score2, obs2 := run()
	if score1 != score2 {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", score1, score2)
	}
	for i := range obs1 {
		if obs1[i] != obs2[i] {
			t.Errorf("Determinism failed: obstacle %d differs: %+v vs %+v", i, obs1[i], obs2[i])
		}
	}
}

func TestStatusAndReasonStrings(t *testing.T) {
	if StatusGameOver.String() != "GameOver" || Status(9).String() != "Unknown" {
		t.Error("unexpected Status strings")
	}
	if EndFloor.String() != "floor" || EndCollision.String() != "collision" || EndNone.String() != "none" {
		t.Error("unexpected EndReason strings")
	}
}
