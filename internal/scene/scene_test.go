package scene

import (
	"errors"
	"sync"
	"testing"
)

func testScene(t *testing.T) *Scene {
	t.Helper()
	return New(testRegistry(t), Options{Logger: testLogger()})
}

func TestSelectBodyTracks(t *testing.T) {
	s := testScene(t)

	if err := s.SelectBody("b"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.Tick(0.033)

	if got := s.Tracked(); got != "b" {
		t.Errorf("tracked: want b, got %q", got)
	}
	if !s.Paused() {
		t.Error("select should pause the clock")
	}
}

func TestSelectUnknownLeavesTrackingUnchanged(t *testing.T) {
	s := testScene(t)
	if err := s.SelectBody("a"); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.033)

	err := s.SelectBody("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
	s.Tick(0.033)
	if got := s.Tracked(); got != "a" {
		t.Errorf("tracking changed on failed select: %q", got)
	}
}

func TestClearTrackingResumesAndResets(t *testing.T) {
	s := testScene(t)
	if err := s.SelectBody("a"); err != nil {
		t.Fatal(err)
	}
	s.Tick(0.033)

	s.ClearTracking()
	s.Tick(0.033)

	if s.Tracked() != "" {
		t.Errorf("tracking not cleared: %q", s.Tracked())
	}
	if s.Paused() {
		t.Error("clear should resume the clock")
	}

	// The camera animates home and settles on the default state.
	for i := 0; i < DefaultInterpSteps+1; i++ {
		s.Tick(0.033)
	}
	home := CameraState{Position: Vec3{Z: DefaultCamera().Position.Z}}
	if got := s.Camera(); got.Position.Sub(home.Position).Length() > 1e-9 {
		t.Errorf("camera not home after reset: %+v", got.Position)
	}
}

func TestPausedTicksFreezeMotion(t *testing.T) {
	s := testScene(t)
	s.PauseToggle()
	s.Tick(0.033) // applies the pause

	before := s.View()
	for i := 0; i < 100; i++ {
		s.Tick(0.033)
	}
	after := s.View()

	for i := range before.Bodies {
		if before.Bodies[i].Position != after.Bodies[i].Position {
			t.Errorf("%s moved while paused", before.Bodies[i].Name)
		}
	}
}

// Pausing then resuming yields motion identical to an unpaused run of the
// same simulated elapsed time.
func TestResumeMatchesUnpausedRun(t *testing.T) {
	paused := testScene(t)
	straight := testScene(t)

	for i := 0; i < 50; i++ {
		paused.Tick(0.1)
		straight.Tick(0.1)
	}
	paused.PauseToggle()
	paused.Tick(0) // apply pause without advancing either scene
	straight.Tick(0)
	for i := 0; i < 30; i++ {
		paused.Tick(0.1)
	}
	paused.PauseToggle()
	paused.Tick(0)
	straight.Tick(0)
	for i := 0; i < 50; i++ {
		paused.Tick(0.1)
		straight.Tick(0.1)
	}

	pb := paused.View().Bodies
	sb := straight.View().Bodies
	for i := range pb {
		if d := pb[i].Position.Sub(sb[i].Position).Length(); d > 1e-9 {
			t.Errorf("%s: paused run diverged by %v", pb[i].Name, d)
		}
	}
}

func TestCommandQueueDropsWhenFull(t *testing.T) {
	s := New(testRegistry(t), Options{QueueSize: 2, Logger: testLogger()})
	// No ticks in between: the queue fills and the rest are dropped
	// without blocking.
	for i := 0; i < 100; i++ {
		s.SpeedUp()
	}
	s.Tick(0.033)
	want := 1.0 * TimeScaleStep * TimeScaleStep
	if got := s.TimeScale(); got != want {
		t.Errorf("want exactly 2 applied commands (scale %v), got %v", want, got)
	}
}

func TestCommandsSafeFromManyGoroutines(t *testing.T) {
	s := testScene(t)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s.Tick(0.01)
			}
		}
	}()

	var workers sync.WaitGroup
	for i := 0; i < 8; i++ {
		workers.Add(1)
		go func(i int) {
			defer workers.Done()
			for j := 0; j < 100; j++ {
				switch j % 5 {
				case 0:
					_ = s.SelectBody("a")
				case 1:
					s.ClearTracking()
				case 2:
					s.SpeedUp()
				case 3:
					s.ZoomOut()
				default:
					_ = s.View()
				}
			}
		}(i)
	}

	workers.Wait()
	close(stop)
	wg.Wait()

	if !s.Camera().Position.IsFinite() {
		t.Error("camera corrupted by concurrent commands")
	}
}

func TestInfoSnapshot(t *testing.T) {
	reg := NewRegistry()
	b, err := NewBody("Eros", 16.8, 150, 643, Metadata{MetaVelocityKPS: 12.5})
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(mustBody(t, "Bennu", 120, 365)); err != nil {
		t.Fatal(err)
	}
	s := New(reg, Options{Logger: testLogger()})

	info, err := s.Info("Eros")
	if err != nil {
		t.Fatal(err)
	}
	if info.Velocity != "12.50 km/s" {
		t.Errorf("velocity: got %q", info.Velocity)
	}
	if info.Distance != 150 {
		t.Errorf("distance: got %v", info.Distance)
	}

	// Missing metadata renders the explicit marker, never an error.
	info, err = s.Info("Bennu")
	if err != nil {
		t.Fatal(err)
	}
	if info.Velocity != NotAvailable {
		t.Errorf("want %q, got %q", NotAvailable, info.Velocity)
	}

	if _, err := s.Info("Ceres"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}
