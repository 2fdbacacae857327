// ecs-stress churns a fixed-capacity store: slots are allocated and freed
// every frame through Commands while a movement system integrates the rest.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/towerclimb/ecs"
	"github.com/plus3/towerclimb/game"
)

var masks = []ecs.Mask{
	ecs.MaskPosition,
	ecs.MaskMovable,
	ecs.MaskRenderable,
	ecs.MaskRenderable | ecs.MaskVelocity,
	ecs.MaskPlayer,
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	capacity := flag.Int("capacity", 10000, "Number of slots in the store.")
	fill := flag.Float64("fill", 0.5, "Fraction of slots occupied before the run starts.")
	churn := flag.Int("churn", 100, "Slots freed and allocated per frame.")
	seed := flag.Int64("seed", 1, "RNG seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ecs-stress", ReportTimestamp: true})
	rng := rand.New(rand.NewSource(*seed))

	store := ecs.NewStore(*capacity)
	initial := int(float64(*capacity) * *fill)
	logger.Info("populating store", "slots", initial, "capacity", *capacity)
	for i := 0; i < initial; i++ {
		spawn(store, rng)
	}

	clock := ecs.NewClock(time.Now())
	scheduler := ecs.NewScheduler(store, clock)
	churner := &churnSystem{rng: rng, perFrame: *churn}
	scheduler.Register(churner)
	scheduler.Register(&game.MovementSystem{})

	report := &Report{
		Duration:       *duration,
		Capacity:       *capacity,
		Initial:        initial,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			clock.Tick(time.Now())

			frameStart := time.Now()
			if err := scheduler.Once(); err != nil {
				report.FailedFrames++
				logger.Debug("frame failed", "err", err)
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(frameStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	report.Allocated = churner.allocated
	report.Freed = churner.freed
	report.Stats = store.CollectStats()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", "err", err)
	}
	fmt.Println()
}

func spawn(store *ecs.Store, rng *rand.Rand) (ecs.Entity, error) {
	e, err := store.Allocate(masks[rng.Intn(len(masks))])
	if err != nil {
		return e, err
	}
	initSlot(store, e, rng)
	return e, nil
}

func initSlot(store *ecs.Store, e ecs.Entity, rng *rand.Rand) {
	*store.Position(e) = ecs.Vec3{X: rng.Float32() * 800, Y: rng.Float32() * 600}
	*store.Velocity(e) = ecs.Velocity{Acceleration: ecs.Vec3{X: rng.Float32() - 0.5, Y: rng.Float32() - 0.5}}
}

// churnSystem frees random occupied slots and queues the same number of
// allocations for the end of the frame.
type churnSystem struct {
	rng       *rand.Rand
	perFrame  int
	allocated int64
	freed     int64
}

func (s *churnSystem) Execute(frame *ecs.UpdateFrame) error {
	store := frame.Store
	for i := 0; i < s.perFrame; i++ {
		e := ecs.Entity(s.rng.Intn(store.Cap()))
		if store.Alive(e) {
			frame.Commands.Free(e)
			s.freed++
		}

		mask := masks[s.rng.Intn(len(masks))]
		frame.Commands.Allocate(mask, func(store *ecs.Store, e ecs.Entity) {
			initSlot(store, e, s.rng)
		})
		s.allocated++
	}
	return nil
}
