// Package training runs long jobs in small steps driven by a host clock.
//
// A Scheduler owns a Task and runs one Task.Step per Tick. Hosts with a
// frame or timer loop call Tick themselves; others hand Run a channel:
//
//	task, _ := training.NewLearnTask(net, set, training.Config{
//		Epochs: 10000, Rate: 0.1, EpochsPerStep: 100, ReportEvery: 1000,
//	}, func(p training.Progress) { log.Printf("epoch %d: %.4f", p.Epoch, p.Error) })
//	s, _ := training.NewScheduler(task)
//	ticker := time.NewTicker(16 * time.Millisecond)
//	defer ticker.Stop()
//	err := s.Run(ctx, ticker.C)
//
// Start and Stop are idempotent. Stop takes effect before the next step;
// a step in progress is never interrupted. A failed step stops the
// scheduler for good and its error is kept in Err.
package training
