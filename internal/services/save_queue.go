package services

import (
	"context"
	"sync"
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"go.uber.org/zap"
)

// WeekSaver persists one week of the schedule. *ScheduleService
// implements it.
type WeekSaver interface {
	SaveWeek(input SaveWeekInput) error
}

type saveRequest struct {
	input SaveWeekInput
	reply chan error
}

// SaveQueue serializes week saves through a single writer goroutine
// with a bounded mailbox. Rapid saves of the same week coalesce into one
// write (latest payload wins), a minimum interval between writes keeps
// request storms off the database, and failed writes are retried a
// bounded number of times.
type SaveQueue struct {
	saver       WeekSaver
	logger      *zap.Logger
	mailbox     chan saveRequest
	minInterval time.Duration
	maxRetries  int

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewSaveQueue starts the writer goroutine.
func NewSaveQueue(saver WeekSaver, logger *zap.Logger, size int, minInterval time.Duration, maxRetries int) *SaveQueue {
	if size < 1 {
		size = 1
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	q := &SaveQueue{
		saver:       saver,
		logger:      logger,
		mailbox:     make(chan saveRequest, size),
		minInterval: minInterval,
		maxRetries:  maxRetries,
	}

	q.wg.Add(1)
	go q.run()

	return q
}

// Enqueue submits a save and waits for its outcome. If the save is
// superseded by a later one for the same week before the writer picks it
// up, the caller receives the outcome of the save that actually ran.
func (q *SaveQueue) Enqueue(ctx context.Context, input SaveWeekInput) error {
	req := saveRequest{input: input, reply: make(chan error, 1)}

	select {
	case q.mailbox <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting saves and waits for the writer to drain.
func (q *SaveQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.mailbox)
	})
	q.wg.Wait()
}

type pendingSave struct {
	input   SaveWeekInput
	replies []chan error
}

func (q *SaveQueue) run() {
	defer q.wg.Done()

	var lastSave time.Time

	for req := range q.mailbox {
		pending := q.collect(req)

		for _, save := range pending {
			if q.minInterval > 0 && !lastSave.IsZero() {
				if wait := q.minInterval - time.Since(lastSave); wait > 0 {
					time.Sleep(wait)
				}
			}

			err := q.saveWithRetry(save.input)
			lastSave = time.Now()

			for _, reply := range save.replies {
				reply <- err
			}
		}
	}
}

// collect drains the mailbox without blocking and coalesces requests by
// week start, keeping the latest payload for each week.
func (q *SaveQueue) collect(first saveRequest) []*pendingSave {
	byWeek := make(map[string]*pendingSave)
	var order []*pendingSave

	add := func(req saveRequest) {
		key := participation.WeekStart(req.input.WeekStart).Format("2006-01-02")
		if save, ok := byWeek[key]; ok {
			save.input = req.input
			save.replies = append(save.replies, req.reply)
			return
		}
		save := &pendingSave{input: req.input, replies: []chan error{req.reply}}
		byWeek[key] = save
		order = append(order, save)
	}

	add(first)
	for {
		select {
		case req, ok := <-q.mailbox:
			if !ok {
				return order
			}
			add(req)
		default:
			return order
		}
	}
}

func (q *SaveQueue) saveWithRetry(input SaveWeekInput) error {
	var err error
	backoff := 100 * time.Millisecond

	for attempt := 0; attempt <= q.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		err = q.saver.SaveWeek(input)
		if err == nil {
			return nil
		}

		q.logger.Warn("week save failed",
			zap.Time("weekStart", input.WeekStart),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	return err
}
