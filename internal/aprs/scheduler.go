package aprs

import (
	"context"

	"github.com/iot-kits/aprsbln/internal/domain"
	"github.com/iot-kits/aprsbln/internal/ports"
	"github.com/iot-kits/aprsbln/pkg/log"
)

// The two fixed daily trigger points and their bulletin IDs.
const (
	morningHour = 8
	eveningHour = 20

	morningID byte = 'M'
	eveningID byte = 'E'
)

// Scheduler fires the two daily bulletins. It owns the DailyState flags
// that make each trigger fire at most once per calendar day.
//
// The trigger is sampled, not scheduled: a bulletin fires when a poll
// observes hour and minute matching a trigger point with its flag unset.
// Firing is defined for the whole trigger minute, so the scheduler must be
// polled at least once per minute; the flag suppresses duplicate sends when
// polled more often.
type Scheduler struct {
	post    LinePoster
	content ports.ContentSource
	clock   ports.Clock
	states  ports.StateRepository
	frames  Frames
	logger  log.Logger

	daily    domain.DailyState
	restored bool
}

// NewScheduler creates a Scheduler. states may be nil, in which case the
// daily flags live only in memory.
func NewScheduler(post LinePoster, content ports.ContentSource, clock ports.Clock, states ports.StateRepository, frames Frames, logger log.Logger) *Scheduler {
	return &Scheduler{
		post:    post,
		content: content,
		clock:   clock,
		states:  states,
		frames:  frames,
		logger:  logger,
	}
}

// Daily returns a copy of the current daily flags.
func (s *Scheduler) Daily() domain.DailyState {
	return s.daily
}

// Poll samples the clock and fires any due bulletin. The day rollover is
// applied before the triggers so the first poll of a new day starts with
// clean flags even when it lands inside a trigger minute.
func (s *Scheduler) Poll(ctx context.Context) {
	if !s.restored {
		s.restore(ctx)
	}

	now := s.clock.Now()
	if s.daily.RollOver(now.YearDay()) {
		s.logger.Info("daily bulletin flags reset", log.Int("day", now.YearDay()))
		s.persist(ctx)
	}

	if now.Hour() == morningHour && now.Minute() == 0 && !s.daily.AmSent {
		if s.send(morningID) == nil {
			s.daily.AmSent = true
			s.persist(ctx)
		}
	}
	if now.Hour() == eveningHour && now.Minute() == 0 && !s.daily.PmSent {
		if s.send(eveningID) == nil {
			s.daily.PmSent = true
			s.persist(ctx)
		}
	}
}

// send fetches the next bulletin text, validates it and posts it. The sent
// flag is only set by the caller on success, so a failed send retries on
// the next poll within the trigger minute.
func (s *Scheduler) send(id byte) error {
	text, err := s.content.Pick()
	if err != nil {
		s.logger.Error("no bulletin content", log.Err(err))
		return err
	}

	b, err := domain.NewBulletin(text, id)
	if err != nil {
		// An oversize or invalid bulletin is discarded without touching
		// the connection.
		s.logger.Warn("bulletin discarded",
			log.String("id", string(id)),
			log.Int("bytes", len(text)),
			log.Err(err))
		return err
	}

	if err := s.post.PostLine(s.frames.Bulletin(b)); err != nil {
		s.logger.Warn("bulletin not sent", log.String("id", string(id)), log.Err(err))
		return err
	}

	s.logger.Info("bulletin sent",
		log.String("id", string(id)),
		log.Int("bytes", len(b.Text)))
	return nil
}

func (s *Scheduler) restore(ctx context.Context) {
	s.restored = true
	if s.states == nil {
		return
	}
	st, err := s.states.Load(ctx)
	if err != nil {
		s.logger.Warn("daily state not restored", log.Err(err))
		return
	}
	s.daily = st
}

func (s *Scheduler) persist(ctx context.Context) {
	if s.states == nil {
		return
	}
	if err := s.states.Save(ctx, s.daily); err != nil {
		s.logger.Warn("daily state not saved", log.Err(err))
	}
}
