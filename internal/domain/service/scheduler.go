package service

import (
	"sync"
	"time"

	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/dlchamp/channel-lock-bot/internal/domain/schedule"
	"go.uber.org/zap"
)

// TickInterval is the scheduler's fixed cadence. It must not exceed
// schedule.ToleranceWindow, or a channel's matching window could pass
// between two ticks without either one seeing it.
const TickInterval = 30 * time.Second

// Scheduler drives the lock/unlock loop: every tick it snapshots all guild
// configs, gates each channel by its day rule, asks the matcher for a
// decision and applies it.
type Scheduler struct {
	dm       contract.DataManager
	discord  contract.Discord
	log      *zap.Logger
	interval time.Duration
	now      func() time.Time
	stopChan chan struct{}
	tickMu   sync.Mutex
	running  bool
}

func newScheduler(dm contract.DataManager, discord contract.Discord, log *zap.Logger) *Scheduler {
	return &Scheduler{
		dm:       dm,
		discord:  discord,
		log:      log,
		interval: TickInterval,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting", zap.Duration("interval", s.interval))
	go s.mainLoop()
}

// Stop ends the loop after any in-flight tick completes. Each channel's
// act+persist step is atomic in isolation, so stopping mid-tick cannot
// corrupt persisted state.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *Scheduler) mainLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runTick()
		case <-s.stopChan:
			return
		}
	}
}

// runTick processes one tick. Ticks serialize on tickMu, so a tick that
// outlives the interval can never act on a channel concurrently with the
// next one.
func (s *Scheduler) runTick() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	guilds, err := s.dm.Guild().GetAll()
	if err != nil {
		s.log.Error("failed to load guild configs", zap.Error(err))
		return
	}

	for _, guild := range guilds {
		s.processGuild(guild)
	}
}

func (s *Scheduler) processGuild(guild *entity.Guild) {
	loc := s.resolveLocation(guild)
	now := s.now().In(loc)
	weekday := schedule.WeekdayIndex(now)

	for _, channel := range guild.Channels {
		if !channel.Days.Matches(weekday) {
			continue
		}

		transition := schedule.Decide(now, channel.LockTime, channel.UnlockTime, channel.Unlocked)
		if transition == schedule.TransitionNone {
			continue
		}

		// A failed channel is skipped, never the rest of the tick; the next
		// tick re-evaluates it inside the same tolerance window.
		if err := s.apply(guild, channel, transition); err != nil {
			s.log.Error("failed to apply transition",
				zap.String("guild_id", guild.GuildID),
				zap.String("channel_id", channel.ChannelID),
				zap.Stringer("transition", transition),
				zap.Error(err),
			)
		}
	}
}

func (s *Scheduler) resolveLocation(guild *entity.Guild) *time.Location {
	if guild.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(guild.Timezone)
	if err != nil {
		s.log.Warn("unknown guild timezone, falling back to UTC",
			zap.String("guild_id", guild.GuildID),
			zap.String("timezone", guild.Timezone),
		)
		return time.UTC
	}

	return loc
}
