package service

import (
	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Config    *ConfigService
	Scheduler *Scheduler
}

func NewInstance(dm contract.DataManager, discord contract.Discord, log *zap.Logger) *Instance {
	return &Instance{
		Config:    newConfig(dm, discord, log),
		Scheduler: newScheduler(dm, discord, log),
	}
}
