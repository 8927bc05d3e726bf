package group

import (
	"log/slog"

	"college-platform-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleGroup struct{}

func (g *ModuleGroup) GetName() string {
	return "Group"
}

func (g *ModuleGroup) Init() {
	log = logger.New("Group")
}
