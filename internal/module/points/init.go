package points

import (
	"log/slog"

	"college-platform-backend/internal/global/logger"
)

var log *slog.Logger

type ModulePoints struct{}

func (p *ModulePoints) GetName() string {
	return "Points"
}

func (p *ModulePoints) Init() {
	log = logger.New("Points")
}
