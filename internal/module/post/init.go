package post

import (
	"log/slog"

	"college-platform-backend/internal/global/logger"
)

var log *slog.Logger

type ModulePost struct{}

func (p *ModulePost) GetName() string {
	return "Post"
}

func (p *ModulePost) Init() {
	log = logger.New("Post")
}
