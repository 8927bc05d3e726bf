package friend

import (
	"log/slog"

	"college-platform-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleFriend struct{}

func (f *ModuleFriend) GetName() string {
	return "Friend"
}

func (f *ModuleFriend) Init() {
	log = logger.New("Friend")
}
