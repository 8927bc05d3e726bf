package message

import (
	"log/slog"

	"college-platform-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleMessage struct{}

func (m *ModuleMessage) GetName() string {
	return "Message"
}

func (m *ModuleMessage) Init() {
	log = logger.New("Message")
}
