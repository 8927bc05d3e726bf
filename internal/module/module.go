package module

import (
	"college-platform-backend/internal/module/activity"
	"college-platform-backend/internal/module/friend"
	"college-platform-backend/internal/module/group"
	"college-platform-backend/internal/module/message"
	"college-platform-backend/internal/module/ping"
	"college-platform-backend/internal/module/points"
	"college-platform-backend/internal/module/post"
	"college-platform-backend/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&activity.ModuleActivity{},
		&post.ModulePost{},
		&friend.ModuleFriend{},
		&message.ModuleMessage{},
		&group.ModuleGroup{},
		&points.ModulePoints{},
	})
}
