package server

import (
	"fmt"
	"log/slog"

	"college-platform-backend/config"
	"college-platform-backend/internal/global/cache"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/httpclient"
	"college-platform-backend/internal/global/logger"
	"college-platform-backend/internal/global/middleware"
	internalSentry "college-platform-backend/internal/global/sentry"
	"college-platform-backend/internal/module"
	"college-platform-backend/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := internalSentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	database.Init()
	cache.Init()
	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(internalSentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Recovery())

	// 上传文件（头像、帖子图片）静态托管
	r.Static(config.Get().Upload.BaseURL, config.Get().Upload.Dir)

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	defer internalSentry.Flush()

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
