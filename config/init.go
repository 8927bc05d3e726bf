package config

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读取 config.yaml，再用环境变量覆盖
// 环境变量前缀为 CP，如 CP_MYSQL_PASSWORD
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath("../..")

		cfg := defaultConfig()

		// 配置文件允许不存在（纯环境变量部署）
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic("解析配置文件失败: " + err.Error())
			}
		}

		if err := envconfig.Process("cp", cfg); err != nil {
			panic("读取环境变量配置失败: " + err.Error())
		}

		cfg.Prefix = strings.Trim(cfg.Prefix, "/")
		instance = cfg
	})
}

// Get 获取全局配置实例
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		Mysql: Mysql{
			Host:   "127.0.0.1",
			Port:   "3306",
			DBName: "college_platform",
		},
		Redis: Redis{
			Host: "127.0.0.1",
			Port: "6379",
		},
		JWT: JWT{
			AccessSecret: "college-platform-secret",
			AccessExpire: 60 * 60 * 24 * 7,
		},
		Upload: Upload{
			Dir:       "./upload",
			BaseURL:   "/static",
			MaxSizeMB: 2,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
	}
}
