package tracing

import (
	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 实现 GORM Plugin 接口，用于追踪数据库操作
type GormTracingPlugin struct{}

// SetupGormTracing 为 GORM 注册 Sentry 追踪插件
func SetupGormTracing(db *gorm.DB) {
	_ = db.Use(&GormTracingPlugin{})
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

// Initialize 注册 GORM 回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	_ = db.Callback().Create().Before("gorm:create").Register(callbackPrefix+":before_create", p.before("db.sql.create"))
	_ = db.Callback().Query().Before("gorm:query").Register(callbackPrefix+":before_query", p.before("db.sql.query"))
	_ = db.Callback().Update().Before("gorm:update").Register(callbackPrefix+":before_update", p.before("db.sql.update"))
	_ = db.Callback().Delete().Before("gorm:delete").Register(callbackPrefix+":before_delete", p.before("db.sql.delete"))
	_ = db.Callback().Row().Before("gorm:row").Register(callbackPrefix+":before_row", p.before("db.sql.row"))
	_ = db.Callback().Raw().Before("gorm:raw").Register(callbackPrefix+":before_raw", p.before("db.sql.raw"))

	_ = db.Callback().Create().After("gorm:create").Register(callbackPrefix+":after_create", p.after)
	_ = db.Callback().Query().After("gorm:query").Register(callbackPrefix+":after_query", p.after)
	_ = db.Callback().Update().After("gorm:update").Register(callbackPrefix+":after_update", p.after)
	_ = db.Callback().Delete().After("gorm:delete").Register(callbackPrefix+":after_delete", p.after)
	_ = db.Callback().Row().After("gorm:row").Register(callbackPrefix+":after_row", p.after)
	_ = db.Callback().Raw().After("gorm:raw").Register(callbackPrefix+":after_raw", p.after)

	return nil
}

func (p *GormTracingPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		parentSpan := sentry.SpanFromContext(db.Statement.Context)
		if parentSpan == nil {
			return
		}

		span := parentSpan.StartChild(operation)
		// 使用表名作为描述，避免记录完整 SQL（可能包含敏感数据）
		span.Description = db.Statement.Table
		span.SetData("db.system", "mysql")

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	if db.Statement == nil {
		return
	}
	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}
