package logger

import (
	"go.uber.org/zap"
)

// 全局 zap 实例，Init 之前为 Nop，启动后只读
var log = zap.NewNop()

// Init 初始化全局日志
// mode: "release" 使用生产配置 (JSON)，其余使用开发配置
func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L 获取全局日志
func L() *zap.Logger {
	return log
}

// Sync 刷新缓冲，进程退出前调用
func Sync() {
	_ = log.Sync()
}
