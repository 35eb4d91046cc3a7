package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"decor_dev_v1_202609/internal/repository"
	"decor_dev_v1_202609/internal/service"
	"decor_dev_v1_202609/pkg/logger"
)

// ==================== UploadCleanupTask 孤儿文件清理 ====================

// UploadCleanupTask 定时清理上传目录中无商品引用的孤儿文件
// 典型来源：上传成功但商品插入失败、商品被删除后残留的媒体
type UploadCleanupTask struct {
	productRepo repository.ProductRepository
	storage     *service.StorageService
	cron        *cron.Cron

	// 文件落盘后至少保留该时长，避免误删正在处理中的上传
	gracePeriod time.Duration
}

// NewUploadCleanupTask 创建清理任务
func NewUploadCleanupTask(productRepo repository.ProductRepository, storage *service.StorageService) *UploadCleanupTask {
	return &UploadCleanupTask{
		productRepo: productRepo,
		storage:     storage,
		cron:        cron.New(cron.WithSeconds()),
		gracePeriod: 24 * time.Hour,
	}
}

// Start 启动任务，每小时整点执行一次
func (t *UploadCleanupTask) Start() {
	_, err := t.cron.AddFunc("0 0 * * * *", func() {
		t.RunOnce(context.Background())
	})
	if err != nil {
		logger.L().Error("注册清理任务失败", zap.Error(err))
		return
	}
	t.cron.Start()
	logger.L().Info("孤儿文件清理任务已启动")
}

// Stop 停止任务
func (t *UploadCleanupTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
}

// RunOnce 执行一轮清理
func (t *UploadCleanupTask) RunOnce(ctx context.Context) {
	entries, err := t.storage.Entries()
	if err != nil {
		logger.L().Error("读取上传目录失败", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-t.gracePeriod)
	removed := 0
	for _, entry := range entries {
		if entry.ModTime.After(cutoff) {
			continue
		}

		refs, err := t.productRepo.CountByMediaPath(ctx, entry.PublicPath)
		if err != nil {
			logger.L().Warn("查询媒体引用失败",
				zap.String("path", entry.PublicPath), zap.Error(err))
			continue
		}
		if refs > 0 {
			continue
		}

		if err := t.storage.Remove(entry.PublicPath); err != nil {
			logger.L().Warn("删除孤儿文件失败",
				zap.String("path", entry.PublicPath), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.L().Info("孤儿文件清理完成", zap.Int("removed", removed))
	}
}
