package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"decor_dev_v1_202609/internal/controller"
	"decor_dev_v1_202609/internal/middleware"
	"decor_dev_v1_202609/internal/model"
	"decor_dev_v1_202609/internal/repository"
	"decor_dev_v1_202609/internal/router"
	"decor_dev_v1_202609/internal/service"
	"decor_dev_v1_202609/internal/task"
	"decor_dev_v1_202609/pkg/database"
	"decor_dev_v1_202609/pkg/logger"
)

func main() {
	// 1. 加载环境与日志
	_ = godotenv.Load()
	mode := getEnv("APP_MODE", gin.DebugMode)
	if err := logger.Init(mode); err != nil {
		panic(err)
	}
	defer logger.Sync()
	gin.SetMode(mode)

	// 2. JWT 进程级配置，启动后只读
	initJWT()

	// 3. 初始化数据库
	db := initDatabase()

	// 4. 初始化依赖
	deps := initDependencies(db)

	// 5. 启动定时任务
	initTasks(deps)

	// 6. 初始化路由
	r := router.SetupRouter(deps.Controllers, getEnv("UPLOAD_DIR", "./uploads"))

	// 7. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Shop    repository.ShopRepository
	Admin   repository.AdminRepository
	Product repository.ProductRepository
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Shop    *service.ShopService
	Product *service.ProductService
	Storage *service.StorageService
}

// ==================== 初始化函数 ====================

// initJWT JWT 配置
func initJWT() {
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: getEnv("JWT_SECRET", middleware.DefaultJWTConfig().SecretKey),
		TokenTTL:  7 * 24 * time.Hour,
		Issuer:    "decor-saas",
	})
}

// initDatabase 初始化数据库并写入演示数据
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_DSN",
		"host=localhost user=decor_admin password=1234 dbname=decor_saas port=5432 sslmode=disable")

	db := database.InitDB(dsn,
		&model.Shop{}, &model.ShopAdmin{}, &model.Product{},
	)

	if err := database.SeedDemoData(db, getEnv("DEMO_ADMIN_PASSWORD", "secret123")); err != nil {
		logger.L().Fatal("演示数据写入失败", zap.Error(err))
	}
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Shop:    repository.NewShopRepository(db),
		Admin:   repository.NewAdminRepository(db),
		Product: repository.NewProductRepository(db),
	}

	// -------- 存储服务 --------
	storageSvc, err := service.NewStorageService(&service.StorageConfig{
		BaseDir:      getEnv("UPLOAD_DIR", "./uploads"),
		PublicPrefix: "/uploads",
	})
	if err != nil {
		logger.L().Fatal("存储服务初始化失败", zap.Error(err))
	}

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(repos.Admin),
		Shop:    service.NewShopService(repos.Shop),
		Product: service.NewProductService(repos.Product, storageSvc),
		Storage: storageSvc,
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:    controller.NewAuthController(services.Auth),
		Shop:    controller.NewShopController(services.Shop),
		Product: controller.NewProductController(services.Product),
		Site:    controller.NewSiteController(services.Product, getEnv("SITE_BASE_URL", "http://localhost:8080")),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 孤儿上传文件清理
	cleanupTask := task.NewUploadCleanupTask(deps.Repos.Product, deps.Services.Storage)
	cleanupTask.Start()

	logger.L().Info("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		logger.L().Info("服务启动", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Fatal("服务强制关闭", zap.Error(err))
	}

	logger.L().Info("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
