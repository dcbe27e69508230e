package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/middleware"
	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/routes"
	"github.com/studyhdbrh/Study-jee-app/services"
	"github.com/studyhdbrh/Study-jee-app/storage"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 按配置初始化持久化网关
	gateway, err := newGateway(conf)
	if err != nil {
		log.Fatalf("无法初始化存储: %v", err)
		return
	}

	// 加载聚合并创建存储，持久化作为变更订阅者同步回写
	store := services.NewStudyStore(gateway.Load())
	store.Subscribe(func(data models.StudyData) {
		// 写入失败只记录日志，内存中的数据继续服务
		if err := gateway.Save(data); err != nil {
			config.Logger.Errorw("学习数据持久化失败", "error", err)
		}
	})

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	routes.RegisterRoutes(r, store)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	log.Println("服务器已关闭")
}

// newGateway 根据 STORAGE_DRIVER 创建持久化网关，默认使用本地文件
func newGateway(conf config.Config) (storage.Gateway, error) {
	switch conf.StorageDriver {
	case "redis":
		if err := config.InitRedis(conf); err != nil {
			return nil, err
		}
		return storage.NewRedisGateway(config.RedisClient), nil
	case "mysql":
		if err := config.InitDB(conf); err != nil {
			return nil, err
		}
		return storage.NewMySQLGateway(config.DB)
	default:
		return storage.NewFileGateway(conf.DataFile)
	}
}
