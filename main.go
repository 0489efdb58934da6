package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configsdatabase"
	"randevu.link/configs/configslog"
	"randevu.link/database"
	"randevu.link/routes"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envLoaded := configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	if !envLoaded {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}

	cfg := configs.GetConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	if cfg.DB.AutoMigrate {
		if err := database.Initialize(db, true, true); err != nil {
			configslog.Log.Fatal("Otomatik migrasyon başarısız oldu", zap.Error(err))
		}
	}

	app := routes.NewApp(cfg, db)

	go func() {
		configslog.SLog.Infof("%s :%s portunda dinleniyor", cfg.AppName, cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Sunucu kapatılıyor...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
}
