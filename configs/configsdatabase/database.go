package configsdatabase

import (
	"fmt"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB global veritabanı bağlantısını yapılandırmaya göre açar.
func InitDB() {
	cfg := configs.GetConfig()
	conn, err := Open(cfg.DB, cfg.IsProduction())
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı",
			zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (%s)", cfg.DB.Driver)
}

// Open sürücüye göre yeni bir GORM bağlantısı oluşturur.
func Open(cfg configs.DatabaseConfig, quiet bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres", "postgresql", "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone)
		dialector = postgres.Open(dsn)
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("desteklenmeyen veritabanı sürücüsü: %q", cfg.Driver)
	}

	logLevel := logger.Warn
	if quiet {
		logLevel = logger.Error
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return conn, nil
}

// GetDB InitDB ile açılan bağlantıyı döner.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Veritabanı başlatılmadan GetDB çağrıldı")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}
