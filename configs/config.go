package configs

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"randevu.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// AppConfig uygulamanın ortam değişkenlerinden okunan ayarlarıdır.
type AppConfig struct {
	Env     string
	AppName string
	Port    string

	DB DatabaseConfig

	SessionExpiration time.Duration
	SessionCookieName string
	CSRFEnabled       bool

	// Randevu koleksiyonu için izin verilen en büyük serileştirilmiş boyut (bayt)
	StorageQuotaBytes int
	// Serbest metin aramasında son tuştan sonra beklenecek süre
	SearchDebounce time.Duration

	AnnouncementFeedURL string
	TeaserTimeout       time.Duration
	TeaserLimit         int

	// Kimlik doğrulama olmadığı için sabit öğrenci kimliği kullanılır
	StudentName       string
	StudentDepartment string
}

// DatabaseConfig veritabanı bağlantı ayarları.
type DatabaseConfig struct {
	Driver       string // postgres | sqlite
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	TimeZone     string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

var (
	appConfig *AppConfig
	loadOnce  sync.Once
)

// LoadEnv .env dosyasını (varsa) ortam değişkenlerine yükler.
func LoadEnv() bool {
	if err := godotenv.Load(".env"); err != nil {
		return false
	}
	return true
}

// GetConfig ilk çağrıda ayarları ortamdan okur, sonraki çağrılarda aynı örneği döner.
func GetConfig() *AppConfig {
	loadOnce.Do(func() {
		appConfig = Load()
	})
	return appConfig
}

// Load ortam değişkenlerinden yeni bir AppConfig üretir.
func Load() *AppConfig {
	cfg := &AppConfig{
		Env:     GetEnvWithDefault("APP_ENV", "development"),
		AppName: GetEnvWithDefault("APP_NAME", "Akademik Randevu Sistemi"),
		Port:    GetEnvWithDefault("APP_PORT", "3000"),
		DB: DatabaseConfig{
			Driver:       strings.ToLower(GetEnvWithDefault("DB_DRIVER", "postgres")),
			Host:         GetEnvWithDefault("DB_HOST", "localhost"),
			Port:         GetEnvWithDefault("DB_PORT", "5432"),
			User:         GetEnvWithDefault("DB_USER", "postgres"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         GetEnvWithDefault("DB_NAME", "randevu"),
			SSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
			TimeZone:     GetEnvWithDefault("DB_TIMEZONE", "Europe/Istanbul"),
			SQLitePath:   GetEnvWithDefault("SQLITE_PATH", "randevu.db"),
			MaxOpenConns: GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			AutoMigrate:  GetEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		SessionExpiration:   GetEnvAsDuration("SESSION_EXPIRATION", 24*time.Hour),
		SessionCookieName:   GetEnvWithDefault("SESSION_COOKIE_NAME", "randevu_session"),
		CSRFEnabled:         GetEnvAsBool("CSRF_ENABLED", true),
		StorageQuotaBytes:   GetEnvAsInt("STORAGE_QUOTA_BYTES", 5*1024*1024),
		SearchDebounce:      GetEnvAsDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		AnnouncementFeedURL: os.Getenv("ANNOUNCEMENT_FEED_URL"),
		TeaserTimeout:       GetEnvAsDuration("TEASER_TIMEOUT", 3*time.Second),
		TeaserLimit:         GetEnvAsInt("TEASER_LIMIT", 6),
		StudentName:         GetEnvWithDefault("STUDENT_NAME", "Ayşe Yılmaz"),
		StudentDepartment:   GetEnvWithDefault("STUDENT_DEPARTMENT", "Bilgisayar Mühendisliği"),
	}

	// Feed adresi verilmezse sitenin kendi JSON akışı kullanılır
	if cfg.AnnouncementFeedURL == "" {
		cfg.AnnouncementFeedURL = "http://127.0.0.1:" + cfg.Port + "/api/duyurular"
	}
	return cfg
}

// IsProduction üretim ortamında mıyız?
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// GetEnvWithDefault değişken boşsa varsayılanı döner.
func GetEnvWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz tamsayı ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz boolean ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Bool("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvAsDuration "300ms", "5s" gibi değerleri ve düz milisaniye sayısını kabul eder.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz süre ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Duration("default", defaultValue))
		return defaultValue
	}
	return value
}
