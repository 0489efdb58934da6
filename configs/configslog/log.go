package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış loglayıcı, SLog ise printf tarzı kullanım içindir.
// InitLogger çağrılana kadar ikisi de hiçbir şey yazmaz.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger APP_ENV değerine göre global loglayıcıyı kurar.
func InitLogger() {
	logger, err := NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		panic("logger oluşturulamadı: " + err.Error())
	}
	SetLogger(logger)
}

// NewLogger production ortamında JSON, diğer ortamlarda renkli konsol çıktısı üretir.
func NewLogger(env string) (*zap.Logger, error) {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

// SetLogger testlerde gözlemci loglayıcı takmak için de kullanılır.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	Log = logger
	SLog = logger.Sugar()
}

func SyncLogger() {
	// stdout için Sync hatası bazı platformlarda beklenen bir durumdur
	_ = Log.Sync()
}
