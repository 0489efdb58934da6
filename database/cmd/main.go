package main

import (
	"flag"

	"randevu.link/configs"
	"randevu.link/configs/configsdatabase"
	"randevu.link/configs/configslog"
	"randevu.link/database"

	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Fatal("Veritabanı başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
