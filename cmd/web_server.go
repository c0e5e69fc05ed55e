package main

import (
	"os"

	"github.com/Kostushka/web_server/internal/config"
	"github.com/Kostushka/web_server/internal/journal"
	"github.com/Kostushka/web_server/internal/log"
	"github.com/Kostushka/web_server/internal/server"
)

// журнал запросов пишется в рабочий каталог процесса
const journalDir = "."

func main() {
	// читаем файл конфигурации из рабочего каталога
	cfg, err := config.Load(config.FileName)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// создаем логеры
	if err = log.New(cfg.ServerLog()); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	log.Infof("конфигурация загружена: порт %d, корневой каталог %q, каталог ошибок %q",
		cfg.Port(), cfg.RootDirectory(), cfg.ErrorDirectory())

	s := server.New(cfg, journal.New(journalDir))

	// не удалось открыть сокет - дальше работать нельзя
	if err = s.ListenAndServe(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
