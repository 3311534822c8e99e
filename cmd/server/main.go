package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/JohanGylseth/Sami-2/internal/config"
	"github.com/JohanGylseth/Sami-2/internal/serverapp"
)

type serverEnv struct {
	Addr       string `env:"ADDR" envDefault:":8080"`
	DataDir    string `env:"DATA_DIR" envDefault:"data"`
	Backend    string `env:"STORE_BACKEND" envDefault:"file"`
	ConfigPath string `env:"CONFIG_PATH" envDefault:"samiquest_config.yml"`
}

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	var envCfg serverEnv
	if err := config.ParseEnv(&envCfg); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	cfg, err := config.Load(envCfg.ConfigPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	handler, cleanup, err := serverapp.NewHandler(serverapp.Options{
		Config:  cfg,
		DataDir: envCfg.DataDir,
		Backend: envCfg.Backend,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	log.Printf("samiquest listening on %s (backend=%s data=%s)", envCfg.Addr, envCfg.Backend, envCfg.DataDir)
	log.Fatal(http.ListenAndServe(envCfg.Addr, handler))
}
