package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	ListenAddr    string `json:"listenAddr"`
	CatalogPath   string `json:"catalogPath"`
	CustomersPath string `json:"customersPath"`
	StaticDir     string `json:"staticDir"`
}

var (
	cfg = defaults()
	mu  sync.RWMutex
)

const configFilePath = "./podorder_config.json"

func defaults() Config {
	return Config{
		ListenAddr:    ":8080",
		CatalogPath:   "./data/data.json",
		CustomersPath: "./data/customers.json",
		StaticDir:     "./static",
	}
}

func applyDefaults(c Config) Config {
	d := defaults()
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.CatalogPath == "" {
		c.CatalogPath = d.CatalogPath
	}
	if c.CustomersPath == "" {
		c.CustomersPath = d.CustomersPath
	}
	if c.StaticDir == "" {
		c.StaticDir = d.StaticDir
	}
	return c
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = defaults()
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = applyDefaults(tempCfg)

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = applyDefaults(newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
