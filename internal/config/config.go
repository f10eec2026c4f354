package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// AuthUser is a config-seeded account allowed to sign in.
type AuthUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" env-default:""`
	Email    string `yaml:"email" env-default:""`
}

type Config struct {
	Env   string `yaml:"env" env-default:"local"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:"admin"`
		Password string `yaml:"password" env-default:"pass"`
		Database string `yaml:"database" env-default:"estatedesk"`
	} `yaml:"mongo"`
	Storage struct {
		Bucket        string `yaml:"bucket" env-default:"estatedesk"`
		PublicBaseURL string `yaml:"public_base_url" env-default:"http://127.0.0.1:9100"`
		CacheControl  string `yaml:"cache_control" env-default:"public,max-age=31536000,immutable"`
	} `yaml:"storage"`
	Generation struct {
		DelayMs int `yaml:"delay_ms" env-default:"4000"`
	} `yaml:"generation"`
	CRM struct {
		SeedDelayMs int `yaml:"seed_delay_ms" env-default:"400"`
	} `yaml:"crm"`
	Auth struct {
		Users []AuthUser `yaml:"users"`
	} `yaml:"auth"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9100"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
