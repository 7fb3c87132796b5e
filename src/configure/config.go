package configure

import (
	"bytes"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const EnvPrefix = "LEAGUE_RECAP"

func checkErr(err error) {
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
}

func New() *Config {
	// .env is optional, real environment variables always win
	for _, path := range []string{".env", "../.env"} {
		if err := godotenv.Load(path); err == nil {
			logrus.Infof("loaded env from %s", path)
			break
		}
	}

	pflag.String("config", "config.yaml", "Config file location")
	pflag.Bool("noheader", false, "Disable the startup header")
	pflag.Parse()

	c, err := Load(pflag.CommandLine)
	checkErr(err)

	initLogging(c.Level, c.LogFormat)

	return c
}

// Load merges the defaults, the config file named by the "config" flag and the environment.
// A missing config file is not an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	config := viper.New()

	// Default config
	b, err := json.Marshal(Defaults())
	if err != nil {
		return nil, err
	}
	tmp := viper.New()
	tmp.SetConfigType("json")
	if err := tmp.ReadConfig(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	if err := config.MergeConfigMap(tmp.AllSettings()); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := config.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	// File
	config.SetConfigFile(config.GetString("config"))
	config.AddConfigPath(".")
	if err := config.ReadInConfig(); err != nil {
		logrus.Warning(err)
		logrus.Info("Using default config")
	} else if err := config.MergeInConfig(); err != nil {
		return nil, err
	}

	// Environment
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AllowEmptyEnv(true)
	config.AutomaticEnv()

	BindEnvs(config, Config{})

	c := &Config{}
	if err := config.Unmarshal(&c); err != nil {
		return nil, err
	}

	return c, nil
}

func BindEnvs(config *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			BindEnvs(config, v.Interface(), append(parts, tv)...)
		default:
			_ = config.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func Defaults() Config {
	c := Config{
		Level:      "info",
		LogFormat:  "text",
		ConfigFile: "config.yaml",
	}

	c.Riot.RoutingRegions = []string{"americas", "europe", "asia", "sea"}
	c.Riot.DefaultPlatform = "na1"
	c.Riot.Timeout = 10 * time.Second
	c.Riot.Retry.Attempts = 3
	c.Riot.Retry.Delay = time.Second
	c.Riot.Rate.PerSecond = 15
	c.Riot.Rate.PerTwoMinutes = 90
	c.Riot.FetchConcurrency = 10
	c.Riot.DefaultCount = 20
	c.Riot.MaxCount = 100
	c.Riot.MasteryCount = 5

	c.Analytics.Timezone = "UTC"
	c.Analytics.TopChampions = 5
	c.Analytics.ClutchGoldRatio = 0.9
	c.Analytics.CarryKillParticipation = 60
	c.Analytics.PeakMonthMinGames = 5

	c.Narrative.Region = "us-east-1"
	c.Narrative.ModelID = "anthropic.claude-3-haiku-20240307-v1:0"
	c.Narrative.MaxTokens = 1000
	c.Narrative.Timeout = 30 * time.Second

	c.Redis.Addresses = []string{"localhost:6379"}
	c.Redis.MatchTTL = 24 * time.Hour

	c.Monitoring.Bind = "0.0.0.0:9100"
	c.Health.Bind = "0.0.0.0:9101"

	c.Modules.Recap.Enabled = true
	c.Modules.Recap.Bind = "0.0.0.0:3000"

	return c
}

type Config struct {
	Level      string `mapstructure:"level" json:"level"`
	LogFormat  string `mapstructure:"log_format" json:"log_format"`
	ConfigFile string `mapstructure:"config" json:"config"`
	NoHeader   bool   `mapstructure:"noheader" json:"noheader"`

	Riot struct {
		APIKey          string        `mapstructure:"api_key" json:"api_key"`
		RoutingRegions  []string      `mapstructure:"routing_regions" json:"routing_regions"`
		DefaultPlatform string        `mapstructure:"default_platform" json:"default_platform"`
		Timeout         time.Duration `mapstructure:"timeout" json:"timeout"`
		Retry           struct {
			Attempts int           `mapstructure:"attempts" json:"attempts"`
			Delay    time.Duration `mapstructure:"delay" json:"delay"`
		} `mapstructure:"retry" json:"retry"`
		Rate struct {
			PerSecond     int `mapstructure:"per_second" json:"per_second"`
			PerTwoMinutes int `mapstructure:"per_two_minutes" json:"per_two_minutes"`
		} `mapstructure:"rate" json:"rate"`
		FetchConcurrency int `mapstructure:"fetch_concurrency" json:"fetch_concurrency"`
		DefaultCount     int `mapstructure:"default_count" json:"default_count"`
		MaxCount         int `mapstructure:"max_count" json:"max_count"`
		MasteryCount     int `mapstructure:"mastery_count" json:"mastery_count"`
	} `mapstructure:"riot" json:"riot"`

	Analytics struct {
		Timezone               string  `mapstructure:"timezone" json:"timezone"`
		TopChampions           int     `mapstructure:"top_champions" json:"top_champions"`
		ClutchGoldRatio        float64 `mapstructure:"clutch_gold_ratio" json:"clutch_gold_ratio"`
		CarryKillParticipation float64 `mapstructure:"carry_kill_participation" json:"carry_kill_participation"`
		PeakMonthMinGames      int     `mapstructure:"peak_month_min_games" json:"peak_month_min_games"`
	} `mapstructure:"analytics" json:"analytics"`

	Narrative struct {
		Enabled         bool          `mapstructure:"enabled" json:"enabled"`
		Region          string        `mapstructure:"region" json:"region"`
		ModelID         string        `mapstructure:"model_id" json:"model_id"`
		MaxTokens       int           `mapstructure:"max_tokens" json:"max_tokens"`
		AccessKeyID     string        `mapstructure:"access_key_id" json:"access_key_id"`
		SecretAccessKey string        `mapstructure:"secret_access_key" json:"secret_access_key"`
		Timeout         time.Duration `mapstructure:"timeout" json:"timeout"`
	} `mapstructure:"narrative" json:"narrative"`

	Discord struct {
		Token   string `mapstructure:"token" json:"token"`
		Logging struct {
			Enabled   bool   `mapstructure:"enabled" json:"enabled"`
			ChannelID string `mapstructure:"channel_id" json:"channel_id"`
			Debug     bool   `mapstructure:"debug" json:"debug"`
		} `mapstructure:"logging" json:"logging"`
	} `mapstructure:"discord" json:"discord"`

	Redis struct {
		Enabled    bool          `mapstructure:"enabled" json:"enabled"`
		Username   string        `mapstructure:"username" json:"username"`
		Password   string        `mapstructure:"password" json:"password"`
		MasterName string        `mapstructure:"master_name" json:"master_name"`
		Addresses  []string      `mapstructure:"addresses" json:"addresses"`
		Database   int           `mapstructure:"database" json:"database"`
		Sentinel   bool          `mapstructure:"sentinel" json:"sentinel"`
		MatchTTL   time.Duration `mapstructure:"match_ttl" json:"match_ttl"`
	} `mapstructure:"redis" json:"redis"`

	Monitoring struct {
		Enabled bool       `mapstructure:"enabled" json:"enabled"`
		Bind    string     `mapstructure:"bind" json:"bind"`
		Labels  []KeyValue `mapstructure:"labels" json:"labels"`
	} `mapstructure:"monitoring" json:"monitoring"`

	Health struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
	} `mapstructure:"health" json:"health"`

	Modules struct {
		Recap struct {
			Enabled    bool   `mapstructure:"enabled" json:"enabled"`
			Bind       string `mapstructure:"bind" json:"bind"`
			CORSOrigin string `mapstructure:"cors_origin" json:"cors_origin"`
		} `mapstructure:"recap" json:"recap"`
	} `mapstructure:"modules" json:"modules"`
}

// Location resolves analytics.timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.Analytics.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("unknown timezone %s, using UTC", c.Analytics.Timezone)
		return time.UTC
	}
	return loc
}

type KeyValue struct {
	Key   string `mapstructure:"key" json:"key"`
	Value string `mapstructure:"value" json:"value"`
}
