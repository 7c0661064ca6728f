package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
		Company  string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
		Port string
	} `mapstructure:"http"`

	Storage struct {
		Driver string // postgres | memory
	} `mapstructure:"storage"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Manager struct {
		PIN string
	} `mapstructure:"manager"`

	Notify struct {
		Transport string // smtp | telegram | amqp | log
		Recipient string
		Timeout   time.Duration
	} `mapstructure:"notify"`

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
		SSL      bool
	} `mapstructure:"smtp"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	RabbitMQ struct {
		URL      string
		Exchange string
	} `mapstructure:"rabbitmq"`

	KeepAlive struct {
		Enabled  bool
		URL      string
		Interval time.Duration
	} `mapstructure:"keepalive"`

	Cart struct {
		TTL time.Duration
	} `mapstructure:"cart"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.company", "Built Right Company")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.port", "")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("manager.pin", "1234")
	v.SetDefault("notify.transport", "log")
	v.SetDefault("notify.recipient", "")
	v.SetDefault("notify.timeout", 30*time.Second)
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 465)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.ssl", true)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_chat_id", 0)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "supply_notifications")
	v.SetDefault("keepalive.enabled", false)
	v.SetDefault("keepalive.url", "")
	v.SetDefault("keepalive.interval", 10*time.Minute)
	v.SetDefault("cart.ttl", 12*time.Hour)
}

// Load читает YAML-конфиг (если path пустой — только дефолты) и накладывает
// переопределения из ENV с префиксом APP_ (APP_MANAGER_PIN, APP_HTTP_ADDR ...).
// Перед этим подхватывается .env из рабочей директории, если он есть.
func Load(path string) (Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Имена переменных из старого деплоя
	_ = v.BindEnv("manager.pin", "APP_MANAGER_PIN", "MANAGER_PIN")
	_ = v.BindEnv("postgres.dsn", "APP_POSTGRES_DSN", "DATABASE_URL")
	_ = v.BindEnv("http.port", "APP_HTTP_PORT", "PORT")
	_ = v.BindEnv("keepalive.url", "APP_KEEPALIVE_URL", "RENDER_EXTERNAL_URL")

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if c.HTTP.Port != "" {
		c.HTTP.Addr = ":" + c.HTTP.Port
	}
	return c, nil
}
