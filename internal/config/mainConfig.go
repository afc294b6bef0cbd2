package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	HTTP        HTTP        `yaml:"HTTP" env:"HTTP" flag:"http"`
	Upstream    Upstream    `yaml:"Upstream" env:"UPSTREAM" flag:"upstream"`
	Cache       Cache       `yaml:"Cache" env:"CACHE" flag:"cache"`
}

type Application struct {
	LogLevel   string `yaml:"LogLevel" env:"LOGLEVEL" cli:"optional"`
	Strategy   string `yaml:"Strategy" env:"STRATEGY" flag:"strategy" usage:"Способ получения метаданных: page-scrape, oembed, tikwm"`
	TGBotToken string `yaml:"TGBotToken" env:"TG_BOT_TOKEN" flag:"tg-bot-token" usage:"Токен телегам бота, пусто - бот выключен" cli:"optional"`
	ProxyURL   string `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" usage:"Прокси для отправки запросов" cli:"optional"`
}

type HTTP struct {
	Listen       string   `yaml:"Listen" usage:"Адрес HTTP сервера"`
	PublicURL    string   `yaml:"PublicURL" usage:"Внешний адрес сервиса для ссылок из бота" cli:"optional"`
	AllowOrigins []string `yaml:"AllowOrigins" usage:"Разрешённые CORS origin" cli:"optional"`
	ReadTimeout  Duration `yaml:"ReadTimeout" cli:"optional"`
	// 0 - без ограничения, иначе длинные mp3 обрываются
	WriteTimeout Duration `yaml:"WriteTimeout" cli:"optional"`
}

type Upstream struct {
	UserAgent        string   `yaml:"UserAgent" cli:"optional"`
	Referer          string   `yaml:"Referer" cli:"optional"`
	NormalizeTimeout Duration `yaml:"NormalizeTimeout" cli:"optional"`
	ScrapeTimeout    Duration `yaml:"ScrapeTimeout" cli:"optional"`
	OEmbedTimeout    Duration `yaml:"OEmbedTimeout" cli:"optional"`
	StreamTimeout    Duration `yaml:"StreamTimeout" cli:"optional"`
}

type Cache struct {
	RedisAddr     string   `yaml:"RedisAddr" usage:"Адрес redis, пусто - кэш выключен" cli:"optional"`
	RedisPassword string   `yaml:"RedisPassword" cli:"optional"`
	RedisDB       int      `yaml:"RedisDB" cli:"optional"`
	TTL           Duration `yaml:"TTL" cli:"optional"`
}
