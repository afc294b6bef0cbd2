package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
)

// Duration в yaml пишется строкой "5m", целым или дробным числом секунд
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func LoadConfig(c any) error {
	return parseConfig(c, Path(os.Getenv("ENV")), CommonParseOptions)
}

// Path выбирает файл конфига по окружению
func Path(env string) string {
	switch env {
	case "local":
		return localConfigPath
	case "dev":
		return devConfigPath
	default:
		return configPath
	}
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp("tiktok_audio", "Запустить сервер", "Метаданные и mp3 звука из роликов TikTok", c, opts)
}

func readFile(cfg any, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer utils.CloseWithLog(f)

	if err = yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// nolint
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		if dur, err := time.ParseDuration(s); err == nil {
			*d = Duration(dur)

			return nil
		}
	}

	// число - секунды, допускается дробная часть
	var f float64
	if err := unmarshal(&f); err == nil {
		*d = Duration(time.Duration(f * float64(time.Second)))

		return nil
	}

	return fmt.Errorf("unsupported duration format")
}

// nolint
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
