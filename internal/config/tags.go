package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

type parseOptions struct {
	Parent                  *parseOptions
	EnvPrefix               string
	EnvIsDisabled           bool
	FlagPrefix              string
	Category                string
	AlreadyHasDefaultValues bool
	RequiredByDefault       bool
}

// Для приложений с yaml конфигом + env
var CommonParseOptions = parseOptions{
	AlreadyHasDefaultValues: true,
	RequiredByDefault:       true,
}

// Для приложений только с env
var DefaultParseOptions = parseOptions{
	RequiredByDefault: true,
}

var (
	tagNameEnv        = "env"        // полностью меняет часть после префикса для env. env:"-" - убрать ввод значения через env.
	tagNameEnvPrefix  = "envprefix"  // полностью перезаписывает префикс env (envprefix:"APP2", envprefix:"")
	tagNameFlag       = "flag"       // полностью меняет часть после префикса для флага. flag:"-" - убрать ввод значения через флаг
	tagNameFlagPrefix = "flagprefix" // полностью перезаписывает префикс флага
	tagNameCLI        = "cli"        // опции через запятую: hidden,required,optional. cli:"-" - игнор поля.
	tagNameUsage      = "usage"      // описание (usage:"делает что-то")
	tagNameDefault    = "default"    // дефолт значение (default:"10")
	tagNameCategory   = "category"   // категория в команде help
)

// CommonHelp накладывает флаги и env на уже прочитанный конфиг.
// На -help печатает справку и завершает процесс.
// opts:
//   - CommonParseOptions - yaml конфиг + env.
//   - DefaultParseOptions - только env.
func CommonHelp(name, usage, description string, cfg any, opts parseOptions) error {
	helpWasCalled, err := WorkHelp(name, usage, description, cfg, opts)
	if helpWasCalled && err == nil {
		os.Exit(0)
	}

	return err
}

func WorkHelp(name, usage, description string, cfg any, opts parseOptions) (bool, error) {
	flags, err := parseFlags(cfg, opts)
	if err != nil {
		return false, fmt.Errorf("ParseFlags: %w", err)
	}

	var helpWasCalled bool

	original := cli.HelpPrinterCustom
	cli.HelpPrinterCustom = func(w io.Writer, templ string, data any, customFunc map[string]any) {
		helpWasCalled = true

		original(w, templ, data, customFunc)
	}

	cmd := &cli.Command{
		Name:        name,
		Usage:       usage,
		Description: description,
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		return helpWasCalled, fmt.Errorf("cmd.Run: %w", err)
	}

	return helpWasCalled, nil
}

func parseFlags(c any, opts parseOptions) ([]cli.Flag, error) {
	if c == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(c)

	if v.Kind() != reflect.Ptr {
		return nil, errors.New("config must be pointer")
	}

	v = v.Elem()

	if v.Kind() != reflect.Struct {
		return nil, errors.New("config must be struct")
	}

	t := reflect.TypeOf(c).Elem()

	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		res, err := parseField(t.Field(i), v.Field(i), opts)
		if err != nil {
			return nil, err
		}

		flags = append(flags, res...)
	}

	return flags, nil
}

type flagOptions[T any] struct {
	Value T
	Dest  *T
	flagOptionsCommon
}

type flagOptionsCommon struct {
	Name       string
	Category   string
	HasValue   bool
	Env        string
	DisableEnv bool
	Usage      string
	Required   bool
	Hidden     bool
}

// nolint: gocyclo, cyclop
func parseField(
	t reflect.StructField,
	v reflect.Value,
	opts parseOptions,
) ([]cli.Flag, error) {
	var flagPrefix, envPrefix string

	if v, ok := t.Tag.Lookup(tagNameFlagPrefix); ok {
		opts.FlagPrefix = v
	}

	if v, ok := t.Tag.Lookup(tagNameEnvPrefix); ok {
		opts.EnvPrefix = v
	}

	if opts.FlagPrefix != "" {
		flagPrefix = opts.FlagPrefix + "-"
	}

	if opts.EnvPrefix != "" {
		envPrefix = opts.EnvPrefix + "_"
	}

	argName, ok := t.Tag.Lookup(tagNameFlag)
	switch {
	case !ok:
		argName = flagPrefix + toKebabCase(t.Name)
	case argName == "-":
		argName = ""
	default:
		argName = flagPrefix + argName
	}

	disableEnv := opts.EnvIsDisabled

	var envName string

	if !disableEnv {
		envName, ok = t.Tag.Lookup(tagNameEnv)
		if !ok {
			envName = envPrefix + toScreamingSnakeCase(t.Name)
		} else {
			if envName == "-" {
				disableEnv = true
			} else {
				envName = envPrefix + envName
			}
		}
	}

	category, ok := t.Tag.Lookup(tagNameCategory)
	switch {
	case ok && v.Kind() != reflect.Struct:
		return nil, fmt.Errorf("category tag is allowed only for structures")
	case !ok && v.Kind() == reflect.Struct:
		category = t.Name
	case !ok && v.Kind() != reflect.Struct:
		category = opts.Category
	}

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", t.Name)
	}

	var defaultValue string

	var hasDefaultValue bool
	if !opts.AlreadyHasDefaultValues {
		defaultValue, hasDefaultValue = t.Tag.Lookup(tagNameDefault)
	}

	usage, _ := t.Tag.Lookup(tagNameUsage)

	var (
		cliRequired bool
		cliOptional bool
		cliHidden   bool
	)

	cliOptionsStr, _ := t.Tag.Lookup(tagNameCLI)
	if cliOptionsStr == "-" {
		return nil, nil
	}

	if cliOptionsStr != "" {
		cliOptions := strings.Split(cliOptionsStr, ",")
		cliRequired = slices.Contains(cliOptions, "required")
		cliOptional = slices.Contains(cliOptions, "optional")
		cliHidden = slices.Contains(cliOptions, "hidden")
	}

	if !cliOptional {
		cliRequired = cliRequired || opts.RequiredByDefault
	}

	if cliHidden && cliRequired {
		return nil, fmt.Errorf("flag %v: must not be hidden and required at the same time, add \"optional\" to cli tag", t.Name)
	}

	configValueIsZero := cliRequired && v.IsZero() && v.Kind() != reflect.Bool && opts.AlreadyHasDefaultValues

	foc := flagOptionsCommon{
		Name:       argName,
		Category:   category,
		HasValue:   false,
		Env:        envName,
		DisableEnv: disableEnv,
		Usage:      usage,
		Required:   cliRequired,
		Hidden:     cliHidden,
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	addr := v.Addr()
	current := opts.AlreadyHasDefaultValues && !configValueIsZero

	// Duration тоже Int64, поэтому тип проверяется до вида
	if v.Type() == durationType || v.Type() == configDurationType {
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, time.ParseDuration, durationFlag)
	}

	switch v.Kind() {
	case reflect.Struct:
		envPrefixFromTag, hasEnvPrefixFromTag := t.Tag.Lookup(tagNameEnv)
		if hasEnvPrefixFromTag {
			envPrefix += envPrefixFromTag
		} else {
			envPrefix += toScreamingSnakeCase(t.Name)
		}

		flagPrefixFromTag, hasFlagPrefixFromTag := t.Tag.Lookup(tagNameFlag)
		if hasFlagPrefixFromTag {
			flagPrefix += flagPrefixFromTag
		} else {
			flagPrefix += toKebabCase(t.Name)
		}

		newOpts := parseOptions{
			Parent:                  &opts,
			Category:                category,
			EnvPrefix:               envPrefix,
			EnvIsDisabled:           opts.EnvIsDisabled || envPrefixFromTag == "-",
			FlagPrefix:              flagPrefix,
			RequiredByDefault:       cliRequired,
			AlreadyHasDefaultValues: opts.AlreadyHasDefaultValues,
		}

		return parseFlags(addr.Interface(), newOpts)

	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return nil, fmt.Errorf("slice type %v is unsupported", v.Type().Elem().Kind())
		}

		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, splitList, stringSliceFlag)

	case reflect.String:
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, identity, stringFlag)

	case reflect.Bool:
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, strconv.ParseBool, boolFlag)

	case reflect.Int:
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, strconv.Atoi, intFlag)

	case reflect.Int64:
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, parseInt64, int64Flag)

	case reflect.Uint16:
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, parseUint16, uint16Flag)

	case reflect.Float64:
		return bind(addr, t.Name, foc, current, defaultValue, hasDefaultValue, parseFloat64, float64Flag)

	default:
		return nil, fmt.Errorf("type %v is unsupported", v.Type())
	}
}

var (
	durationType       = reflect.TypeFor[time.Duration]()
	configDurationType = reflect.TypeFor[Duration]()
)

// bind приводит поле к *T (для "type T1 T2" через конвертацию) и собирает флаг.
// Значение из конфига важнее default тега; флаг с любым значением уже не обязателен.
func bind[T any](
	addr reflect.Value,
	name string,
	foc flagOptionsCommon,
	current bool,
	defaultValue string,
	hasDefaultValue bool,
	parse func(string) (T, error),
	build func(flagOptions[T]) cli.Flag,
) ([]cli.Flag, error) {
	dst, ok := addr.Convert(reflect.TypeFor[*T]()).Interface().(*T)
	if !ok {
		return nil, fmt.Errorf("failed to cast %s to %T", name, dst)
	}

	fo := flagOptions[T]{
		flagOptionsCommon: foc,
		Dest:              dst,
	}

	switch {
	case current:
		fo.HasValue = true
		fo.Value = *dst
	case hasDefaultValue:
		v, err := parse(defaultValue)
		if err != nil {
			return nil, fmt.Errorf("invalid default for %s: %w", name, err)
		}

		fo.HasValue = true
		fo.Value = v
	}

	if fo.HasValue {
		fo.Required = false
	}

	return []cli.Flag{build(fo)}, nil
}

func identity(s string) (string, error) { return s, nil }

func splitList(s string) ([]string, error) { return strings.Split(s, ","), nil }

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat64(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)

	return uint16(v), err
}

func envSources(opts flagOptionsCommon) cli.ValueSourceChain {
	if opts.DisableEnv {
		return cli.ValueSourceChain{}
	}

	return cli.EnvVars(opts.Env)
}

func stringFlag(opts flagOptions[string]) cli.Flag {
	flag := &cli.StringFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func stringSliceFlag(opts flagOptions[[]string]) cli.Flag {
	flag := &cli.StringSliceFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func boolFlag(opts flagOptions[bool]) cli.Flag {
	flag := &cli.BoolFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func intFlag(opts flagOptions[int]) cli.Flag {
	flag := &cli.IntFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func int64Flag(opts flagOptions[int64]) cli.Flag {
	flag := &cli.Int64Flag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func uint16Flag(opts flagOptions[uint16]) cli.Flag {
	flag := &cli.Uint16Flag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func float64Flag(opts flagOptions[float64]) cli.Flag {
	flag := &cli.FloatFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

func durationFlag(opts flagOptions[time.Duration]) cli.Flag {
	flag := &cli.DurationFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden, Sources: envSources(opts.flagOptionsCommon)}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	return flag
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
