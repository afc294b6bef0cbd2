package utils

import (
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var invalidFileNameChars = regexp.MustCompile(`[\/\?<>\\:\*\|"]`)

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

// StringPtr возвращает nil для пустой строки
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func SanitizeFileName(name string) string {
	// Replace invalid Windows characters with underscores
	return invalidFileNameChars.ReplaceAllString(name, "_")
}

// ASCIIFileName транслитерирует имя в ASCII: диакритика снимается ("Café" -> "Cafe"),
// всё, что не печатается в ASCII, заменяется на "_".
// Если от имени ничего осмысленного не осталось, возвращается fallback.
func ASCIIFileName(name, fallback string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder

	for _, r := range stripped {
		if r < 0x20 || r > 0x7e {
			b.WriteByte('_')

			continue
		}

		b.WriteRune(r)
	}

	res := strings.TrimSpace(SanitizeFileName(b.String()))
	if strings.Trim(res, "_. ") == "" {
		return fallback
	}

	return res
}

// CloseWithLog закрывает ресурс и логирует ошибку закрытия
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		Log.Error(err)
	}
}
