package proxy

import (
	"fmt"
	"strings"

	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const upperhex = "0123456789ABCDEF"

// ContentDisposition собирает "attachment" с двумя именами: ASCII запасное для старых клиентов
// и filename* (RFC 5987) с исходным именем в percent-encoding UTF-8.
func ContentDisposition(filename string) string {
	if strings.TrimSpace(filename) == "" {
		filename = DefaultFileName
	}

	fallback := utils.ASCIIFileName(filename, DefaultFileName)

	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encodeExtValue(filename))
}

// encodeExtValue кодирует всё, кроме attr-char из RFC 5987
func encodeExtValue(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)

			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
