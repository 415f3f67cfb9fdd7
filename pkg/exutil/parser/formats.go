package parser

import (
	"strings"

	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/xuri/excelize/v2"
)

// Built-in number format ids that render a serial as a date or time.
var (
	builtInDateFormats = map[int]bool{
		14: true, 15: true, 16: true, 17: true,
		27: true, 28: true, 29: true, 30: true, 31: true,
		34: true, 35: true, 36: true,
		50: true, 51: true, 52: true, 53: true, 54: true, 57: true, 58: true,
	}
	builtInTimeFormats = map[int]bool{
		18: true, 19: true, 20: true, 21: true,
		32: true, 33: true,
		45: true, 46: true, 47: true,
		55: true, 56: true,
	}
	builtInDateTimeFormats = map[int]bool{
		22: true,
	}
)

// formatCache maps cell style ids to the value kind their number format
// implies.
type formatCache struct {
	f     *excelize.File
	kinds map[int]models.Kind
}

func newFormatCache(f *excelize.File) *formatCache {
	return &formatCache{f: f, kinds: make(map[int]models.Kind)}
}

// kind returns KindDate, KindDateTime or KindTime for temporal formats and
// KindNumber otherwise.
func (c *formatCache) kind(sheetName, cellName string) (models.Kind, error) {
	styleID, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return models.KindNumber, err
	}
	if k, ok := c.kinds[styleID]; ok {
		return k, nil
	}

	kind := models.KindNumber
	style, err := c.f.GetStyle(styleID)
	if err == nil && style != nil {
		if style.CustomNumFmt != nil {
			kind = classifyFormat(*style.CustomNumFmt)
		} else {
			kind = classifyBuiltIn(style.NumFmt)
		}
	}
	c.kinds[styleID] = kind
	return kind, nil
}

func classifyBuiltIn(id int) models.Kind {
	switch {
	case builtInDateFormats[id]:
		return models.KindDate
	case builtInTimeFormats[id]:
		return models.KindTime
	case builtInDateTimeFormats[id]:
		return models.KindDateTime
	}
	return models.KindNumber
}

// classifyFormat inspects the first section of a custom format code such
// as "yyyy-mm-dd hh:mm".
func classifyFormat(code string) models.Kind {
	section, _, _ := strings.Cut(code, ";")

	var b strings.Builder
	var bracket strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(section); i++ {
		ch := section[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			if ch != ']' {
				bracket.WriteByte(ch)
				continue
			}
			inBracket = false
			// Elapsed-time tokens such as [h] and [mm] count as time.
			if elapsed := bracket.String(); elapsed != "" && strings.Trim(elapsed, "hHmMsS") == "" {
				b.WriteByte('h')
			}
			bracket.Reset()
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++ // skip the escaped or padding character
		default:
			b.WriteByte(ch)
		}
	}
	tokens := strings.ToLower(b.String())

	hasDate := strings.ContainsAny(tokens, "yd")
	hasTime := strings.ContainsAny(tokens, "hs") || strings.Contains(tokens, "am/pm")
	switch {
	case hasDate && hasTime:
		return models.KindDateTime
	case hasDate:
		return models.KindDate
	case hasTime:
		return models.KindTime
	case strings.Contains(tokens, "m"):
		return models.KindDate
	}
	return models.KindNumber
}
