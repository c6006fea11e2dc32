package service

import (
	"fmt"
	"html"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

type ITextService interface {
	RemoveTags(input string) string
	RemoveLinks(input string) string
	StripHTML(input string) string
	TruncateText(input string, maxLength int) string
	FormatDate(t time.Time) string
	FormatFileSize(bytes int64) string
	IsValidURL(input string) bool
}

// TextService — форматирование и очистка текста для карточек панели.
type TextService struct{}

func NewTextService() *TextService {
	return &TextService{}
}

func (ts *TextService) RemoveTags(input string) string {
	re := regexp.MustCompile(`<[^>]*>`)
	return re.ReplaceAllString(html.UnescapeString(input), "")
}

func (ts *TextService) RemoveLinks(input string) string {
	re := regexp.MustCompile(`https?://[^\s]+`)
	return re.ReplaceAllString(input, "")
}

// StripHTML убирает разметку и ссылки из htmlDescription.
func (ts *TextService) StripHTML(input string) string {
	return strings.TrimSpace(ts.RemoveLinks(ts.RemoveTags(input)))
}

// TruncateText обрезает текст до maxLength, добавляя многоточие.
func (ts *TextService) TruncateText(input string, maxLength int) string {
	if maxLength <= 0 || len(input) <= maxLength {
		return input
	}
	return input[:maxLength] + "..."
}

func (ts *TextService) FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}

func (ts *TextService) FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%s %s", trimZeros(value), sizes[i])
}

func trimZeros(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")
	return formatted
}

func (ts *TextService) IsValidURL(input string) bool {
	parsed, err := url.Parse(input)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
