package render

import (
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/xeonx/timeago"

	"helpdesk/internal/shared/dateformat"
	"helpdesk/internal/shared/markdown"
)

var registerOnce sync.Once

// RegisterFilters installs the template filters used by the ticket pages.
// pongo2 keeps a process-wide filter registry, so this is safe to call
// more than once.
func RegisterFilters(md markdown.Service) {
	registerOnce.Do(func() {
		pongo2.RegisterFilter("formatdate", filterFormatDate)
		pongo2.RegisterFilter("formatdatetime", filterFormatDateTime)
		pongo2.RegisterFilter("timeago", filterTimeAgo)
		pongo2.RegisterFilter("markdown", markdownFilter(md))
	})
}

// asTime coerces a template value into a time.Time. Strings go through
// the shared date parser; anything unparseable reports ok=false.
func asTime(in *pongo2.Value) (time.Time, bool) {
	switch v := in.Interface().(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return dateformat.Parse(v)
	default:
		return time.Time{}, false
	}
}

func filterFormatDate(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, ok := asTime(in)
	if !ok {
		return pongo2.AsValue(dateformat.InvalidDate), nil
	}
	return pongo2.AsValue(dateformat.FormatTimeDate(t)), nil
}

func filterFormatDateTime(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, ok := asTime(in)
	if !ok {
		return pongo2.AsValue(dateformat.InvalidDate), nil
	}
	return pongo2.AsValue(dateformat.FormatTimeDateTime(t)), nil
}

func filterTimeAgo(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, ok := asTime(in)
	if !ok {
		return pongo2.AsValue(dateformat.InvalidDate), nil
	}
	return pongo2.AsValue(timeago.English.Format(t)), nil
}

func markdownFilter(md markdown.Service) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		html, err := md.ToHTMLSanitized(in.String())
		if err != nil {
			// Fall back to the raw text, which pongo2 will escape.
			return pongo2.AsValue(in.String()), nil
		}
		return pongo2.AsSafeValue(html), nil
	}
}
