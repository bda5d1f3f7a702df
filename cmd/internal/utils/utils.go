package utils

import (
	"reflect"
	"strings"
	"time"
)

const epochLayout = "2006-01-02T15:04:05.000Z07:00"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(epochLayout)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// NextUpdate returns the timestamp for a mutation of a record last touched at prev.
// The result is always greater than prev, even when the clock has not moved.
func NextUpdate(prev int64) int64 {
	now := NowUTC()
	if now <= prev {
		return prev + 1
	}
	return now
}

// ContainsPattern builds a case-insensitive LIKE pattern matching s anywhere,
// to be used with ESCAPE '\'.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
