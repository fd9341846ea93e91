// Package i18n provides localized messages for issue codes.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalogs = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type",
		"required":              "required property missing",
		"unknown_key":           "unknown key",
		"too_small":             "value below minimum",
		"too_short":             "too few items",
		"invalid_enum":          "value is not one of the allowed members",
		"invalid_format":        "invalid format",
		"naive_timestamp":       "timestamp has no timezone offset",
		"discriminator_missing": "discriminator missing",
		"discriminator_unknown": "unknown discriminator value",
		"no_shape_matched":      "value matches none of the allowed shapes",
		"parse_error":           "parse error",
		"truncated":             "truncated",
		"schema_violation":      "schema violates the metaschema",
		"duplicate_key":         "duplicate object key",
	},
	"nb": {
		"invalid_type":          "ugyldig type",
		"required":              "påkrevd felt mangler",
		"unknown_key":           "ukjent felt",
		"too_small":             "verdien er under minimum",
		"too_short":             "for få elementer",
		"invalid_enum":          "verdien er ikke blant de tillatte verdiene",
		"invalid_format":        "ugyldig format",
		"naive_timestamp":       "tidsstempelet mangler tidssone",
		"discriminator_missing": "diskriminator mangler",
		"discriminator_unknown": "ukjent diskriminatorverdi",
		"no_shape_matched":      "verdien passer ikke med noen av de tillatte formene",
		"parse_error":           "tolkningsfeil",
		"truncated":             "avkortet",
		"schema_violation":      "skjemaet bryter med metaskjemaet",
		"duplicate_key":         "feltet er oppgitt flere ganger",
	},
}

var supported = []language.Tag{language.English, language.MustParse("nb")}

var matcher = language.NewMatcher(supported)

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalogs[t.lang][code]
	if !ok {
		msg, ok = catalogs["en"][code]
	}
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language. lang is a BCP 47 tag
// or an Accept-Language style list; unsupported languages fall back to English.
func SetLanguage(lang string) {
	_, idx := language.MatchStrings(matcher, lang)
	base, _ := supported[idx].Base()
	currentTranslator = dictTranslator{lang: base.String()}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
