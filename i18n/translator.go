package i18n

import "strings"

// Translator retrieves localized messages for issue codes.
// data provides optional values to embed in the message (for example,
// "expected", "actual", "row" or "token").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":    "invalid type",
		"required":        "required property missing",
		"invalid_enum":    "unknown enum value",
		"invalid_format":  "malformed value",
		"invalid_length":  "wrong number of elements",
		"duplicate_key":   "duplicate key",
		"parse_error":     "parse error",
		"truncated":       "truncated",
		"not_found":       "not found",
		"length_mismatch": "suffix count does not match rule rows: expected={expected}, actual={actual}",
		"suffix_mismatch": "suffix '{token}' at row {row} is not allowed",
		"dir_not_allowed": "directory is not in the run list",
		"apply_failed":    "failed to apply settings",
		"summary":         "{applied} of {total} textures applied, {failed} failed",
	},
	"ja": {
		"invalid_type":    "型が不正です",
		"required":        "必須プロパティが不足しています",
		"invalid_enum":    "未知の列挙値です",
		"invalid_format":  "値の形式が不正です",
		"invalid_length":  "要素数が不正です",
		"duplicate_key":   "キーが重複しています",
		"parse_error":     "解析エラー",
		"truncated":       "打ち切られました",
		"not_found":       "見つかりません",
		"length_mismatch": "サフィックス数と規則行数が一致しません。expected={expected}, actual={actual}",
		"suffix_mismatch": "行 {row} のサフィックス '{token}' は許容値に含まれていません",
		"dir_not_allowed": "実行対象ディレクトリ外です",
		"apply_failed":    "設定の反映に失敗しました",
		"summary":         "{total} 件中 {applied} 件を反映、{failed} 件失敗",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
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
