package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// localeName holds presentation metadata for a locale code. It plays no part
// in matching or formatting.
type localeName struct {
	native  string
	english string
}

// localeNames maps canonical locale codes to display names.
var localeNames = map[string]localeName{
	"af_ZA": {"Afrikaans", "Afrikaans"},
	"ar_AR": {"العربية", "Arabic"},
	"bg_BG": {"Български", "Bulgarian"},
	"bn_IN": {"বাংলা", "Bengali"},
	"bs_BA": {"Bosanski", "Bosnian"},
	"ca_ES": {"Català", "Catalan"},
	"cs_CZ": {"Čeština", "Czech"},
	"cy_GB": {"Cymraeg", "Welsh"},
	"da_DK": {"Dansk", "Danish"},
	"de_DE": {"Deutsch", "German"},
	"el_GR": {"Ελληνικά", "Greek"},
	"en_GB": {"English (UK)", "English (UK)"},
	"en_US": {"English (US)", "English (US)"},
	"es_ES": {"Español (España)", "Spanish (Spain)"},
	"es_LA": {"Español", "Spanish"},
	"et_EE": {"Eesti", "Estonian"},
	"eu_ES": {"Euskara", "Basque"},
	"fa_IR": {"فارسی", "Persian"},
	"fi_FI": {"Suomi", "Finnish"},
	"fr_CA": {"Français (Canada)", "French (Canada)"},
	"fr_FR": {"Français", "French"},
	"ga_IE": {"Gaeilge", "Irish"},
	"gl_ES": {"Galego", "Galician"},
	"he_IL": {"עברית", "Hebrew"},
	"hi_IN": {"हिन्दी", "Hindi"},
	"hr_HR": {"Hrvatski", "Croatian"},
	"hu_HU": {"Magyar", "Hungarian"},
	"id_ID": {"Bahasa Indonesia", "Indonesian"},
	"is_IS": {"Íslenska", "Icelandic"},
	"it_IT": {"Italiano", "Italian"},
	"ja_JP": {"日本語", "Japanese"},
	"ko_KR": {"한국어", "Korean"},
	"lt_LT": {"Lietuvių", "Lithuanian"},
	"lv_LV": {"Latviešu", "Latvian"},
	"mk_MK": {"Македонски", "Macedonian"},
	"ml_IN": {"മലയാളം", "Malayalam"},
	"ms_MY": {"Bahasa Melayu", "Malay"},
	"nb_NO": {"Norsk (bokmål)", "Norwegian (bokmal)"},
	"nl_NL": {"Nederlands", "Dutch"},
	"nn_NO": {"Norsk (nynorsk)", "Norwegian (nynorsk)"},
	"pa_IN": {"ਪੰਜਾਬੀ", "Punjabi"},
	"pl_PL": {"Polski", "Polish"},
	"pt_BR": {"Português (Brasil)", "Portuguese (Brazil)"},
	"pt_PT": {"Português (Portugal)", "Portuguese (Portugal)"},
	"ro_RO": {"Română", "Romanian"},
	"ru_RU": {"Русский", "Russian"},
	"sk_SK": {"Slovenčina", "Slovak"},
	"sl_SI": {"Slovenščina", "Slovenian"},
	"sq_AL": {"Shqip", "Albanian"},
	"sr_RS": {"Српски", "Serbian"},
	"sv_SE": {"Svenska", "Swedish"},
	"sw_KE": {"Kiswahili", "Swahili"},
	"ta_IN": {"தமிழ்", "Tamil"},
	"te_IN": {"తెలుగు", "Telugu"},
	"th_TH": {"ภาษาไทย", "Thai"},
	"tl_PH": {"Filipino", "Filipino"},
	"tr_TR": {"Türkçe", "Turkish"},
	"uk_UA": {"Українська", "Ukrainian"},
	"vi_VN": {"Tiếng Việt", "Vietnamese"},
	"zh_CN": {"中文(简体)", "Chinese (Simplified)"},
	"zh_HK": {"中文(香港)", "Chinese (Hong Kong)"},
	"zh_TW": {"中文(台灣)", "Chinese (Taiwan)"},
}

// rtlPrefixes marks language prefixes written right to left.
var rtlPrefixes = []string{"fa", "ar", "he"}

// displayNames returns the native and English display names for a code.
// Codes outside the static table fall back to CLDR display names when the
// code parses as a language tag, and to "Unknown" otherwise.
func displayNames(code string) (native, english string) {
	if name, ok := localeNames[code]; ok {
		return name.native, name.english
	}

	if tag, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err == nil {
		native = display.Self.Name(tag)
		english = display.English.Tags().Name(tag)
		if native != "" || english != "" {
			if native == "" {
				native = english
			}
			if english == "" {
				english = native
			}
			return native, english
		}
	}

	return "Unknown", "Unknown"
}

func isRTL(code string) bool {
	for _, prefix := range rtlPrefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}
