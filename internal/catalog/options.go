package catalog

// Option локализованный элемент статического справочника (причины визита,
// форматы встречи). Справочники консультируются синхронно по идентификатору.
type Option struct {
	ID    string
	Label string
}

// Поддерживаемые локали; DefaultLocale используется для неизвестных значений
const (
	LocaleES      = "es"
	LocaleEN      = "en"
	DefaultLocale = LocaleES
)

var reasonLabels = map[string]map[string]string{
	LocaleES: {
		"fitting":      "Prueba de vestido",
		"rental":       "Alquiler",
		"purchase":     "Compra",
		"alterations":  "Arreglos y ajustes",
		"consultation": "Asesoría",
	},
	LocaleEN: {
		"fitting":      "Dress fitting",
		"rental":       "Rental",
		"purchase":     "Purchase",
		"alterations":  "Alterations",
		"consultation": "Consultation",
	},
}

var modeLabels = map[string]map[string]string{
	LocaleES: {
		"in_person":  "Presencial",
		"video_call": "Videollamada",
	},
	LocaleEN: {
		"in_person":  "In person",
		"video_call": "Video call",
	},
}

// Порядок показа фиксирован, map не гарантирует его
var reasonOrder = []string{"fitting", "rental", "purchase", "alterations", "consultation"}
var modeOrder = []string{"in_person", "video_call"}

// Reasons возвращает причины визита для указанной локали
func Reasons(locale string) []Option {
	return buildOptions(reasonOrder, reasonLabels, locale)
}

// Modes возвращает форматы встречи для указанной локали
func Modes(locale string) []Option {
	return buildOptions(modeOrder, modeLabels, locale)
}

// IsKnownReason проверяет, что идентификатор причины есть в справочнике
func IsKnownReason(id string) bool {
	_, ok := reasonLabels[DefaultLocale][id]
	return ok
}

// IsKnownMode проверяет, что идентификатор формата есть в справочнике
func IsKnownMode(id string) bool {
	_, ok := modeLabels[DefaultLocale][id]
	return ok
}

func buildOptions(order []string, labels map[string]map[string]string, locale string) []Option {
	localized, ok := labels[locale]
	if !ok {
		localized = labels[DefaultLocale]
	}

	out := make([]Option, 0, len(order))
	for _, id := range order {
		out = append(out, Option{ID: id, Label: localized[id]})
	}
	return out
}
