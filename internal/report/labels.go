package report

import (
	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/locale"
)

// Labels holds the fixed wording of a report in one language.
type Labels struct {
	Title        string
	Checklist    string
	Manager      string
	Source       string
	Language     string
	Model        string
	Date         string
	Score        string
	Summary      string
	Items        string
	Number       string
	Item         string
	Status       string
	Points       string
	Comment      string
	Evidence     string
	Objections   string
	Topics       string
	Essence      string
	Outcome      string
	Category     string
	ClientPhrase string
	ManagerReply string
	Handling     string
	Advice       string
	None         string
	Footer       string
	Statuses     map[model.ItemStatus]string
	Handlings    map[model.Handling]string
	Sources      map[model.Source]string
}

var labelsEN = Labels{
	Title:        "Call analysis report",
	Checklist:    "Checklist",
	Manager:      "Manager",
	Source:       "Source",
	Language:     "Language",
	Model:        "Model",
	Date:         "Date",
	Score:        "Score",
	Summary:      "Summary",
	Items:        "Checklist items",
	Number:       "#",
	Item:         "Item",
	Status:       "Status",
	Points:       "Points",
	Comment:      "Comment",
	Evidence:     "Evidence",
	Objections:   "Objections",
	Topics:       "Topics",
	Essence:      "Conversation essence",
	Outcome:      "Outcome",
	Category:     "Category",
	ClientPhrase: "Client phrase",
	ManagerReply: "Manager reply",
	Handling:     "Handling",
	Advice:       "Advice",
	None:         "None",
	Footer:       "Generated automatically by callaudit-srv",
	Statuses: map[model.ItemStatus]string{
		model.ItemStatusPassed:    "passed",
		model.ItemStatusFailed:    "failed",
		model.ItemStatusUncertain: "uncertain",
	},
	Handlings: map[model.Handling]string{
		model.HandlingHandled:   "handled",
		model.HandlingPartial:   "partially handled",
		model.HandlingUnhandled: "not handled",
	},
	Sources: map[model.Source]string{
		model.SourceCall:           "call",
		model.SourceCorrespondence: "correspondence",
	},
}

var labelsRU = Labels{
	Title:        "Отчёт по анализу звонка",
	Checklist:    "Чек-лист",
	Manager:      "Менеджер",
	Source:       "Источник",
	Language:     "Язык",
	Model:        "Модель",
	Date:         "Дата",
	Score:        "Оценка",
	Summary:      "Резюме",
	Items:        "Пункты чек-листа",
	Number:       "№",
	Item:         "Пункт",
	Status:       "Статус",
	Points:       "Баллы",
	Comment:      "Комментарий",
	Evidence:     "Цитаты",
	Objections:   "Возражения",
	Topics:       "Темы",
	Essence:      "Суть разговора",
	Outcome:      "Итог",
	Category:     "Категория",
	ClientPhrase: "Фраза клиента",
	ManagerReply: "Ответ менеджера",
	Handling:     "Отработка",
	Advice:       "Рекомендация",
	None:         "Нет",
	Footer:       "Отчёт сформирован автоматически callaudit-srv",
	Statuses: map[model.ItemStatus]string{
		model.ItemStatusPassed:    "выполнено",
		model.ItemStatusFailed:    "не выполнено",
		model.ItemStatusUncertain: "не определено",
	},
	Handlings: map[model.Handling]string{
		model.HandlingHandled:   "отработано",
		model.HandlingPartial:   "частично",
		model.HandlingUnhandled: "не отработано",
	},
	Sources: map[model.Source]string{
		model.SourceCall:           "звонок",
		model.SourceCorrespondence: "переписка",
	},
}

// LabelsFor picks the labels for a language code; unknown languages get English.
func LabelsFor(lang string) Labels {
	if locale.ParseLang(lang) == locale.RU {
		return labelsRU
	}
	return labelsEN
}

func lookup[K ~string](m map[K]string, k K) string {
	if v, ok := m[k]; ok {
		return v
	}
	return string(k)
}
