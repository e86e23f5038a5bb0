package models

// Task categories
const (
	TaskCategoryWork     TaskCategory = "work"
	TaskCategoryPersonal TaskCategory = "personal"
	TaskCategoryShopping TaskCategory = "shopping"
	TaskCategoryHealth   TaskCategory = "health"
	TaskCategoryOther    TaskCategory = "other"
)

// Task priorities
const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Recurrence intervals
const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Note colors
const (
	NoteColorDefault NoteColor = "default"
	NoteColorRed     NoteColor = "red"
	NoteColorOrange  NoteColor = "orange"
	NoteColorYellow  NoteColor = "yellow"
	NoteColorGreen   NoteColor = "green"
	NoteColorBlue    NoteColor = "blue"
	NoteColorPurple  NoteColor = "purple"
	NoteColorPink    NoteColor = "pink"
)

// Note categories
const (
	NoteCategoryPersonal  NoteCategory = "personal"
	NoteCategoryWork      NoteCategory = "work"
	NoteCategoryIdeas     NoteCategory = "ideas"
	NoteCategoryTodo      NoteCategory = "todo"
	NoteCategoryImportant NoteCategory = "important"
	NoteCategoryOther     NoteCategory = "other"
)

// Transaction types
const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Goal kinds
const (
	GoalBudget  GoalKind = "budget"
	GoalSavings GoalKind = "savings"
)

// Languages
const (
	LanguageTurkish Language = "tr"
	LanguageEnglish Language = "en"
)

var taskCategories = map[TaskCategory]bool{
	TaskCategoryWork:     true,
	TaskCategoryPersonal: true,
	TaskCategoryShopping: true,
	TaskCategoryHealth:   true,
	TaskCategoryOther:    true,
}

var taskPriorities = map[TaskPriority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

var recurrences = map[Recurrence]bool{
	RecurrenceNone:    true,
	RecurrenceDaily:   true,
	RecurrenceWeekly:  true,
	RecurrenceMonthly: true,
}

var noteColors = map[NoteColor]bool{
	NoteColorDefault: true,
	NoteColorRed:     true,
	NoteColorOrange:  true,
	NoteColorYellow:  true,
	NoteColorGreen:   true,
	NoteColorBlue:    true,
	NoteColorPurple:  true,
	NoteColorPink:    true,
}

var noteCategories = map[NoteCategory]bool{
	NoteCategoryPersonal:  true,
	NoteCategoryWork:      true,
	NoteCategoryIdeas:     true,
	NoteCategoryTodo:      true,
	NoteCategoryImportant: true,
	NoteCategoryOther:     true,
}

// ParseTaskCategory maps a raw value onto a known category, falling back
// to "other" for anything missing or unrecognized.
func ParseTaskCategory(s string) TaskCategory {
	if taskCategories[TaskCategory(s)] {
		return TaskCategory(s)
	}
	return TaskCategoryOther
}

// ParseTaskPriority falls back to "medium".
func ParseTaskPriority(s string) TaskPriority {
	if taskPriorities[TaskPriority(s)] {
		return TaskPriority(s)
	}
	return PriorityMedium
}

// ParseRecurrence falls back to "none".
func ParseRecurrence(s string) Recurrence {
	if recurrences[Recurrence(s)] {
		return Recurrence(s)
	}
	return RecurrenceNone
}

// ParseNoteColor falls back to "default".
func ParseNoteColor(s string) NoteColor {
	if noteColors[NoteColor(s)] {
		return NoteColor(s)
	}
	return NoteColorDefault
}

// ParseNoteCategory falls back to "personal".
func ParseNoteCategory(s string) NoteCategory {
	if noteCategories[NoteCategory(s)] {
		return NoteCategory(s)
	}
	return NoteCategoryPersonal
}

// ParseLanguage falls back to "tr", the app's original default.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageTurkish
}
