package domain

// Language selects the output language for generated content.
type Language string

const (
	LangEnglish Language = "en"
	LangSinhala Language = "si"
	LangTamil   Language = "ta"
)

// Languages lists all supported languages in display order.
var Languages = []Language{LangEnglish, LangSinhala, LangTamil}

// Name returns the English name of the language, used in prompts.
func (l Language) Name() string {
	switch l {
	case LangSinhala:
		return "Sinhala"
	case LangTamil:
		return "Tamil"
	default:
		return "English"
	}
}

// Label returns the native-script label shown in the UI.
func (l Language) Label() string {
	switch l {
	case LangSinhala:
		return "සිංහල"
	case LangTamil:
		return "தமிழ்"
	default:
		return "English"
	}
}

// IsValid reports whether l is a known language code.
func (l Language) IsValid() bool {
	switch l {
	case LangEnglish, LangSinhala, LangTamil:
		return true
	}
	return false
}

// Subject is one of the fixed syllabus subjects.
type Subject string

// Subjects lists the supported subjects in display order.
var Subjects = []Subject{
	"Science",
	"Mathematics",
	"History",
	"Geography",
	"English",
	"Information Technology",
	"Civics",
	"Sinhala / Tamil Literature",
}

// IsValid reports whether s is a known subject.
func (s Subject) IsValid() bool {
	for _, v := range Subjects {
		if s == v {
			return true
		}
	}
	return false
}

// Grade is the student's school year level.
type Grade string

// Grades lists the supported grades, 6 through 13.
var Grades = []Grade{
	"Grade 6", "Grade 7", "Grade 8", "Grade 9",
	"Grade 10", "Grade 11", "Grade 12", "Grade 13",
}

// IsValid reports whether g is a known grade.
func (g Grade) IsValid() bool {
	for _, v := range Grades {
		if g == v {
			return true
		}
	}
	return false
}
