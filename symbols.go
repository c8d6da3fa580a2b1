package hijrah

import (
	"time"

	"golang.org/x/text/language"
)

// symbols holds the locale specific text used when formatting and parsing
// textual fields.
type symbols struct {
	months      [12]string
	shortMonths [12]string
	weekdays    [7]string // indexed by time.Weekday
	shortDays   [7]string
	eras        [2]string // short, long
	ampm        [2]string
}

var englishSymbols = &symbols{
	months: [12]string{
		"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
		"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Shaaban",
		"Ramadan", "Shawwal", "Dhu al-Qidah", "Dhu al-Hijjah",
	},
	shortMonths: [12]string{
		"Muh.", "Saf.", "Rab. I", "Rab. II", "Jum. I", "Jum. II",
		"Raj.", "Sha.", "Ram.", "Shaw.", "Dhu. I", "Dhu. II",
	},
	weekdays:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	shortDays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	eras:      [2]string{"AH", "Anno Hegirae"},
	ampm:      [2]string{"AM", "PM"},
}

var arabicSymbols = &symbols{
	months: [12]string{
		"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
		"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
		"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
	},
	shortMonths: [12]string{
		"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
		"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
		"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
	},
	weekdays:  [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
	shortDays: [7]string{"أحد", "اثنين", "ثلاثاء", "أربعاء", "خميس", "جمعة", "سبت"},
	eras:      [2]string{"هـ", "بعد الهجرة"},
	ampm:      [2]string{"ص", "م"},
}

var (
	supportedLocales = []language.Tag{language.English, language.Arabic}
	localeMatcher    = language.NewMatcher(supportedLocales)
	localeSymbols    = []*symbols{englishSymbols, arabicSymbols}
)

// symbolsFor returns the closest supported symbol table for tag, falling
// back to English.
func symbolsFor(tag language.Tag) *symbols {
	_, i, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return englishSymbols
	}
	return localeSymbols[i]
}

// Name returns the month name in the language closest to tag.
func (m Month) Name(tag language.Tag) string {
	if !m.Valid() {
		return m.String()
	}
	return symbolsFor(tag).months[m-1]
}

// ShortName returns the abbreviated month name in the language closest to tag.
func (m Month) ShortName(tag language.Tag) string {
	if !m.Valid() {
		return m.String()
	}
	return symbolsFor(tag).shortMonths[m-1]
}

// WeekdayName returns the name of wd in the language closest to tag.
func WeekdayName(wd time.Weekday, tag language.Tag) string {
	return symbolsFor(tag).weekdays[wd]
}
