package hijrah

// civilEpochDay is the epoch day of 1 Muharram 1 AH in the civil (Friday
// epoch) reckoning, Julian 622-07-16.
const civilEpochDay = -492148

const (
	civilMinYear = 1
	civilMaxYear = 9999
)

type civilChronology struct {
	id string
}

// Civil is the tabular Islamic calendar: a 30 year cycle with 11 leap years,
// alternating 30 and 29 day months and a 30 day Dhu al-Hijjah in leap years.
// It is deterministic and supports years 1 through 9999.
var Civil Chronology = &civilChronology{id: "Hijrah-civil"}

func (c *civilChronology) ID() string { return c.id }

func (c *civilChronology) YearRange() (int, int) { return civilMinYear, civilMaxYear }

func civilLeap(year int) bool {
	return floorMod(14+11*int64(year), 30) < 11
}

func civilYearStart(year int) int64 {
	y := int64(year)
	return (y-1)*354 + floorDiv(3+11*y, 30) + civilEpochDay
}

func civilMonthLength(year, month int) int {
	if month%2 == 1 || (month == 12 && civilLeap(year)) {
		return 30
	}
	return 29
}

func (c *civilChronology) LengthOfMonth(year, month int) (int, error) {
	if err := checkYear(c, year); err != nil {
		return 0, err
	}
	if err := checkRange(FieldMonth, int64(month), 1, 12); err != nil {
		return 0, err
	}
	return civilMonthLength(year, month), nil
}

func (c *civilChronology) LengthOfYear(year int) (int, error) {
	if err := checkYear(c, year); err != nil {
		return 0, err
	}
	if civilLeap(year) {
		return 355, nil
	}
	return 354, nil
}

func (c *civilChronology) EpochDay(f Fields) (int64, error) {
	if err := checkFields(c, f); err != nil {
		return 0, err
	}
	m := int64(f.Month - 1)
	return civilYearStart(f.Year) + (59*m+1)/2 + int64(f.Day) - 1, nil
}

func (c *civilChronology) Fields(epochDay int64) (Fields, error) {
	lo, hi := civilYearStart(civilMinYear), civilYearStart(civilMaxYear+1)-1
	if err := checkRange(FieldEpochDay, epochDay, lo, hi); err != nil {
		return Fields{}, err
	}
	year := int(floorDiv(30*(epochDay-civilEpochDay)+10646, 10631))
	for epochDay < civilYearStart(year) {
		year--
	}
	for epochDay >= civilYearStart(year+1) {
		year++
	}
	doy := int(epochDay - civilYearStart(year))
	month := 1
	for ; month < 12; month++ {
		n := civilMonthLength(year, month)
		if doy < n {
			break
		}
		doy -= n
	}
	return Fields{Year: year, Month: month, Day: doy + 1}, nil
}
