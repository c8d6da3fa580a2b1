package hijrah_test

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	hijrah "github.com/rabitt1ove/hijrah-datetime"
)

func ExampleNewDate() {
	d, err := hijrah.NewDate(1443, 1, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Weekday(), d.IsLeapYear())
	// Output: 1443-01-01 Tuesday false
}

func ExampleDateFromTime() {
	d, err := hijrah.DateFromTime(time.Date(2022, time.April, 3, 12, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Month())
	// Output: 1443-09-01 Ramadan
}

func ExampleDate_PlusMonths() {
	d, _ := hijrah.NewDate(1443, 1, 30)
	fmt.Println(d.PlusMonths(1))
	fmt.Println(d.PlusMonths(2))
	// Output:
	// 1443-02-29
	// 1443-03-30
}

func ExampleDate_DatesUntil() {
	start, _ := hijrah.NewDate(1443, 1, 29)
	dates, err := start.DatesUntil(start.PlusDays(3))
	if err != nil {
		panic(err)
	}
	for d := range dates {
		fmt.Println(d)
	}
	// Output:
	// 1443-01-29
	// 1443-01-30
	// 1443-02-01
}

func ExampleDateTime_AtZone() {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	// 02:30 does not exist on 1442-07-30 (2021-03-14) in New York.
	dt, _ := hijrah.NewDateTime(1442, 7, 30, 2, 30)
	fmt.Println(dt.AtZone(ny))
	// Output: 1442-07-30T03:30:00-04:00[America/New_York]
}

func ExampleZonedDateTime_WithLaterOffsetAtOverlap() {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	// 01:30 happens twice on 1443-04-01 (2021-11-07) in New York.
	dt, _ := hijrah.NewDateTime(1443, 4, 1, 1, 30)
	z := dt.AtZone(ny)
	fmt.Println(z)
	fmt.Println(z.WithLaterOffsetAtOverlap())
	// Output:
	// 1443-04-01T01:30:00-04:00[America/New_York]
	// 1443-04-01T01:30:00-05:00[America/New_York]
}

func ExampleBuildDateFormatter() {
	f, err := hijrah.BuildDateFormatter("EEEE d MMMM uuuu G")
	if err != nil {
		panic(err)
	}
	d, _ := hijrah.NewDate(1443, 9, 5)
	en, _ := d.Format(f)
	ar, _ := d.Format(f.WithLocale(language.Arabic))
	fmt.Println(en)
	fmt.Println(ar)
	// Output:
	// Thursday 5 Ramadan 1443 AH
	// الخميس 5 رمضان 1443 هـ
}

func ExampleParseZonedDateTime() {
	z, err := hijrah.ParseZonedDateTime("1443-01-01T00:00:00+03:00[Asia/Riyadh]")
	if err != nil {
		panic(err)
	}
	fmt.Println(z.Time().UTC())
	// Output: 2021-08-09 21:00:00 +0000 UTC
}

func ExampleNew() {
	umalqura := hijrah.MustTableChronology(hijrah.TableConfig{
		ID:        "Hijrah-umalqura",
		Type:      "islamic-umalqura",
		Version:   "example",
		ISOStart:  "2021-08-09",
		StartYear: 1443,
		MonthLengths: [][12]int{
			{30, 29, 30, 30, 29, 30, 29, 30, 29, 29, 30, 29},
		},
	})
	clock := hijrah.FixedClock(time.Date(2021, time.August, 9, 12, 0, 0, 0, time.UTC))
	cal := hijrah.New(hijrah.WithChronology(umalqura), hijrah.WithClock(clock))

	fmt.Println(cal.Today())
	fmt.Println(hijrah.New(hijrah.WithClock(clock)).Today())
	// Output:
	// 1443-01-01
	// 1442-12-30
}
