package hijrah

import (
	"testing"
	"time"
)

func BenchmarkNewDate(b *testing.B) {
	for b.Loop() {
		_, _ = NewDate(1443, 9, 5)
	}
}

func BenchmarkDateOfEpochDay(b *testing.B) {
	for b.Loop() {
		_, _ = DateOfEpochDay(19089)
	}
}

func BenchmarkDatePlusMonths(b *testing.B) {
	d := hd(1443, 1, 30)
	for b.Loop() {
		d.PlusMonths(13)
	}
}

func BenchmarkDatesUntil(b *testing.B) {
	start := hd(1443, 1, 1)
	end := start.PlusDays(354)
	for b.Loop() {
		seq, _ := start.DatesUntil(end)
		for range seq {
		}
	}
}

func BenchmarkZonedDateTimeOf(b *testing.B) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		b.Skip(err)
	}
	dt := hd(1443, 4, 1).AtStartOfDay().PlusMinutes(90)
	for b.Loop() {
		ZonedDateTimeOf(dt, ny)
	}
}

func BenchmarkFormatISODateTime(b *testing.B) {
	dt := hd(1443, 9, 5).AtStartOfDay().PlusNanos(50_829_120_000_000)
	for b.Loop() {
		_, _ = ISODateTime.Format(dt)
	}
}

func BenchmarkParseISOZonedDateTime(b *testing.B) {
	for b.Loop() {
		_, _ = ParseZonedDateTime("1443-01-01T00:00:00+03:00[Asia/Riyadh]")
	}
}

func BenchmarkCompilePattern(b *testing.B) {
	for b.Loop() {
		_, _ = compilePattern("EEEE d MMMM uuuu G [HH:mm:ss.FFF xxx]")
	}
}
