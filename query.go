package jdate

import (
	"fmt"
	"strconv"
	"strings"
)

// queryPattern lists the fields GetDate decomposes, in DateInfo order.
const queryPattern = `F_G_i_j_l_n_s_w_Y_z`

// DateInfo is the Jalali field set of one instant.
type DateInfo struct {
	Seconds   int    `json:"seconds" yaml:"seconds"`
	Minutes   int    `json:"minutes" yaml:"minutes"`
	Hours     int    `json:"hours" yaml:"hours"`
	MonthDay  int    `json:"mday" yaml:"mday"`
	WeekDay   int    `json:"wday" yaml:"wday"`
	Month     int    `json:"mon" yaml:"mon"`
	Year      int    `json:"year" yaml:"year"`
	YearDay   int    `json:"yday" yaml:"yday"`
	Weekday   string `json:"weekday" yaml:"weekday"`
	MonthName string `json:"month" yaml:"month"`
	Epoch     int64  `json:"epoch" yaml:"epoch"`
}

// Date returns the Jalali year, month and day.
func (d DateInfo) Date() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.MonthDay}
}

// GetDate decomposes epoch by rendering it through the date vocabulary in
// Latin digits and reading the fields back.
func (f *Formatter) GetDate(epoch int64) (DateInfo, error) {
	latin := *f
	latin.script = ScriptLatin

	out := latin.Format(queryPattern, epoch)
	parts := strings.Split(out, "_")
	if len(parts) != 10 {
		return DateInfo{}, fmt.Errorf("jdate: decompose %q: got %d fields, want 10", out, len(parts))
	}

	info := DateInfo{
		MonthName: parts[0],
		Weekday:   parts[4],
		Epoch:     epoch,
	}
	numbers := []struct {
		dst *int
		src string
	}{
		{&info.Hours, parts[1]},
		{&info.Minutes, parts[2]},
		{&info.MonthDay, parts[3]},
		{&info.Month, parts[5]},
		{&info.Seconds, parts[6]},
		{&info.WeekDay, parts[7]},
		{&info.Year, parts[8]},
		{&info.YearDay, parts[9]},
	}
	for _, n := range numbers {
		v, err := strconv.Atoi(n.src)
		if err != nil {
			return DateInfo{}, fmt.Errorf("jdate: decompose %q: %w", out, err)
		}
		*n.dst = v
	}
	return info, nil
}
