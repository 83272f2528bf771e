package timeago

// English returns the default table.
func English() *Strings {
	return &Strings{
		Locale:        "en",
		Direction:     LTR,
		SuffixAgo:     AffixText("ago"),
		SuffixFromNow: AffixText("from now"),
		Units: map[Unit]Entry{
			Seconds: Text("less than a minute"),
			Minute:  Text("a minute"),
			Minutes: Text("%d minutes"),
			Hour:    Text("an hour"),
			Hours:   Text("%d hours"),
			Day:     Text("a day"),
			Days:    Text("%d days"),
			Month:   Text("a month"),
			Months:  Text("%d months"),
			Year:    Text("a year"),
			Years:   Text("%d years"),
		},
	}
}

// Arabic returns a table using dual and few forms. The templates carry
// "منذ" themselves so both affixes stay empty.
func Arabic() *Strings {
	return &Strings{
		Locale:    "ar",
		Direction: RTL,
		Units: map[Unit]Entry{
			Seconds: Text("منذ أقل من دقيقة"),
			Minute:  Text("منذ دقيقة"),
			Minutes: Func(MustRangeResolver(
				RangeForm{Spec: "2", Template: "منذ دقيقتين"},
				RangeForm{Spec: "from 3 to 10", Template: "منذ %d دقائق"},
				RangeForm{Spec: InfinitySpec, Template: "منذ %d دقيقة"},
			)),
			Hour: Text("منذ ساعة"),
			Hours: Func(MustRangeResolver(
				RangeForm{Spec: "2", Template: "منذ ساعتين"},
				RangeForm{Spec: "from 3 to 10", Template: "منذ %d ساعات"},
				RangeForm{Spec: InfinitySpec, Template: "منذ %d ساعة"},
			)),
			Day: Text("امس"),
			Days: Func(MustRangeResolver(
				RangeForm{Spec: "2", Template: "منذ يومين"},
				RangeForm{Spec: "from 3 to 7", Template: "منذ %d أيام"},
				RangeForm{Spec: InfinitySpec, Template: "منذ %d يومًا"},
			)),
			Month: Text("منذ شهر"),
			Months: Func(MustRangeResolver(
				RangeForm{Spec: "2", Template: "منذ شهرين"},
				RangeForm{Spec: "from 3 to 10", Template: "منذ %d أشهر"},
				RangeForm{Spec: InfinitySpec, Template: "منذ %d شهرًا"},
			)),
			Year: Text("منذ سنة"),
			Years: Func(MustRangeResolver(
				RangeForm{Spec: "2", Template: "منذ سنتين"},
				RangeForm{Spec: "from 3 to 10", Template: "منذ %d سنوات"},
				RangeForm{Spec: InfinitySpec, Template: "منذ %d سنة"},
			)),
		},
	}
}

func defaultTables() Tables {
	return Tables{
		"en": English(),
		"ar": Arabic(),
	}
}
