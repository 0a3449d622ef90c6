// Command noiseinfo prints reference tables for environmental noise
// rating: the canonical acoustic descriptors, the day-evening-night
// periods, and the sound-character adjustments.
//
// Usage:
//
//	noiseinfo [flags] [section ...]
//
// Without arguments it prints every section.
//
// Examples:
//
//	noiseinfo descriptors
//	noiseinfo periods adjustments
//	noiseinfo -day 55 -evening 50 -night 45
//	noiseinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ciembor/iso-1996/descriptor"
	"github.com/ciembor/iso-1996/part1"
)

type sectionEntry struct {
	name  string
	print func(io.Writer) error
}

var registry = []sectionEntry{
	{"descriptors", printDescriptors},
	{"periods", printPeriods},
	{"adjustments", printAdjustments},
}

func main() {
	day := flag.Float64("day", math.NaN(), "day period level in dB for an Lden computation")
	evening := flag.Float64("evening", math.NaN(), "evening period level in dB for an Lden computation")
	night := flag.Float64("night", math.NaN(), "night period level in dB for an Lden computation")
	all := flag.Bool("all", false, "show all sections")
	list := flag.Bool("list", false, "list available section names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: noiseinfo [flags] [section ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints reference tables for environmental noise rating.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints every section.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  noiseinfo descriptors\n")
		fmt.Fprintf(os.Stderr, "  noiseinfo -day 55 -evening 50 -night 45\n")
		fmt.Fprintf(os.Stderr, "  noiseinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	ldenFlags := countSet(*day, *evening, *night)
	if ldenFlags != 0 && ldenFlags != 3 {
		fmt.Fprintf(os.Stderr, "error: -day, -evening and -night must be given together\n")
		os.Exit(1)
	}
	if ldenFlags == 3 {
		fmt.Printf("Lden = %.1f dB\n", part1.DayEveningNightLevel(*day, *evening, *night))
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching sections\n")
		os.Exit(1)
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Println()
		}
		if err := e.print(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to print %s: %v\n", e.name, err)
			os.Exit(1)
		}
	}
}

// countSet counts how many of the values are actually given (not NaN).
func countSet(vs ...float64) int {
	n := 0
	for _, v := range vs {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []sectionEntry {
	byName := make(map[string]sectionEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []sectionEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown section %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printDescriptors(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Symbol\tWeighting\tDescription\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t---------\t-----------\n"); err != nil {
		return err
	}
	for _, d := range descriptor.Canonical() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Metric, d.Weighting, d.Description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printPeriods(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Period\tHours\tPenalty [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t------------\n"); err != nil {
		return err
	}
	for _, p := range []descriptor.Period{descriptor.PeriodDay, descriptor.PeriodEvening, descriptor.PeriodNight} {
		hours := p.Hours()
		span := fmt.Sprintf("%02d:00-%02d:00", hours[0], (hours[len(hours)-1]+1)%24)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%g\n", p, span, p.Penalty()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printAdjustments(w io.Writer) error {
	rows := []struct {
		character string
		condition string
		value     float64
	}{
		{"tonal", "not audible", part1.TonalAdjustment(false, false)},
		{"tonal", "audible", part1.TonalAdjustment(true, false)},
		{"tonal", "prominent", part1.TonalAdjustment(true, true)},
		{"impulsive", "not audible", part1.ImpulsiveAdjustment(false, false)},
		{"impulsive", "audible", part1.ImpulsiveAdjustment(true, false)},
		{"impulsive", "distinct", part1.ImpulsiveAdjustment(true, true)},
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Character\tCondition\tK [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---------\t---------\t------\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%g\n", r.character, r.condition, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
