// Command tenders prints the filtered tender table to the terminal.
//
// Usage: tenders [category] [min-date YYYY-MM-DD]
// Source path comes from TENDERS_SOURCE or config.yaml.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/david/tender-board/internal/config"
	"github.com/david/tender-board/internal/filter"
	"github.com/david/tender-board/internal/ingest"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}

	params := filter.Params{}
	if len(os.Args) > 1 {
		params.Category = os.Args[1]
	}
	if len(os.Args) > 2 {
		minDate, err := time.Parse("2006-01-02", os.Args[2])
		if err != nil {
			log.Fatalf("Invalid min date %q: %v", os.Args[2], err)
		}
		params.MinDate = minDate
	}

	now := time.Now()
	ds, err := ingest.Load(cfg.Source.Path, now, ingest.Options{
		RichEventProps:    cfg.Features.RichEventProps,
		UrgentWindowDays:  cfg.Features.UrgentWindowDays,
		TitleDisplayLimit: cfg.Features.TitleDisplayLimit,
	})
	if err != nil {
		log.Fatal(err)
	}

	res := filter.Apply(ds, params, now)
	rows := filter.Decorate(res.Rows, now)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Priority", "Title", "Deadline", "Days Left", "Organisation", "Location", "Link"})

	for _, row := range rows {
		link := ""
		if row.HasUsableLink() {
			link = row.Link
		}
		t.AppendRow(table.Row{
			row.PriorityLabel,
			ingest.TruncateTitle(row.Title, 60),
			row.DeadlineStr,
			row.DaysLeft,
			row.Organisation,
			row.ContractLocation,
			link,
		})
	}
	t.Render()

	urgency := filter.UrgencyCounts(rows, now)
	fmt.Printf("\n%d tenders", len(rows))
	for _, label := range filter.UrgencyLabels() {
		fmt.Printf("  %s: %d", label, urgency[label])
	}
	fmt.Println()
}
