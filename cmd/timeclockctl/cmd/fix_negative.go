package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/timeclock/internal/config"
	dbpkg "github.com/BruksfildServices01/timeclock/internal/db"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

var fixNegativeDryRun bool

// Duraciones negativas heredadas: un admin cerró a mano con formato
// HH:MM (salida = HH:MM:00) y la entrada fue HH:MM:SS con SS > 0.
// La reparación acordada es redondear la entrada al minuto.
var fixNegativeCmd = &cobra.Command{
	Use:   "fix-negative-durations",
	Short: "Repair records where check_out ended up before check_in",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := dbpkg.NewDB(cfg)

		var records []models.TimeRecord
		if err := db.
			Where("check_in IS NOT NULL AND check_out IS NOT NULL").
			Where("check_out < check_in").
			Order("id ASC").
			Find(&records).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to scan records: %v\n", err)
			os.Exit(1)
		}

		if len(records) == 0 {
			fmt.Println("no negative-duration records found")
			return
		}

		for i := range records {
			rec := &records[i]
			rounded := rec.CheckIn.Truncate(time.Minute)

			fmt.Printf(
				"record %d user=%d date=%s check_in=%s check_out=%s -> check_in=%s\n",
				rec.ID,
				rec.UserID,
				rec.Date.Format("2006-01-02"),
				rec.CheckIn.Format("15:04:05"),
				rec.CheckOut.Format("15:04:05"),
				rounded.Format("15:04:05"),
			)

			if fixNegativeDryRun {
				continue
			}

			rec.CheckIn = &rounded
			if err := db.Save(rec).Error; err != nil {
				fmt.Fprintf(os.Stderr, "failed to fix record %d: %v\n", rec.ID, err)
				os.Exit(1)
			}
		}

		if fixNegativeDryRun {
			fmt.Printf("dry run: %d records would be fixed\n", len(records))
		} else {
			fmt.Printf("fixed %d records\n", len(records))
		}
	},
}

func init() {
	rootCmd.AddCommand(fixNegativeCmd)

	fixNegativeCmd.Flags().BoolVar(
		&fixNegativeDryRun,
		"dry-run",
		true,
		"print what would change without writing",
	)
}
