package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	"github.com/BruksfildServices01/timeclock/internal/config"
	dbpkg "github.com/BruksfildServices01/timeclock/internal/db"
	infraRepo "github.com/BruksfildServices01/timeclock/internal/infra/repository"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
	ucTimerecord "github.com/BruksfildServices01/timeclock/internal/usecase/timerecord"
)

var (
	autocloseIncludeToday bool
	autocloseDate         string
)

// autocloseCmd es el job externo de cron: se lanza pasada la
// medianoche y por defecto NO cierra los fichajes de hoy, para no
// cerrar a quien sigue trabajando legítimamente.
var autocloseCmd = &cobra.Command{
	Use:   "autoclose",
	Short: "Close open time records at 23:59:59 of their own date",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := dbpkg.NewDB(cfg)

		repo := infraRepo.NewTimeRecordGormRepository(db)
		auditDispatcher := audit.NewDispatcher(audit.New(db))
		clock := timezone.NewClock(cfg.Timezone)
		uc := ucTimerecord.NewAutoClose(repo, auditDispatcher, clock)

		var (
			closed int
			err    error
		)

		if autocloseDate != "" {
			var day time.Time
			day, err = time.ParseInLocation(
				"2006-01-02",
				autocloseDate,
				timezone.Location(cfg.Timezone),
			)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --date %q: %v\n", autocloseDate, err)
				os.Exit(1)
			}
			closed, err = uc.ExecuteManual(cmd.Context(), &day)
		} else {
			closed, err = uc.Execute(cmd.Context(), autocloseIncludeToday)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "autoclose failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("closed %d open records\n", closed)
	},
}

func init() {
	rootCmd.AddCommand(autocloseCmd)

	autocloseCmd.Flags().BoolVar(
		&autocloseIncludeToday,
		"include-today",
		false,
		"also close records dated today",
	)
	autocloseCmd.Flags().StringVar(
		&autocloseDate,
		"date",
		"",
		"close only records for this date (YYYY-MM-DD)",
	)
}
