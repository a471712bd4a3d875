package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/timeclock/internal/config"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
	ucTimerecord "github.com/BruksfildServices01/timeclock/internal/usecase/timerecord"
)

// Start programa el cierre automático diario dentro del proceso del
// servidor (por defecto a las 23:58, antes del cambio de día, con
// includeToday=true). El cron externo de después de medianoche es
// `timeclockctl autoclose --exclude-today`.
func Start(cfg *config.Config, autoCloseUC *ucTimerecord.AutoClose) *cron.Cron {
	c := cron.New(cron.WithLocation(timezone.Location(cfg.Timezone)))

	_, err := c.AddFunc(cfg.AutoCloseCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		closed, err := autoCloseUC.Execute(ctx, true)
		if err != nil {
			// Sin reintento inmediato: la siguiente ejecución
			// programada vuelve a intentarlo.
			log.Printf("scheduled auto-close failed: %v", err)
			return
		}
		log.Printf("scheduled auto-close done, closed=%d", closed)
	})
	if err != nil {
		log.Fatalf("invalid auto-close cron %q: %v", cfg.AutoCloseCron, err)
	}

	c.Start()
	log.Printf("auto-close scheduler started (%s, %s)", cfg.AutoCloseCron, cfg.Timezone)
	return c
}
