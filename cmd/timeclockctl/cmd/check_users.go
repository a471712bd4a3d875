package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/timeclock/internal/config"
	dbpkg "github.com/BruksfildServices01/timeclock/internal/db"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

var checkUsersCmd = &cobra.Command{
	Use:   "check-users",
	Short: "List users and their open records",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := dbpkg.NewDB(cfg)

		var users []models.User
		if err := db.Order("username ASC").Find(&users).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to list users: %v\n", err)
			os.Exit(1)
		}

		for i := range users {
			u := &users[i]

			var open int64
			db.Model(&models.TimeRecord{}).
				Where("user_id = ? AND check_out IS NULL", u.ID).
				Count(&open)

			category := "-"
			if u.Category != nil {
				category = *u.Category
			}

			fmt.Printf(
				"%-20s admin=%-5v active=%-5v weekly_hours=%-3d category=%-10s open=%d\n",
				u.Username, u.IsAdmin, u.IsActive, u.WeeklyHours, category, open,
			)
		}

		fmt.Printf("%d users\n", len(users))
	},
}

func init() {
	rootCmd.AddCommand(checkUsersCmd)
}
