package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/timeclock/internal/config"
	dbpkg "github.com/BruksfildServices01/timeclock/internal/db"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

var (
	createUsername    string
	createFullName    string
	createEmail       string
	createPassword    string
	createAdmin       bool
	createWeeklyHours int
	createCategory    string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user directly in the database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := dbpkg.NewDB(cfg)

		category, err := domain.ParseCategory(createCategory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --category %q\n", createCategory)
			os.Exit(1)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(createPassword), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			os.Exit(1)
		}

		user := models.User{
			Username:     strings.ToLower(strings.TrimSpace(createUsername)),
			FullName:     createFullName,
			Email:        strings.ToLower(strings.TrimSpace(createEmail)),
			PasswordHash: string(hashed),
			IsAdmin:      createAdmin,
			IsActive:     true,
			WeeklyHours:  createWeeklyHours,
		}
		if category != nil {
			s := string(*category)
			user.Category = &s
		}

		if err := db.Create(&user).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("created user %q (id=%d, admin=%v)\n", user.Username, user.ID, user.IsAdmin)
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)

	createUserCmd.Flags().StringVar(&createUsername, "username", "", "username (required)")
	createUserCmd.Flags().StringVar(&createFullName, "full-name", "", "full name (required)")
	createUserCmd.Flags().StringVar(&createEmail, "email", "", "email (required)")
	createUserCmd.Flags().StringVar(&createPassword, "password", "", "password (required)")
	createUserCmd.Flags().BoolVar(&createAdmin, "admin", false, "grant admin rights")
	createUserCmd.Flags().IntVar(&createWeeklyHours, "weekly-hours", 0, "contracted hours per week")
	createUserCmd.Flags().StringVar(&createCategory, "category", "", "work category (Cocina|Delivery|Reparto|Sala)")

	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("full-name")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")
}
