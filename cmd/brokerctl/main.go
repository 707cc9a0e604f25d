// cmd/brokerctl/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/covergrid/brokercore/internal/config"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	seedAdminCmd.Flags().String("email", "", "Email for the admin account")
	seedAdminCmd.Flags().String("password", "", "Password for the admin account")
	seedAdminCmd.MarkFlagRequired("email")
	seedAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "brokerctl",
	Short: "brokerctl administers the brokercore database",
	Long:  `brokerctl runs schema migrations and seeds bootstrap data for the brokercore service.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations",
	Long:  `Migrate the database schema to match the current model set.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		if err := db.AutoMigrate(
			&model.Client{},
			&model.Affiliate{},
			&model.Principal{},
			&model.ClientGrant{},
			&model.Policy{},
			&model.PolicyAffiliate{},
			&model.Claim{},
			&model.ClaimInvoice{},
			&model.Ticket{},
			&model.TicketMessage{},
			&model.Invitation{},
			&model.AuditLogEntry{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migration complete")
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create a super admin account",
	Long:  `Create an active super admin principal if one with the given email does not exist.`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		db := openDatabase()

		var count int64
		if err := db.Model(&model.Principal{}).Where("email = ?", email).Count(&count).Error; err != nil {
			log.Fatalf("Checking for existing account: %v", err)
		}
		if count > 0 {
			fmt.Printf("Account %s already exists, nothing to do\n", email)
			return
		}

		hash, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Hashing password: %v", err)
		}

		admin := &model.Principal{
			Email:        email,
			FirstName:    "Admin",
			Role:         model.RoleSuperAdmin,
			PasswordHash: hash,
			Active:       true,
		}
		if err := db.Create(admin).Error; err != nil {
			log.Fatalf("Creating admin account: %v", err)
		}

		fmt.Printf("Created super admin %s (%s)\n", email, admin.ID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("brokerctl v0.3.0")
	},
}

func openDatabase() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Connecting to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
