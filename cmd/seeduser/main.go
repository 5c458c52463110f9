// Command seeduser appends an already-approved account to the users sheet.
// Approval is normally granted by an admin editing the sheet; this tool
// bootstraps the first usable account on a fresh spreadsheet.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/redromiee/bag-tracker/internal/config"
	"github.com/redromiee/bag-tracker/internal/model"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "plaintext password to hash")
	name := flag.String("name", "", "display name")
	mobile := flag.String("mobile", "", "mobile number")
	email := flag.String("email", "", "email (optional)")
	branch := flag.String("branch", "", "branch")
	flag.Parse()

	if *username == "" || *password == "" || *name == "" || *mobile == "" || *branch == "" {
		log.Fatal().Msg("username, password, name, mobile and branch are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st := store.NewSheetsStore(cfg.SpreadsheetID, cfg.CredentialsJSON, cfg.CredentialsFile, cfg.ScansSheet, cfg.UsersSheet)
	users, err := st.Users(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open users sheet")
	}

	err = users.Append(ctx, map[string]string{
		model.ColUsername:       *username,
		model.ColPassword:       string(hash),
		model.ColName:           *name,
		model.ColMobile:         *mobile,
		model.ColEmail:          *email,
		model.ColBranch:         *branch,
		model.ColCreatedAt:      time.Now().Format(model.TimestampLayout),
		model.ColLastLogin:      "",
		model.ColApprovalStatus: model.ApprovalGranted,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to append user row")
	}
	log.Info().Str("username", *username).Msg("approved user seeded")
}
