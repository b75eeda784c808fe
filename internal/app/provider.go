package app

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/hmondejar/notekit/internal/config"
	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/platform/db"
	"github.com/hmondejar/notekit/internal/platform/email"
	"github.com/hmondejar/notekit/internal/platform/hash"
	"github.com/hmondejar/notekit/internal/platform/jwt"
	"github.com/hmondejar/notekit/internal/platform/router"
	"github.com/hmondejar/notekit/internal/platform/validation"
)

// Provider bundles every platform collaborator the app wires into services
// and handlers. Everything is constructed once here from explicit config; no
// package-level state.
type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Mailer    email.Mailer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
}

func NewProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) (*Provider, error) {
	mailer, err := createMailer(cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}

	return &Provider{
		DB:        dbConn,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Mailer:    mailer,
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		TxMgr:     db.NewSQLTxManager(dbConn),
	}, nil
}

func createMailer(opts *config.Email) (email.Mailer, error) {
	const (
		envHost = "SMTP_HOST"
		envPort = "SMTP_PORT"
		envUser = "SMTP_USER"
		envPass = "SMTP_PASS"
	)

	smtpHost, err := getEnv(envHost)
	if err != nil {
		return nil, err
	}

	smtpPortStr, err := getEnv(envPort)
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", envPort, smtpPortStr, err)
	}

	smtpUser, err := getEnv(envUser)
	if err != nil {
		return nil, err
	}

	smtpPass, err := getEnv(envPass)
	if err != nil {
		return nil, err
	}

	smtpCfg := &email.SMTPConfig{
		User:     smtpUser,
		Password: smtpPass,
		Host:     smtpHost,
		Port:     smtpPort,
	}

	return email.NewSMTPMailer(smtpCfg, opts), nil
}

func getEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, envVar)
	}
	return val, nil
}
