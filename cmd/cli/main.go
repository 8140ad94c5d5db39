package main

import (
	"context"
	"docnet-client/internal/app/config"
	"docnet-client/internal/app/delivery/terminal"
	"docnet-client/internal/app/drivers/logger"
	"docnet-client/internal/app/services/aidiag"
	"docnet-client/internal/app/services/caseposts"
	"docnet-client/internal/app/services/consultations"
	"docnet-client/internal/app/services/donations"
	"docnet-client/internal/app/services/facts"
	"docnet-client/internal/app/services/session"
	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/app/services/shared/tokenstore"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(internalConfig)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	tokens := tokenstore.NewFileTokenStore(internalConfig.App.SessionFile, log)
	rest := restclient.NewRestClient(
		internalConfig.App.BaseURL,
		time.Second*time.Duration(internalConfig.App.RequestTimeoutInSeconds),
		internalConfig.App.RequestsPerSecond,
		tokens,
		log,
	)

	app := terminal.NewApp(terminal.Clients{
		Session:       session.NewSessionUsecase(rest, tokens, log),
		CasePosts:     caseposts.NewCasePostClient(rest, log),
		Donations:     donations.NewDonationClient(rest, log),
		Consultations: consultations.NewConsultationClient(rest, log),
		Diagnosis:     aidiag.NewDiagnosisClient(rest, log),
		Facts:         facts.NewFactClient(rest, log),
	}, os.Stdin, os.Stdout, log)

	app.Run(ctx)
}
