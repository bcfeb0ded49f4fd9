package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/apierror"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/user"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// NewAPI builds the Huma API over the given mux and registers every
// endpoint. Split out from Serve so tests can drive the full stack.
func (r *Rest) NewAPI(mux *http.ServeMux) huma.API {
	apierror.UseEnvelope()

	config := huma.DefaultConfig("finance-tracker", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:   "http",
			Scheme: "bearer",
		},
	}

	humaAPI := humago.New(mux, config)
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(AuthMiddleware(humaAPI, r.Service.Auth))

	user.NewListUsersHandler(r.Service.User).Register(humaAPI)
	user.NewRegisterUserHandler(r.Service.Auth).Register(humaAPI)
	user.NewLoginHandler(r.Service.Auth).Register(humaAPI)
	user.NewLogoutHandler(r.Service.Auth).Register(humaAPI)
	user.NewGetUserHandler(r.Service.User).Register(humaAPI)
	user.NewUpdateUserHandler(r.Service.User).Register(humaAPI)
	user.NewDeleteUserHandler(r.Service.User).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)

	return humaAPI
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	r.NewAPI(mux)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
