package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bashyamgroup/employee-console/internal/config"
	"github.com/bashyamgroup/employee-console/internal/domain/leave"
	appHTTP "github.com/bashyamgroup/employee-console/internal/handler/http"
	"github.com/bashyamgroup/employee-console/internal/pkg/session"
	authService "github.com/bashyamgroup/employee-console/internal/service/auth"
	employeeService "github.com/bashyamgroup/employee-console/internal/service/employee"
	"github.com/bashyamgroup/employee-console/internal/service/search"
	"github.com/bashyamgroup/employee-console/internal/upstream"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "employee-console"),
	)

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	authRepo := upstream.NewAuthRepository(client)
	employeeRepo := upstream.NewEmployeeRepository(client)
	masterRepo := upstream.NewMasterRepository(client)
	leaveRepo := upstream.NewLeaveRepository(client)

	tokenService := session.NewTokenService(cfg.Session.Secret, cfg.Session.TTL)
	sessionStore := session.NewStore(cfg.Session.TTL)
	go sessionStore.Sweep(context.Background(), time.Minute)

	searchOpts := search.Options{
		Debounce:      cfg.Console.Debounce,
		PageSize:      cfg.Console.PageSize,
		MinSuggestLen: cfg.Console.MinSuggestLen,
	}
	entitlements := leave.Entitlements{
		Casual: decimal.NewFromInt(int64(cfg.Leave.CasualDays)),
		Sick:   decimal.NewFromInt(int64(cfg.Leave.SickDays)),
	}

	authSvc := authService.NewService(
		authRepo,
		employeeRepo,
		leaveRepo,
		tokenService,
		sessionStore,
		logger,
		searchOpts,
		entitlements,
	)
	employeeSvc := employeeService.NewService(employeeRepo, masterRepo, cfg.Console.OrgEmailDomain)

	authHandler := appHTTP.NewAuthHandler(authSvc, tokenService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler()
	masterHandler := appHTTP.NewMasterHandler(masterRepo)

	router := appHTTP.NewRouter(
		tokenService,
		authSvc,
		authHandler,
		employeeHandler,
		leaveHandler,
		masterHandler,
		cfg.App.Env,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Console running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
