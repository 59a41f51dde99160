package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hris-console/internal/app"
	"hris-console/internal/config"
	"hris-console/internal/console"
	"hris-console/internal/leave"
	"hris-console/internal/shared/apperror"
	"hris-console/internal/shared/contextutil"
	"hris-console/internal/shared/logger"
	"hris-console/internal/visibility"

	"go.uber.org/zap"
)

func main() {
	employeeID := flag.String("employee-id", os.Getenv("CONSOLE_EMPLOYEE_ID"), "employee id of the operator")
	role := flag.String("role", os.Getenv("CONSOLE_ROLE"), "role of the operator, e.g. admin or worker")
	leaveTypeFlag := flag.String("type", "annual", "leave type to open: annual, absence or sick")
	flag.Parse()

	if *employeeID == "" {
		fmt.Fprintln(os.Stderr, "employee id is required (-employee-id or CONSOLE_EMPLOYEE_ID)")
		os.Exit(2)
	}
	leaveType, err := leave.ParseLeaveType(*leaveTypeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, apperror.ToHTTP(err).Message)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// zap writes to stderr, stdout stays for the board
	log, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	svcs, err := app.NewServices(cfg, log)
	if err != nil {
		log.Fatal("build services failed", zap.Error(err))
	}
	defer svcs.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = contextutil.WithUserID(ctx, *employeeID)
	ctx = contextutil.WithLogger(ctx, log)

	actor := leave.Actor{EmployeeID: *employeeID, Role: visibility.ParseRole(*role)}
	c := console.New(svcs.Leave, actor, leaveType, os.Stdin, os.Stdout, log)
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("console stopped", zap.Error(err))
		os.Exit(1)
	}
}
