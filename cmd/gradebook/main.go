// Package main is the demonstration driver for the gradebook.
//
// It builds two student records, feeds them valid and invalid grades, removes
// grades by value and by position, and prints a summary report after each
// stage. Diagnostics go to stderr through the structured logger; reports go
// to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/eventhandler"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/infrastructure/messaging"
	"github.com/alem-hub/gradebook/internal/interface/cli/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the collaborators shared by every demo stage.
type app struct {
	out       io.Writer
	bus       *messaging.InMemoryEventBus
	log       *logger.Logger
	reports   *query.GetReportHandler
	presenter *presenter.ReportPresenter
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LoggerOptions()).With(
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
	)
	ctx = logger.WithContext(ctx, log)

	bus := messaging.NewInMemoryEventBus(log)
	defer bus.Close()

	if err := eventhandler.NewDiagnostics(log).Register(bus); err != nil {
		return err
	}

	a := &app{
		out:       out,
		bus:       bus,
		log:       log,
		reports:   query.NewGetReportHandler(),
		presenter: presenter.NewReportPresenter(cfg.Report.Width, cfg.Report.Separator),
	}

	fmt.Fprintln(out, "Student Grade Management System Demo")
	fmt.Fprintln(out, presenter.NewReportPresenter(40, cfg.Report.Separator).Rule())

	if err := a.honorStudent(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, presenter.NewReportPresenter(40, cfg.Report.Separator).Rule())

	return a.failingStudent(ctx)
}

func (a *app) honorStudent(ctx context.Context) error {
	book, err := command.NewGradeBook(ctx, command.CreateRecordCommand{
		StudentID:   "S001",
		StudentName: "Alice Johnson",
	}, a.bus, a.log)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	s := book.Summary()
	fmt.Fprintf(a.out, "Created student: %s (ID: %s)\n", s.StudentName, s.StudentID)

	fmt.Fprintln(a.out, "\nAdding grades...")
	a.addGrades(ctx, book, 95.5, 87.0, 92.0, 88.5)

	fmt.Fprintln(a.out, "\nTrying invalid grade...")
	a.addGrades(ctx, book, "invalid", 150)

	a.printReport(book)

	fmt.Fprintln(a.out, "\nTesting grade removal...")
	_, _ = book.RemoveGradeByValue(ctx, command.RemoveGradeByValueCommand{Raw: 87.0})
	_, _ = book.RemoveGradeByIndex(ctx, command.RemoveGradeByIndexCommand{Index: 0})
	_, _ = book.RemoveGradeByIndex(ctx, command.RemoveGradeByIndexCommand{Index: 10})

	fmt.Fprintln(a.out, "\nFinal report after removals:")
	a.printReport(book)
	return nil
}

func (a *app) failingStudent(ctx context.Context) error {
	book, err := command.NewGradeBook(ctx, command.CreateRecordCommand{
		StudentID:   "S002",
		StudentName: "Bob Smith",
	}, a.bus, a.log)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	a.addGrades(ctx, book, 45.0, 55.0, 65.0)
	a.printReport(book)
	return nil
}

// addGrades submits each value; rejections are reported by the diagnostics handler.
func (a *app) addGrades(ctx context.Context, book *command.GradeBook, values ...any) {
	for _, v := range values {
		_, _ = book.AddGrade(ctx, command.AddGradeCommand{Raw: v})
	}
}

func (a *app) printReport(book *command.GradeBook) {
	fmt.Fprint(a.out, a.presenter.FormatReport(a.reports.Handle(book)))
}
