package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/domain/models"
	reportingsvc "github.com/mamadbah2/shopsim/internal/service/reporting"
	"github.com/mamadbah2/shopsim/internal/service/simulation"
)

type publisher interface {
	Publish(ctx context.Context, outcome simulation.DayOutcome) error
}

// game drives the simulation from a terminal, one day per loop.
type game struct {
	engine      *simulation.Engine
	reporter    publisher
	in          *prompter
	out         io.Writer
	days        int
	interactive bool
	logger      *zap.Logger
}

func (g *game) play(ctx context.Context) error {
	gameOver := false
	for range g.days {
		if ctx.Err() != nil {
			g.logger.Info("shutdown signal received")
			break
		}

		day := g.engine.Snapshot().Day
		fmt.Fprintf(g.out, "\n=== Day %d ===\n", day)

		delivered, err := g.engine.ReceiveDeliveries()
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		fmt.Fprintln(g.out, reportingsvc.FormatDeliveries(delivered))

		if g.interactive {
			g.purchase(g.engine.Snapshot())
		}

		outcome, err := g.engine.ServeCustomers()
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}

		if err := g.reporter.Publish(ctx, outcome); err != nil {
			g.logger.Warn("failed to publish day report", zap.Int("day", outcome.Result.DayNumber), zap.Error(err))
		}
		printDay(g.out, outcome)

		if g.engine.GameOver() {
			gameOver = true
			break
		}
	}

	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, reportingsvc.FormatFinal(g.engine.Snapshot(), gameOver))
	return nil
}

// purchase runs the supplier ordering phase. Rejected input is reported and
// the prompt repeats; it never ends the game.
func (g *game) purchase(snap simulation.Snapshot) {
	products := g.engine.Products()

	fmt.Fprintf(g.out, "Budget: %s  Free space: %s\n", snap.Budget.StringFixed(2), snap.AvailableSpace.StringFixed(2))
	for i, entry := range snap.Stock {
		p := entry.Product
		fmt.Fprintf(g.out, "%d) %-8s buy %s  sell %s  space %s  in stock %d\n",
			i+1, p.Name, p.PurchasePrice.StringFixed(2), p.SellPrice.StringFixed(2), p.Space.String(), entry.Quantity)
	}

	draft := models.NewSupplierOrderDraft()
	for {
		choice, ok := g.in.ask("Product number to order (enter to finish): ")
		if !ok || choice == "" {
			break
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(products) {
			fmt.Fprintln(g.out, "Unknown product.")
			continue
		}

		amount, ok := g.in.ask("Quantity: ")
		if !ok {
			break
		}
		quantity, err := strconv.Atoi(amount)
		if err != nil {
			fmt.Fprintln(g.out, "Quantity must be a whole number.")
			continue
		}

		line, err := g.engine.AddDraftLine(draft, products[n-1], quantity)
		if err != nil {
			fmt.Fprintf(g.out, "Cannot add line: %v\n", err)
			continue
		}
		fmt.Fprintf(g.out, "Added %d x %s. Draft cost %s, space %s\n",
			line.Quantity, line.Product.Name, draft.TotalCost().StringFixed(2), draft.TotalSpace().String())
	}

	if draft.Len() == 0 {
		return
	}

	answer, _ := g.in.ask("Place order for delivery tomorrow? [y/N]: ")
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(g.out, "Order discarded.")
		return
	}

	order, err := g.engine.PlaceSupplierOrder(draft)
	if err != nil {
		fmt.Fprintf(g.out, "Order not placed: %v\n", err)
		return
	}
	fmt.Fprintf(g.out, "Order placed for day %d: cost %s\n", order.DeliveryDay(), order.TotalCost().StringFixed(2))
}

func printOutcome(w io.Writer, outcome simulation.DayOutcome) {
	fmt.Fprintln(w, reportingsvc.FormatDeliveries(outcome.Delivered))
	printDay(w, outcome)
}

// printDay renders the customer half of a day and the closing stock.
func printDay(w io.Writer, outcome simulation.DayOutcome) {
	fmt.Fprintln(w, reportingsvc.FormatDay(outcome.Result))
	fmt.Fprintln(w, "Stock:")
	fmt.Fprintln(w, reportingsvc.FormatStock(outcome.Stock))
}

// prompter reads trimmed answers line by line.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(r), out: w}
}

// ask prints question and returns the next line. ok is false once input is exhausted.
func (p *prompter) ask(question string) (string, bool) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}
